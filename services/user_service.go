package services

import (
	"errors"

	"goblog/apperror"
	"goblog/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// dummyHash keeps the authenticate path doing a bcrypt compare even when the
// email is unknown, so both failure modes cost about the same.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("goblog-no-such-user"), bcrypt.DefaultCost)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Register(form *models.RegisterForm) (*models.User, error) {
	if err := s.checkIdentityFree(form.Username, form.Email, 0); err != nil {
		return nil, err
	}

	user := &models.User{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	}

	if err := user.HashPassword(); err != nil {
		return nil, apperror.NewDatabase("failed to hash password", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewDuplicateIdentity("That username or email is already taken")
		}
		return nil, apperror.NewDatabase("failed to create user", err)
	}

	return user, nil
}

// Authenticate returns the user matching the credential pair. The failure
// message never says whether the email or the password was wrong.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, apperror.NewAuthFailed("Login unsuccessful. Please check email and password")
		}
		return nil, apperror.NewDatabase("failed to look up user", err)
	}

	if !user.CheckPassword(password) {
		return nil, apperror.NewAuthFailed("Login unsuccessful. Please check email and password")
	}

	return &user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("User not found")
		}
		return nil, apperror.NewDatabase("failed to look up user", err)
	}
	return &user, nil
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("User not found")
		}
		return nil, apperror.NewDatabase("failed to look up user", err)
	}
	return &user, nil
}

func (s *UserService) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("User not found")
		}
		return nil, apperror.NewDatabase("failed to look up user", err)
	}
	return &user, nil
}

// UpdateProfile changes username, email and optionally the avatar filename.
// imageFile == "" keeps the current avatar.
func (s *UserService) UpdateProfile(id uint, username, email, imageFile string) (*models.User, error) {
	if err := s.checkIdentityFree(username, email, id); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("User not found")
		}
		return nil, apperror.NewDatabase("failed to look up user", err)
	}

	user.Username = username
	user.Email = email
	if imageFile != "" {
		user.ImageFile = imageFile
	}

	if err := s.db.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewDuplicateIdentity("That username or email is already taken")
		}
		return nil, apperror.NewDatabase("failed to update user", err)
	}

	return &user, nil
}

func (s *UserService) UpdatePassword(id uint, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperror.NewDatabase("failed to hash password", err)
	}

	res := s.db.Model(&models.User{}).Where("id = ?", id).Update("password", string(hashed))
	if res.Error != nil {
		return apperror.NewDatabase("failed to update password", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NewNotFound("User not found")
	}
	return nil
}

// checkIdentityFree rejects usernames and emails already held by a different
// user, reporting each collision as a field-level message. excludeID skips
// the caller's own row on profile updates.
func (s *UserService) checkIdentityFree(username, email string, excludeID uint) error {
	fields := map[string]string{}

	var count int64
	err := s.db.Model(&models.User{}).
		Where("username = ? AND id <> ?", username, excludeID).
		Count(&count).Error
	if err != nil {
		return apperror.NewDatabase("failed to check username", err)
	}
	if count > 0 {
		fields["Username"] = "That username is taken. Please choose a different one"
	}

	err = s.db.Model(&models.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	if err != nil {
		return apperror.NewDatabase("failed to check email", err)
	}
	if count > 0 {
		fields["Email"] = "That email is taken. Please choose a different one"
	}

	if len(fields) > 0 {
		return apperror.NewDuplicateIdentityFields(fields)
	}
	return nil
}
