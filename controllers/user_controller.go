package controllers

import (
	"net/http"

	"goblog/apperror"
	"goblog/config"
	"goblog/middleware"
	"goblog/models"
	"goblog/services"
	"goblog/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	users     UserStore
	uploadDir string
}

func NewUserController(db *gorm.DB, cfg *config.Config) *UserController {
	return &UserController{
		users:     services.NewUserService(db),
		uploadDir: cfg.UploadDir,
	}
}

func (uc *UserController) Account(c *gin.Context) {
	user, ok := middleware.RequireUser(c)
	if !ok {
		return
	}

	form := &models.UpdateAccountForm{
		Username: user.Username,
		Email:    user.Email,
	}
	render(c, http.StatusOK, "account.html", "Account", gin.H{
		"Form":      form,
		"ImageFile": user.ImageFile,
	})
}

// UpdateAccount applies username/email changes and, when a picture was
// uploaded, the avatar. A corrupt upload is rejected with a flash while the
// rest of the update still goes through with the previous avatar.
func (uc *UserController) UpdateAccount(c *gin.Context) {
	user, ok := middleware.RequireUser(c)
	if !ok {
		return
	}

	var form models.UpdateAccountForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusOK, "account.html", "Account", gin.H{
			"Form":      &form,
			"Errors":    formErrors(err),
			"ImageFile": user.ImageFile,
		})
		return
	}

	imageFile := ""
	if file, err := c.FormFile("picture"); err == nil && file != nil {
		imageFile, err = utils.SaveAvatar(file, uc.uploadDir)
		if err != nil {
			utils.Flash(c, "danger", apperror.AsAppError(err).Message)
			imageFile = ""
		}
	}

	if _, err := uc.users.UpdateProfile(user.ID, form.Username, form.Email, imageFile); err != nil {
		appErr := apperror.AsAppError(err)
		if appErr.Type == apperror.DuplicateIdentityError {
			render(c, http.StatusOK, "account.html", "Account", gin.H{
				"Form":      &form,
				"Errors":    fieldErrors(appErr),
				"ImageFile": user.ImageFile,
			})
			return
		}
		renderError(c, err)
		return
	}

	utils.Flash(c, "success", "Your account has been updated!")
	c.Redirect(http.StatusFound, "/account")
}
