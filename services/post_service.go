package services

import (
	"errors"

	"goblog/apperror"
	"goblog/models"

	"gorm.io/gorm"
)

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

func (s *PostService) Create(authorID uint, form *models.PostForm) (*models.Post, error) {
	post := &models.Post{
		Title:   form.Title,
		Content: form.Content,
		UserID:  authorID,
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, apperror.NewDatabase("failed to create post", err)
	}

	return post, nil
}

func (s *PostService) Get(id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.Preload("User").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("Post not found")
		}
		return nil, apperror.NewDatabase("failed to look up post", err)
	}
	return &post, nil
}

// List returns one page of all posts, newest first. Pages outside the valid
// range are a not-found condition, not an empty page.
func (s *PostService) List(page int) (*Page, error) {
	return s.list(s.db.Model(&models.Post{}), page)
}

// ListByAuthor returns one page of the given user's posts, newest first.
func (s *PostService) ListByAuthor(userID uint, page int) (*Page, error) {
	return s.list(s.db.Model(&models.Post{}).Where("user_id = ?", userID), page)
}

func (s *PostService) list(query *gorm.DB, page int) (*Page, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperror.NewDatabase("failed to count posts", err)
	}

	pages := totalPages(total, PostsPerPage)
	if page < 1 || page > pages {
		return nil, apperror.NewNotFound("Page not found")
	}

	var posts []models.Post
	err := query.Preload("User").
		Order("created_at DESC, id DESC").
		Offset((page - 1) * PostsPerPage).
		Limit(PostsPerPage).
		Find(&posts).Error
	if err != nil {
		return nil, apperror.NewDatabase("failed to list posts", err)
	}

	return &Page{
		Posts:      posts,
		Number:     page,
		PerPage:    PostsPerPage,
		Total:      total,
		TotalPages: pages,
	}, nil
}

// Update rewrites a post's title and content. Only the author may update, and
// authorship itself never changes.
func (s *PostService) Update(actorID, postID uint, form *models.PostForm) (*models.Post, error) {
	post, err := s.authorOnly(actorID, postID)
	if err != nil {
		return nil, err
	}

	post.Title = form.Title
	post.Content = form.Content

	if err := s.db.Model(post).Select("title", "content").Updates(post).Error; err != nil {
		return nil, apperror.NewDatabase("failed to update post", err)
	}

	return post, nil
}

func (s *PostService) Delete(actorID, postID uint) error {
	post, err := s.authorOnly(actorID, postID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(post).Error; err != nil {
		return apperror.NewDatabase("failed to delete post", err)
	}

	return nil
}

func (s *PostService) authorOnly(actorID, postID uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("Post not found")
		}
		return nil, apperror.NewDatabase("failed to look up post", err)
	}

	if post.UserID != actorID {
		return nil, apperror.NewForbidden("You can only modify your own posts")
	}

	return &post, nil
}
