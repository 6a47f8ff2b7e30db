package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"goblog/apperror"
	"goblog/middleware"
	"goblog/models"
	"goblog/services"
	"goblog/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// UserStore is the controller-facing slice of the user service.
type UserStore interface {
	Register(form *models.RegisterForm) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	UpdateProfile(id uint, username, email, imageFile string) (*models.User, error)
	UpdatePassword(id uint, password string) error
}

// PostStore is the controller-facing slice of the post service.
type PostStore interface {
	Create(authorID uint, form *models.PostForm) (*models.Post, error)
	Get(id uint) (*models.Post, error)
	List(page int) (*services.Page, error)
	ListByAuthor(userID uint, page int) (*services.Page, error)
	Update(actorID, postID uint, form *models.PostForm) (*models.Post, error)
	Delete(actorID, postID uint) error
}

// render wraps c.HTML with the payload every template expects: the current
// user, pending flashes and the page title.
func render(c *gin.Context, status int, name, title string, data gin.H) {
	payload := gin.H{
		"Title":   title,
		"Flashes": utils.Flashes(c),
		"Errors":  map[string]string{},
	}
	if user, ok := middleware.UserFromContext(c); ok {
		payload["User"] = user
	}
	for k, v := range data {
		payload[k] = v
	}
	c.HTML(status, name, payload)
}

// renderError maps a service error onto the matching status page.
func renderError(c *gin.Context, err error) {
	appErr := apperror.AsAppError(err)
	switch appErr.StatusCode() {
	case http.StatusForbidden:
		render(c, http.StatusForbidden, "403.html", "Forbidden", nil)
	case http.StatusNotFound:
		render(c, http.StatusNotFound, "404.html", "Not Found", nil)
	default:
		render(c, http.StatusInternalServerError, "500.html", "Server Error", nil)
	}
	c.Abort()
}

// fieldErrors exposes a service error's per-field messages, falling back to
// a form-level message when the error carries none (the duplicate-key
// backstop behind the uniqueness pre-check).
func fieldErrors(appErr *apperror.AppError) map[string]string {
	if len(appErr.Fields) > 0 {
		return appErr.Fields
	}
	return map[string]string{"Form": appErr.Message}
}

// formErrors flattens a binding failure into per-field messages keyed by
// struct field name, so templates can show them inline.
func formErrors(err error) map[string]string {
	fields := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["Form"] = "Invalid form submission"
		return fields
	}

	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = "This field is required"
		case "email":
			fields[fe.Field()] = "Invalid email address"
		case "min":
			fields[fe.Field()] = fmt.Sprintf("Must be at least %s characters long", fe.Param())
		case "max":
			fields[fe.Field()] = fmt.Sprintf("Must be at most %s characters long", fe.Param())
		case "eqfield":
			fields[fe.Field()] = "Passwords must match"
		default:
			fields[fe.Field()] = "Invalid value"
		}
	}
	return fields
}

// pageParam reads the page query parameter, defaulting to 1 on anything that
// is not a number. Range checking is the store's job.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
