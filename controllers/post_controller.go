package controllers

import (
	"fmt"
	"net/http"

	"goblog/apperror"
	"goblog/middleware"
	"goblog/models"
	"goblog/services"
	"goblog/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostController struct {
	posts PostStore
	users UserStore
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{
		posts: services.NewPostService(db),
		users: services.NewUserService(db),
	}
}

func (pc *PostController) Home(c *gin.Context) {
	page, err := pc.posts.List(pageParam(c))
	if err != nil {
		renderError(c, err)
		return
	}
	render(c, http.StatusOK, "home.html", "", gin.H{
		"Page":    page,
		"BaseURL": "/home",
	})
}

func (pc *PostController) About(c *gin.Context) {
	render(c, http.StatusOK, "about.html", "About", nil)
}

// Show renders a single post. gin cannot register /post/new next to
// /post/:id (wildcard conflict), so the literal new segment is dispatched
// here to the creation form.
func (pc *PostController) Show(c *gin.Context) {
	if c.Param("id") == "new" {
		pc.newForm(c)
		return
	}

	id, ok := idParam(c)
	if !ok {
		renderError(c, apperror.NewNotFound("Post not found"))
		return
	}

	post, err := pc.posts.Get(id)
	if err != nil {
		renderError(c, err)
		return
	}

	render(c, http.StatusOK, "post.html", post.Title, gin.H{
		"Post": post,
	})
}

func (pc *PostController) newForm(c *gin.Context) {
	if _, ok := middleware.RequireUser(c); !ok {
		return
	}
	render(c, http.StatusOK, "create_post.html", "New Post", gin.H{
		"Legend": "New Post",
		"Form":   &models.PostForm{},
	})
}

// Create handles POST /post/:id, which only exists for the new segment.
func (pc *PostController) Create(c *gin.Context) {
	if c.Param("id") != "new" {
		renderError(c, apperror.NewNotFound("Post not found"))
		return
	}

	user, ok := middleware.RequireUser(c)
	if !ok {
		return
	}

	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusOK, "create_post.html", "New Post", gin.H{
			"Legend": "New Post",
			"Form":   &form,
			"Errors": formErrors(err),
		})
		return
	}

	if _, err := pc.posts.Create(user.ID, &form); err != nil {
		renderError(c, err)
		return
	}

	utils.Flash(c, "success", "Your post has been created!")
	c.Redirect(http.StatusFound, "/home")
}

func (pc *PostController) EditForm(c *gin.Context) {
	user, ok := middleware.RequireUser(c)
	if !ok {
		return
	}

	id, ok := idParam(c)
	if !ok {
		renderError(c, apperror.NewNotFound("Post not found"))
		return
	}

	post, err := pc.posts.Get(id)
	if err != nil {
		renderError(c, err)
		return
	}
	if post.UserID != user.ID {
		renderError(c, apperror.NewForbidden("You can only modify your own posts"))
		return
	}

	form := &models.PostForm{Title: post.Title, Content: post.Content}
	render(c, http.StatusOK, "create_post.html", "Update Post", gin.H{
		"Legend": "Update Post",
		"Form":   form,
		"Post":   post,
	})
}

func (pc *PostController) Update(c *gin.Context) {
	user, ok := middleware.RequireUser(c)
	if !ok {
		return
	}

	id, ok := idParam(c)
	if !ok {
		renderError(c, apperror.NewNotFound("Post not found"))
		return
	}

	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusOK, "create_post.html", "Update Post", gin.H{
			"Legend": "Update Post",
			"Form":   &form,
			"Errors": formErrors(err),
		})
		return
	}

	post, err := pc.posts.Update(user.ID, id, &form)
	if err != nil {
		renderError(c, err)
		return
	}

	utils.Flash(c, "success", "Your post has been updated!")
	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.ID))
}

func (pc *PostController) Delete(c *gin.Context) {
	user, ok := middleware.RequireUser(c)
	if !ok {
		return
	}

	id, ok := idParam(c)
	if !ok {
		renderError(c, apperror.NewNotFound("Post not found"))
		return
	}

	if err := pc.posts.Delete(user.ID, id); err != nil {
		renderError(c, err)
		return
	}

	utils.Flash(c, "success", "Your post has been deleted!")
	c.Redirect(http.StatusFound, "/home")
}

// UserPosts lists one author's posts, paginated like the home listing.
func (pc *PostController) UserPosts(c *gin.Context) {
	author, err := pc.users.GetByUsername(c.Param("username"))
	if err != nil {
		renderError(c, err)
		return
	}

	page, err := pc.posts.ListByAuthor(author.ID, pageParam(c))
	if err != nil {
		renderError(c, err)
		return
	}

	render(c, http.StatusOK, "user_posts.html", author.Username, gin.H{
		"Page":    page,
		"Author":  author,
		"BaseURL": "/user/" + author.Username,
	})
}
