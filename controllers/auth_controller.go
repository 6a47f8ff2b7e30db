package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"goblog/apperror"
	"goblog/config"
	"goblog/middleware"
	"goblog/models"
	"goblog/services"
	"goblog/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	users       UserStore
	mailer      *utils.Mailer
	resetSecret string
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{
		users:       services.NewUserService(db),
		mailer:      utils.NewMailer(cfg),
		resetSecret: cfg.ResetSecret,
	}
}

func (ac *AuthController) RegisterForm(c *gin.Context) {
	render(c, http.StatusOK, "register.html", "Register", gin.H{
		"Form": &models.RegisterForm{},
	})
}

func (ac *AuthController) Register(c *gin.Context) {
	var form models.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusOK, "register.html", "Register", gin.H{
			"Form":   &form,
			"Errors": formErrors(err),
		})
		return
	}

	if _, err := ac.users.Register(&form); err != nil {
		appErr := apperror.AsAppError(err)
		if appErr.Type == apperror.DuplicateIdentityError {
			render(c, http.StatusOK, "register.html", "Register", gin.H{
				"Form":   &form,
				"Errors": fieldErrors(appErr),
			})
			return
		}
		renderError(c, err)
		return
	}

	utils.Flash(c, "success", "Your account has been created! You are now able to log in")
	c.Redirect(http.StatusFound, "/login")
}

func (ac *AuthController) LoginForm(c *gin.Context) {
	render(c, http.StatusOK, "login.html", "Login", gin.H{
		"Form": &models.LoginForm{},
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusOK, "login.html", "Login", gin.H{
			"Form":   &form,
			"Errors": formErrors(err),
		})
		return
	}

	user, err := ac.users.Authenticate(form.Email, form.Password)
	if err != nil {
		appErr := apperror.AsAppError(err)
		if appErr.Type == apperror.AuthFailedError {
			utils.Flash(c, "danger", appErr.Message)
			render(c, http.StatusOK, "login.html", "Login", gin.H{
				"Form": &form,
			})
			return
		}
		renderError(c, err)
		return
	}

	if err := middleware.Login(c, user.ID, form.Remember); err != nil {
		renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, safeNext(c.Query("next")))
}

func (ac *AuthController) Logout(c *gin.Context) {
	if err := middleware.Logout(c); err != nil {
		log.Printf("failed to clear session: %v", err)
	}
	c.Redirect(http.StatusFound, "/home")
}

func (ac *AuthController) ResetRequestForm(c *gin.Context) {
	render(c, http.StatusOK, "reset_request.html", "Reset Password", gin.H{
		"Form": &models.ResetRequestForm{},
	})
}

// ResetRequest mails a reset link. The flashed message is the same whether or
// not the address belongs to an account.
func (ac *AuthController) ResetRequest(c *gin.Context) {
	var form models.ResetRequestForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusOK, "reset_request.html", "Reset Password", gin.H{
			"Form":   &form,
			"Errors": formErrors(err),
		})
		return
	}

	if user, err := ac.users.GetByEmail(form.Email); err == nil {
		token, err := utils.GenerateResetToken(user.ID, ac.resetSecret)
		if err == nil {
			ac.mailer.SendReset(user.Email, resetURL(c, token))
		}
	}

	utils.Flash(c, "info", "An email has been sent with instructions to reset your password")
	c.Redirect(http.StatusFound, "/login")
}

func (ac *AuthController) ResetPasswordForm(c *gin.Context) {
	if _, err := utils.ParseResetToken(c.Param("token"), ac.resetSecret); err != nil {
		utils.Flash(c, "warning", "That is an invalid or expired token")
		c.Redirect(http.StatusFound, "/reset_password")
		return
	}
	render(c, http.StatusOK, "reset_token.html", "Reset Password", gin.H{
		"Form": &models.ResetPasswordForm{},
	})
}

func (ac *AuthController) ResetPassword(c *gin.Context) {
	userID, err := utils.ParseResetToken(c.Param("token"), ac.resetSecret)
	if err != nil {
		utils.Flash(c, "warning", "That is an invalid or expired token")
		c.Redirect(http.StatusFound, "/reset_password")
		return
	}

	var form models.ResetPasswordForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusOK, "reset_token.html", "Reset Password", gin.H{
			"Form":   &form,
			"Errors": formErrors(err),
		})
		return
	}

	if err := ac.users.UpdatePassword(userID, form.Password); err != nil {
		renderError(c, err)
		return
	}

	utils.Flash(c, "success", "Your password has been updated! You are now able to log in")
	c.Redirect(http.StatusFound, "/login")
}

// safeNext only honors relative in-site destinations, so the login redirect
// cannot be pointed at another host.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/home"
}

func resetURL(c *gin.Context, token string) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/reset_password/%s", scheme, c.Request.Host, token)
}
