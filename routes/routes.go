package routes

import (
	"goblog/controllers"
	"goblog/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authController *controllers.AuthController, userController *controllers.UserController, postController *controllers.PostController) {
	r.GET("/", postController.Home)
	r.GET("/home", postController.Home)
	r.GET("/about", postController.About)

	guest := r.Group("/", middleware.GuestOnly())
	{
		guest.GET("/register", authController.RegisterForm)
		guest.POST("/register", authController.Register)
		guest.GET("/login", authController.LoginForm)
		guest.POST("/login", authController.Login)
		guest.GET("/reset_password", authController.ResetRequestForm)
		guest.POST("/reset_password", authController.ResetRequest)
		guest.GET("/reset_password/:token", authController.ResetPasswordForm)
		guest.POST("/reset_password/:token", authController.ResetPassword)
	}

	r.GET("/logout", authController.Logout)

	account := r.Group("/account", middleware.AuthRequired())
	{
		account.GET("", userController.Account)
		account.POST("", userController.UpdateAccount)
	}

	// /post/new shares the :id wildcard; the controller dispatches the
	// literal segment.
	post := r.Group("/post")
	{
		post.GET("/:id", postController.Show)
		post.POST("/:id", postController.Create)

		authored := post.Group("", middleware.AuthRequired())
		{
			authored.GET("/:id/update", postController.EditForm)
			authored.POST("/:id/update", postController.Update)
			authored.POST("/:id/delete", postController.Delete)
		}
	}

	r.GET("/user/:username", postController.UserPosts)
}
