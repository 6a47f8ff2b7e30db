package main

import (
	"html/template"
	"log"
	"time"

	"goblog/config"
	"goblog/controllers"
	"goblog/database"
	"goblog/middleware"
	"goblog/routes"
	"goblog/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	cfg := config.Load()

	db := database.Connect(cfg)
	database.Migrate(db)

	r := gin.Default()

	r.SetFuncMap(template.FuncMap{
		"date": func(t time.Time) string {
			return t.Format("January 2, 2006")
		},
	})
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("goblog_session", store))
	r.Use(middleware.Logger())
	r.Use(middleware.CurrentUser(services.NewUserService(db)))

	authController := controllers.NewAuthController(db, cfg)
	userController := controllers.NewUserController(db, cfg)
	postController := controllers.NewPostController(db)

	routes.SetupRoutes(r, authController, userController, postController)

	r.NoRoute(func(c *gin.Context) {
		c.HTML(404, "404.html", gin.H{"Title": "Not Found"})
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
