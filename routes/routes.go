package routes

import (
	"html/template"

	"github.com/smiggiddy/100daysofcode-blog/config"
	"github.com/smiggiddy/100daysofcode-blog/controllers"
	"github.com/smiggiddy/100daysofcode-blog/middleware"
	"github.com/smiggiddy/100daysofcode-blog/services"
	"github.com/smiggiddy/100daysofcode-blog/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter создаёт gin.Engine, регистрирует все маршруты и возвращает роутер
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.RequestID())

	// CORS middleware ДО роутов
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.SetFuncMap(template.FuncMap{
		"gravatar": utils.GravatarURL,
	})
	r.LoadHTMLGlob(cfg.TemplatesGlob)

	// Личность резолвится один раз на запрос и дальше передаётся контекстом
	r.Use(middleware.CurrentUser(db, cfg.SecretKey))

	authService := services.NewAuthService(db)
	authController := controllers.NewAuthController(authService, cfg)
	pageController := controllers.NewPageController(cfg)

	r.GET("/register", authController.RegisterForm)
	r.POST("/register", authController.Register)
	r.GET("/login", authController.LoginForm)
	r.POST("/login", authController.Login)
	r.GET("/logout", authController.Logout)

	r.GET("/about", pageController.About)
	r.GET("/contact", pageController.Contact)
	r.POST("/contact", pageController.ContactSubmit)

	SetupPostRoutes(r, db)

	return r
}
