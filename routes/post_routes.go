package routes

import (
	"github.com/smiggiddy/100daysofcode-blog/controllers"
	"github.com/smiggiddy/100daysofcode-blog/middleware"
	"github.com/smiggiddy/100daysofcode-blog/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupPostRoutes(r *gin.Engine, db *gorm.DB) {
	postService := services.NewPostService(db)
	commentService := services.NewCommentService(db)
	postController := controllers.NewPostController(postService, commentService)
	commentController := controllers.NewCommentController(commentService)

	r.GET("/", postController.Index)
	r.GET("/post/:id", postController.Show)
	r.POST("/post/:id", middleware.LoginRequired(), commentController.Create)

	// Управление постами — только для admin, гард отрабатывает до хендлера
	admin := r.Group("/", middleware.AdminOnly())
	{
		admin.GET("/new-post", postController.NewForm)
		admin.POST("/new-post", postController.Create)
		admin.GET("/edit-post/:id", postController.EditForm)
		admin.POST("/edit-post/:id", postController.Update)
		admin.GET("/delete/:id", postController.Delete)
	}
}
