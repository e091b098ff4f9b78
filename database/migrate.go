package database

import (
	"github.com/smiggiddy/100daysofcode-blog/models"

	"gorm.io/gorm"
)

// Migrate создаёт таблицы users, posts и comments, если их ещё нет
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{})
}
