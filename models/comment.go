package models

import "gorm.io/gorm"

type Comment struct {
	gorm.Model
	Text   string `gorm:"type:TEXT;not null"`
	UserID uint   `gorm:"index;not null"`
	PostID uint   `gorm:"index;not null"`
	User   User   `gorm:"foreignKey:UserID"`
}
