package models

import "gorm.io/gorm"

// Post хранит статью блога. Date — человекочитаемая строка ("January 2, 2006"),
// как в исходной схеме.
type Post struct {
	gorm.Model
	Title    string `gorm:"type:VARCHAR(250);uniqueIndex;not null"`
	Subtitle string `gorm:"type:VARCHAR(250);not null"`
	Date     string `gorm:"type:VARCHAR(250);not null"`
	Body     string `gorm:"type:TEXT;not null"`
	ImgURL   string `gorm:"type:VARCHAR(250);not null"`
	AuthorID uint   `gorm:"index;not null"`
	Author   User   `gorm:"foreignKey:AuthorID"`
}
