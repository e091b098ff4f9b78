package models

import "gorm.io/gorm"

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type User struct {
	gorm.Model
	Email    string `gorm:"type:VARCHAR(300);uniqueIndex;not null"`
	Name     string `gorm:"type:VARCHAR(100);not null"`
	Password string `gorm:"type:VARCHAR(255);not null"`
	Role     string `gorm:"type:VARCHAR(20);not null;default:member"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
