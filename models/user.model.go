package models

import (
	"strings"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username  string `gorm:"unique;not null" json:"username"`
	FirstName string `gorm:"default:''" json:"firstName"`
	LastName  string `gorm:"default:''" json:"lastName"`
	Email     string `gorm:"unique;not null" json:"email"`
	Phone     string `gorm:"default:''" json:"phone"`
	Company   string `gorm:"default:''" json:"company"`
	Position  string `gorm:"default:''" json:"position"`
	Role      string `gorm:"default:'USER'" json:"role"` // USER, ADMIN
	Password  string `json:"-"`
	IsDeleted bool   `gorm:"default:false" json:"-"`
}

// FullName joins first and last name, skipping the empty part
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
