package models

import "gorm.io/gorm"

type Trainer struct {
	gorm.Model
	Name           string  `gorm:"not null" json:"name"`
	Email          string  `gorm:"default:''" json:"email"`
	Specialization string  `gorm:"default:''" json:"specialization"`
	Bio            string  `gorm:"default:''" json:"bio"`
	HourlyRate     float64 `json:"hourlyRate"`
	IsActive       bool    `gorm:"default:true" json:"isActive"`
	IsDeleted      bool    `gorm:"default:false" json:"-"`
}
