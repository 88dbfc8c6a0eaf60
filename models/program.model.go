package models

import "gorm.io/gorm"

// Program types drive session generation on booking creation.
const (
	ProgramIntensive = "intensive"
	ProgramOngoing   = "ongoing"
)

type Program struct {
	gorm.Model
	Name            string  `gorm:"not null" json:"name"`
	ShortName       string  `gorm:"default:''" json:"shortName"`
	Description     string  `gorm:"default:''" json:"description"`
	DurationDays    int     `json:"durationDays"`
	Price           float64 `gorm:"not null" json:"price"`
	ProgramType     string  `gorm:"default:'intensive'" json:"programType"`
	MaxParticipants int     `gorm:"default:20" json:"maxParticipants"`
	FeaturedImage   string  `gorm:"default:''" json:"featuredImage"`
	IsActive        bool    `gorm:"default:true" json:"isActive"`
	IsDeleted       bool    `gorm:"default:false" json:"-"`
}
