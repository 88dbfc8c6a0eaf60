package models

import "gorm.io/gorm"

const (
	NotificationSuccess = "success"
	NotificationError   = "error"
	NotificationInfo    = "info"
)

type Notification struct {
	gorm.Model
	UserID    uint   `gorm:"not null;index" json:"userId"`
	Title     string `gorm:"not null" json:"title"`
	Message   string `gorm:"default:''" json:"message"`
	Type      string `gorm:"default:'info'" json:"type"`
	Category  string `gorm:"default:''" json:"category"`
	ActionURL string `gorm:"default:''" json:"actionUrl"`
	IsRead    bool   `gorm:"default:false" json:"isRead"`
	IsDeleted bool   `gorm:"default:false" json:"-"`
}
