package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	SessionScheduled = "scheduled"
	SessionCancelled = "cancelled"
)

// Session is one scheduled meeting inside a booking. Rows are generated as a
// series when the parent booking is created and share its lifecycle.
type Session struct {
	gorm.Model
	BookingID   uint      `gorm:"not null;index" json:"bookingId"`
	SessionDate time.Time `gorm:"not null" json:"sessionDate"`
	StartTime   string    `gorm:"not null" json:"startTime"` // HH:MM
	EndTime     string    `gorm:"not null" json:"endTime"`   // HH:MM
	SessionType string    `gorm:"default:'group'" json:"sessionType"`
	Location    string    `gorm:"default:'TBD'" json:"location"`
	Status      string    `gorm:"default:'scheduled'" json:"status"`
	IsDeleted   bool      `gorm:"default:false" json:"-"`
}
