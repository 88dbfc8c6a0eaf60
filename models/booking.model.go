package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses. A cancelled booking is terminal and never re-activates.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingPaid      = "paid"
	BookingCancelled = "cancelled"
)

type Booking struct {
	gorm.Model
	UserID              uint      `gorm:"not null;index" json:"userId"`
	ProgramID           uint      `gorm:"not null;index" json:"programId"`
	TrainerID           *uint     `json:"trainerId"`
	StartDate           time.Time `gorm:"not null" json:"startDate"`
	EndDate             time.Time `gorm:"not null" json:"endDate"`
	BookingStatus       string    `gorm:"default:'pending';index" json:"bookingStatus"`
	PaymentStatus       string    `gorm:"default:'pending'" json:"paymentStatus"`
	PaymentMethod       string    `gorm:"default:''" json:"paymentMethod"`
	PaymentReference    string    `gorm:"default:''" json:"paymentReference"`
	TotalAmount         float64   `json:"totalAmount"`
	SpecialRequirements string    `gorm:"default:''" json:"specialRequirements"`
	IsDeleted           bool      `gorm:"default:false" json:"-"`

	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Program  *Program  `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
	Trainer  *Trainer  `gorm:"foreignKey:TrainerID" json:"trainer,omitempty"`
	Sessions []Session `gorm:"foreignKey:BookingID" json:"sessions"`
}
