package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment payment statuses. completed, expired and failed are terminal:
// once reached they are never overwritten by a later webhook event.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentExpired   = "expired"
	PaymentFailed    = "failed"
)

// Enrollment tracks a user's payment and access state for one program. Created
// when a checkout session is requested, mutated only by webhook reconciliation
// and the expiry sweep.
type Enrollment struct {
	gorm.Model
	UserID          uint       `gorm:"not null;index" json:"userId"`
	ProgramID       uint       `gorm:"not null;index" json:"programId"`
	PaymentAmount   float64    `json:"paymentAmount"`
	PaymentStatus   string     `gorm:"default:'pending';index" json:"paymentStatus"`
	StripeSessionID string     `gorm:"index" json:"stripeSessionId"`
	StripePaymentID string     `gorm:"index" json:"stripePaymentId"`
	IdempotencyKey  string     `gorm:"unique" json:"-"`
	EnrolledAt      time.Time  `json:"enrolledAt"`
	AccessExpiresAt *time.Time `json:"accessExpiresAt"`
	IsDeleted       bool       `gorm:"default:false" json:"-"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Program *Program `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
}

// IsTerminal reports whether the enrollment has reached a final payment state.
func (e *Enrollment) IsTerminal() bool {
	return e.PaymentStatus == PaymentCompleted ||
		e.PaymentStatus == PaymentExpired ||
		e.PaymentStatus == PaymentFailed
}
