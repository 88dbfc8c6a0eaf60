package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentEvent records every processed webhook event id. The unique index is
// what makes redelivered events no-ops: reconciliation inserts the row in the
// same transaction as the state change, so a duplicate delivery cannot
// re-trigger notifications or re-extend access.
type PaymentEvent struct {
	gorm.Model
	EventID      string         `gorm:"unique;not null" json:"eventId"`
	EventType    string         `gorm:"not null" json:"eventType"`
	EnrollmentID uint           `gorm:"index" json:"enrollmentId"`
	Payload      datatypes.JSON `json:"payload"`
}
