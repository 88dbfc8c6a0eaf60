package bookingService

import (
	"errors"
	"fmt"
	"time"

	"reinvent/models"
	"reinvent/services/serverrors"

	"gorm.io/gorm"
)

// Statuses that occupy a program spot. Pending bookings do not hold capacity
// until they are confirmed.
var activeBookingStatuses = []string{models.BookingConfirmed, models.BookingPaid}

type Availability struct {
	Available       bool `json:"available"`
	AvailableSpots  int  `json:"availableSpots"`
	MaxParticipants int  `json:"maxParticipants"`
}

// CheckAvailability counts active bookings whose date range overlaps the query
// range and reports the remaining spots, clamped at zero.
func (s *Service) CheckAvailability(programID uint, start, end time.Time) (*Availability, error) {
	var program models.Program
	if err := s.db.Where("id = ? AND is_deleted = false", programID).First(&program).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("program %d: %w", programID, serverrors.ErrNotFound)
		}
		return nil, err
	}

	overlapping, err := countOverlapping(s.db, programID, start, end)
	if err != nil {
		return nil, err
	}

	spots := program.MaxParticipants - int(overlapping)
	if spots < 0 {
		spots = 0
	}

	return &Availability{
		Available:       spots > 0,
		AvailableSpots:  spots,
		MaxParticipants: program.MaxParticipants,
	}, nil
}

// countOverlapping applies the interval-overlap test
// booking.start <= query.end AND booking.end >= query.start.
func countOverlapping(db *gorm.DB, programID uint, start, end time.Time) (int64, error) {
	var count int64
	err := db.Model(&models.Booking{}).
		Where("program_id = ? AND is_deleted = false", programID).
		Where("booking_status IN ?", activeBookingStatuses).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Count(&count).Error
	return count, err
}
