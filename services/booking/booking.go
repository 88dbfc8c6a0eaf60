package bookingService

import (
	"errors"
	"fmt"
	"time"

	"reinvent/models"
	"reinvent/services/serverrors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service owns booking lifecycle, availability and session generation. All
// multi-row writes run inside one transaction: a booking is never visible
// without its session series and vice versa.
type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service {
	return &Service{db: db}
}

type CreateBookingInput struct {
	UserID              *uint
	Guest               *GuestProfile
	ProgramID           uint
	TrainerID           *uint
	StartDate           time.Time
	EndDate             time.Time
	TotalAmount         *float64
	Location            string
	SpecialRequirements string
	PaymentMethod       string
}

// CreateBooking resolves the user, admits the booking against program capacity
// and generates the session series, all in one transaction.
func (s *Service) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	if in.UserID == nil && in.Guest == nil {
		return nil, fmt.Errorf("either user_id or client information is required: %w", serverrors.ErrValidation)
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, fmt.Errorf("end_date must not be before start_date: %w", serverrors.ErrValidation)
	}

	var program models.Program
	if err := s.db.Where("id = ? AND is_deleted = false", in.ProgramID).First(&program).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("program %d: %w", in.ProgramID, serverrors.ErrNotFound)
		}
		return nil, err
	}

	if in.TrainerID != nil {
		var trainer models.Trainer
		if err := s.db.Where("id = ? AND is_deleted = false", *in.TrainerID).First(&trainer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("trainer %d: %w", *in.TrainerID, serverrors.ErrNotFound)
			}
			return nil, err
		}
	}

	var created *models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Re-read the program under a row lock so concurrent bookings for the
		// last spot serialise. SQLite has no row locks; there the check is
		// only as strong as the surrounding transaction.
		locked := tx
		if tx.Dialector.Name() == "postgres" {
			locked = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := locked.Where("id = ?", program.ID).First(&program).Error; err != nil {
			return err
		}

		overlapping, err := countOverlapping(tx, program.ID, in.StartDate, in.EndDate)
		if err != nil {
			return err
		}
		if int(overlapping) >= program.MaxParticipants {
			return serverrors.ErrNoCapacity
		}

		userID, err := resolveBookingUser(tx, in)
		if err != nil {
			return err
		}

		amount := program.Price
		if in.TotalAmount != nil {
			amount = *in.TotalAmount
		}

		booking := models.Booking{
			UserID:              userID,
			ProgramID:           program.ID,
			TrainerID:           in.TrainerID,
			StartDate:           in.StartDate,
			EndDate:             in.EndDate,
			BookingStatus:       models.BookingPending,
			PaymentStatus:       models.PaymentPending,
			PaymentMethod:       in.PaymentMethod,
			TotalAmount:         amount,
			SpecialRequirements: in.SpecialRequirements,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		sessions := GenerateSessions(program, booking.ID, in.StartDate, in.EndDate, in.Location)
		if len(sessions) > 0 {
			if err := tx.Create(&sessions).Error; err != nil {
				return err
			}
		}

		created = &booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetBooking(created.ID)
}

// GetBooking fetches a booking with its related records.
func (s *Service) GetBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.
		Preload("User").
		Preload("Program").
		Preload("Trainer").
		Preload("Sessions").
		Where("id = ? AND is_deleted = false", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking %d: %w", id, serverrors.ErrNotFound)
		}
		return nil, err
	}
	return &booking, nil
}

// ListBookings returns bookings filtered by optional user id and status.
func (s *Service) ListBookings(userID *uint, status string) ([]models.Booking, error) {
	db := s.db.
		Preload("User").
		Preload("Program").
		Preload("Trainer").
		Preload("Sessions").
		Where("is_deleted = false")

	if userID != nil {
		db = db.Where("user_id = ?", *userID)
	}
	if status != "" {
		db = db.Where("booking_status = ?", status)
	}

	var bookings []models.Booking
	if err := db.Order("created_at desc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// BookingPatch is a merge patch: nil fields leave the stored value unchanged.
type BookingPatch struct {
	BookingStatus       *string
	PaymentStatus       *string
	SpecialRequirements *string
	PaymentReference    *string
}

var validBookingStatuses = map[string]bool{
	models.BookingPending:   true,
	models.BookingConfirmed: true,
	models.BookingPaid:      true,
	models.BookingCancelled: true,
}

// UpdateBooking applies a partial update. A cancelled booking never leaves the
// cancelled state.
func (s *Service) UpdateBooking(id uint, patch BookingPatch) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Where("id = ? AND is_deleted = false", id).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking %d: %w", id, serverrors.ErrNotFound)
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.BookingStatus != nil {
		if !validBookingStatuses[*patch.BookingStatus] {
			return nil, fmt.Errorf("unknown booking status %q: %w", *patch.BookingStatus, serverrors.ErrValidation)
		}
		if booking.BookingStatus == models.BookingCancelled && *patch.BookingStatus != models.BookingCancelled {
			return nil, fmt.Errorf("cancelled booking cannot be re-activated: %w", serverrors.ErrTerminalState)
		}
		updates["booking_status"] = *patch.BookingStatus
	}
	if patch.PaymentStatus != nil {
		updates["payment_status"] = *patch.PaymentStatus
	}
	if patch.SpecialRequirements != nil {
		updates["special_requirements"] = *patch.SpecialRequirements
	}
	if patch.PaymentReference != nil {
		updates["payment_reference"] = *patch.PaymentReference
	}

	if len(updates) > 0 {
		if err := s.db.Model(&booking).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetBooking(id)
}

// ConfirmBooking moves a pending booking to confirmed.
func (s *Service) ConfirmBooking(id uint) (*models.Booking, error) {
	status := models.BookingConfirmed
	return s.UpdateBooking(id, BookingPatch{BookingStatus: &status})
}

// CancelBooking cancels a booking and every session in its series in one
// transaction. Sessions of other bookings are untouched.
func (s *Service) CancelBooking(id uint) error {
	var booking models.Booking
	if err := s.db.Where("id = ? AND is_deleted = false", id).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("booking %d: %w", id, serverrors.ErrNotFound)
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Booking{}).
			Where("id = ?", booking.ID).
			Update("booking_status", models.BookingCancelled).Error; err != nil {
			return err
		}
		return tx.Model(&models.Session{}).
			Where("booking_id = ?", booking.ID).
			Update("status", models.SessionCancelled).Error
	})
}
