package paymentService

import (
	"errors"
	"fmt"
	"log"
	"time"

	"reinvent/models"
	"reinvent/services/serverrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const accessDuration = 365 * 24 * time.Hour

// ApplyEvent drives the enrollment payment state machine:
//
//	pending -> completed | expired | failed
//
// Terminal states are monotonic: once an enrollment has reached any of them,
// later terminal events are recorded and otherwise ignored, so a delayed
// "expired" can never regress a completed enrollment. Duplicate deliveries of
// the same event id short-circuit before any notification is sent.
func (s *Service) ApplyEvent(ev *Event) error {
	if ev.Kind == EventOther {
		log.Printf("Unhandled webhook event type: %s", ev.Type)
		return nil
	}

	var processed models.PaymentEvent
	if err := s.db.Where("event_id = ?", ev.ID).First(&processed).Error; err == nil {
		log.Printf("Webhook event %s already processed, skipping", ev.ID)
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	enrollment, err := s.findEnrollment(ev)
	if err != nil {
		return err
	}

	var (
		user        models.User
		programName string
		notifyKind  EventKind = EventOther
	)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// The event row shares the transaction with the state change; the
		// unique index on event_id is the idempotency guard under redelivery.
		record := models.PaymentEvent{
			EventID:      ev.ID,
			EventType:    ev.Type,
			EnrollmentID: enrollment.ID,
			Payload:      datatypes.JSON(ev.Raw),
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		if enrollment.IsTerminal() {
			log.Printf("Enrollment %d already %s, ignoring event %s (%s)",
				enrollment.ID, enrollment.PaymentStatus, ev.ID, ev.Type)
			return nil
		}

		switch ev.Kind {
		case EventCompleted:
			expires := time.Now().UTC().Add(accessDuration)
			updates := map[string]interface{}{
				"payment_status":    models.PaymentCompleted,
				"access_expires_at": expires,
			}
			if ev.PaymentIntentID != "" {
				updates["stripe_payment_id"] = ev.PaymentIntentID
			}
			if err := tx.Model(enrollment).Updates(updates).Error; err != nil {
				return err
			}

			var program models.Program
			if err := tx.Where("id = ?", enrollment.ProgramID).First(&program).Error; err != nil {
				return err
			}
			if err := tx.Where("id = ?", enrollment.UserID).First(&user).Error; err != nil {
				return err
			}
			programName = program.Name

			notification := models.Notification{
				UserID:    enrollment.UserID,
				Title:     "Welcome to your program!",
				Message:   fmt.Sprintf("You have successfully enrolled in %s. Start your learning journey today!", program.Name),
				Type:      models.NotificationSuccess,
				Category:  "course",
				ActionURL: "/dashboard",
			}
			if err := tx.Create(&notification).Error; err != nil {
				return err
			}
			notifyKind = EventCompleted

		case EventExpired:
			if err := tx.Model(enrollment).
				Update("payment_status", models.PaymentExpired).Error; err != nil {
				return err
			}

		case EventFailed:
			if err := tx.Model(enrollment).
				Update("payment_status", models.PaymentFailed).Error; err != nil {
				return err
			}
			if err := tx.Where("id = ?", enrollment.UserID).First(&user).Error; err != nil {
				return err
			}

			notification := models.Notification{
				UserID:   enrollment.UserID,
				Title:    "Payment Failed",
				Message:  "Your payment could not be processed. Please try again or contact support.",
				Type:     models.NotificationError,
				Category: "payment",
			}
			if err := tx.Create(&notification).Error; err != nil {
				return err
			}
			notifyKind = EventFailed
		}

		return nil
	})
	if err != nil {
		return err
	}

	if s.notifier != nil {
		switch notifyKind {
		case EventCompleted:
			s.notifier.Welcome(user, programName)
		case EventFailed:
			s.notifier.PaymentFailed(user)
		}
	}

	return nil
}

// findEnrollment resolves the enrollment an event belongs to: completed and
// expired events carry the enrollment id in metadata, failed events only the
// payment intent reference.
func (s *Service) findEnrollment(ev *Event) (*models.Enrollment, error) {
	var enrollment models.Enrollment

	switch ev.Kind {
	case EventCompleted, EventExpired:
		if ev.EnrollmentID == 0 {
			return nil, fmt.Errorf("event %s carries no enrollment id: %w", ev.ID, serverrors.ErrValidation)
		}
		err := s.db.Where("id = ? AND is_deleted = false", ev.EnrollmentID).First(&enrollment).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("enrollment %d: %w", ev.EnrollmentID, serverrors.ErrNotFound)
			}
			return nil, err
		}

	case EventFailed:
		if ev.PaymentIntentID == "" {
			return nil, fmt.Errorf("event %s carries no payment intent id: %w", ev.ID, serverrors.ErrValidation)
		}
		err := s.db.Where("stripe_payment_id = ? AND is_deleted = false", ev.PaymentIntentID).First(&enrollment).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("enrollment for payment %s: %w", ev.PaymentIntentID, serverrors.ErrNotFound)
			}
			return nil, err
		}
	}

	return &enrollment, nil
}
