package paymentService

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"reinvent/models"
	"reinvent/services/serverrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notifier is the side-channel (email, ops alerts) used after reconciliation
// commits. Notification rows themselves are written inside the transaction.
type Notifier interface {
	Welcome(user models.User, programName string)
	PaymentFailed(user models.User)
}

// Service owns enrollment checkout intents and webhook reconciliation. The
// payment processor and notifier are injected at construction.
type Service struct {
	db       *gorm.DB
	checkout CheckoutClient
	notifier Notifier
	currency string
}

func New(db *gorm.DB, checkout CheckoutClient, notifier Notifier, currency string) *Service {
	return &Service{db: db, checkout: checkout, notifier: notifier, currency: currency}
}

const checkoutExpiry = 24 * time.Hour

type CheckoutResult struct {
	CheckoutURL  string `json:"checkoutUrl"`
	SessionID    string `json:"sessionId"`
	EnrollmentID uint   `json:"enrollmentId"`
}

// CreateCheckout writes a pending enrollment, requests a checkout session from
// the processor and stores the session reference. If the processor call fails
// the enrollment row is removed again, so no orphaned pending enrollment is
// left behind.
func (s *Service) CreateCheckout(programID, userID uint, customerEmail, origin string) (*CheckoutResult, error) {
	var program models.Program
	if err := s.db.Where("id = ? AND is_deleted = false", programID).First(&program).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("program %d: %w", programID, serverrors.ErrNotFound)
		}
		return nil, err
	}

	var user models.User
	if err := s.db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, serverrors.ErrNotFound)
		}
		return nil, err
	}

	enrollment := models.Enrollment{
		UserID:         user.ID,
		ProgramID:      program.ID,
		PaymentAmount:  program.Price,
		PaymentStatus:  models.PaymentPending,
		IdempotencyKey: uuid.NewString(),
		EnrolledAt:     time.Now().UTC(),
	}
	if err := s.db.Create(&enrollment).Error; err != nil {
		return nil, err
	}

	sess, err := s.checkout.CreateSession(CheckoutParams{
		AmountCents:        int64(math.Round(program.Price * 100)),
		Currency:           s.currency,
		ProductName:        program.Name,
		ProductDescription: program.Description,
		ImageURL:           program.FeaturedImage,
		SuccessURL:         origin + "/dashboard?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:          origin + "/programs/" + program.ShortName,
		CustomerEmail:      customerEmail,
		Metadata: map[string]string{
			"enrollment_id": strconv.FormatUint(uint64(enrollment.ID), 10),
			"program_id":    strconv.FormatUint(uint64(program.ID), 10),
			"user_id":       strconv.FormatUint(uint64(user.ID), 10),
		},
		ExpiresAt:      time.Now().Add(checkoutExpiry).Unix(),
		IdempotencyKey: enrollment.IdempotencyKey,
	})
	if err != nil {
		// Compensating cleanup: the checkout intent never existed as far as
		// the caller is concerned.
		s.db.Delete(&enrollment)
		return nil, fmt.Errorf("%w: %v", serverrors.ErrExternal, err)
	}

	if err := s.db.Model(&enrollment).Update("stripe_session_id", sess.ID).Error; err != nil {
		return nil, err
	}

	return &CheckoutResult{
		CheckoutURL:  sess.URL,
		SessionID:    sess.ID,
		EnrollmentID: enrollment.ID,
	}, nil
}

// PaymentVerification pairs the processor's view of a session with the stored
// enrollment state.
type PaymentVerification struct {
	PaymentStatus string             `json:"paymentStatus"`
	Enrollment    *models.Enrollment `json:"enrollment"`
}

// VerifyPayment retrieves the checkout session from the processor and resolves
// the enrollment through the session metadata.
func (s *Service) VerifyPayment(sessionID string) (*PaymentVerification, error) {
	sess, err := s.checkout.GetSession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", serverrors.ErrExternal, err)
	}

	enrollmentID := enrollmentIDFromMetadata(sess.Metadata)
	if enrollmentID == 0 {
		return nil, fmt.Errorf("session %s carries no enrollment reference: %w", sessionID, serverrors.ErrValidation)
	}

	enrollment, err := s.EnrollmentStatus(enrollmentID)
	if err != nil {
		return nil, err
	}

	return &PaymentVerification{
		PaymentStatus: sess.PaymentStatus,
		Enrollment:    enrollment,
	}, nil
}

// EnrollmentStatus returns one enrollment with its program.
func (s *Service) EnrollmentStatus(id uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := s.db.
		Preload("Program").
		Where("id = ? AND is_deleted = false", id).
		First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("enrollment %d: %w", id, serverrors.ErrNotFound)
		}
		return nil, err
	}
	return &enrollment, nil
}

// UserEnrollments lists a user's enrollments, newest first.
func (s *Service) UserEnrollments(userID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := s.db.
		Preload("Program").
		Where("user_id = ? AND is_deleted = false", userID).
		Order("enrolled_at desc").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

// ExpireStalePending marks pending enrollments older than maxAge as expired.
// The checkout sessions behind them have long expired at the processor; this
// sweep closes the window left when a webhook never arrives.
func (s *Service) ExpireStalePending(maxAge time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-maxAge)
	result := s.db.Model(&models.Enrollment{}).
		Where("payment_status = ? AND is_deleted = false", models.PaymentPending).
		Where("enrolled_at < ?", cutoff).
		Update("payment_status", models.PaymentExpired)
	return result.RowsAffected, result.Error
}
