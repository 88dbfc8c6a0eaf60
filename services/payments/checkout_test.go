package paymentService

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"reinvent/models"
	"reinvent/services/serverrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateCheckoutStoresSessionReference(t *testing.T) {
	svc, db, checkout, _ := newTestService(t)

	user := models.User{Username: "quinn", Email: "quinn@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	program := models.Program{
		Name: "Intensive Reset", ShortName: "reset", Price: 499.50,
		ProgramType: models.ProgramIntensive, MaxParticipants: 20, IsActive: true,
	}
	require.NoError(t, db.Create(&program).Error)

	result, err := svc.CreateCheckout(program.ID, user.ID, "quinn@example.com", "https://app.example.com")
	require.NoError(t, err)

	assert.NotEmpty(t, result.CheckoutURL)
	assert.NotEmpty(t, result.SessionID)

	var enrollment models.Enrollment
	require.NoError(t, db.First(&enrollment, result.EnrollmentID).Error)
	assert.Equal(t, models.PaymentPending, enrollment.PaymentStatus)
	assert.Equal(t, program.Price, enrollment.PaymentAmount)
	assert.Equal(t, result.SessionID, enrollment.StripeSessionID)
	assert.NotEmpty(t, enrollment.IdempotencyKey)

	// The processor request carries the reconciliation metadata
	require.NotNil(t, checkout.lastParams)
	assert.Equal(t, int64(49950), checkout.lastParams.AmountCents)
	assert.Equal(t, "usd", checkout.lastParams.Currency)
	assert.Equal(t, strconv.FormatUint(uint64(enrollment.ID), 10), checkout.lastParams.Metadata["enrollment_id"])
	assert.Equal(t, "https://app.example.com/dashboard?session_id={CHECKOUT_SESSION_ID}", checkout.lastParams.SuccessURL)
	assert.Equal(t, "https://app.example.com/programs/reset", checkout.lastParams.CancelURL)
	assert.InDelta(t, time.Now().Add(24*time.Hour).Unix(), checkout.lastParams.ExpiresAt, 60)
}

func TestCreateCheckoutCleansUpWhenProcessorFails(t *testing.T) {
	svc, db, checkout, _ := newTestService(t)
	checkout.createErr = errors.New("stripe is down")

	user := models.User{Username: "ruth", Email: "ruth@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	program := models.Program{
		Name: "Intensive Reset", Price: 100,
		ProgramType: models.ProgramIntensive, MaxParticipants: 20, IsActive: true,
	}
	require.NoError(t, db.Create(&program).Error)

	_, err := svc.CreateCheckout(program.ID, user.ID, "", "https://app.example.com")
	assert.ErrorIs(t, err, serverrors.ErrExternal)

	// No orphaned pending enrollment remains
	var enrollment models.Enrollment
	err = db.Where("user_id = ?", user.ID).First(&enrollment).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateCheckoutUnknownReferences(t *testing.T) {
	svc, db, _, _ := newTestService(t)

	user := models.User{Username: "sven", Email: "sven@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	_, err := svc.CreateCheckout(404, user.ID, "", "https://app.example.com")
	assert.ErrorIs(t, err, serverrors.ErrNotFound)

	program := models.Program{Name: "P", Price: 1, ProgramType: "intensive", MaxParticipants: 5, IsActive: true}
	require.NoError(t, db.Create(&program).Error)

	_, err = svc.CreateCheckout(program.ID, 404, "", "https://app.example.com")
	assert.ErrorIs(t, err, serverrors.ErrNotFound)
}

func TestVerifyPaymentResolvesEnrollmentFromMetadata(t *testing.T) {
	svc, db, checkout, _ := newTestService(t)

	enrollment, _, _ := seedEnrollment(t, db, models.PaymentPending)
	checkout.sessions["cs_ok"] = &CheckoutSession{
		ID:            "cs_ok",
		PaymentStatus: "paid",
		Metadata:      map[string]string{"enrollment_id": strconv.FormatUint(uint64(enrollment.ID), 10)},
	}

	verification, err := svc.VerifyPayment("cs_ok")
	require.NoError(t, err)

	assert.Equal(t, "paid", verification.PaymentStatus)
	require.NotNil(t, verification.Enrollment)
	assert.Equal(t, enrollment.ID, verification.Enrollment.ID)
	require.NotNil(t, verification.Enrollment.Program)
	assert.Equal(t, "Reinvention Lab", verification.Enrollment.Program.Name)
}

func TestVerifyPaymentRejectsSessionWithoutEnrollment(t *testing.T) {
	svc, _, checkout, _ := newTestService(t)

	checkout.sessions["cs_bare"] = &CheckoutSession{ID: "cs_bare", PaymentStatus: "unpaid"}

	_, err := svc.VerifyPayment("cs_bare")
	assert.ErrorIs(t, err, serverrors.ErrValidation)
}

func TestUserEnrollmentsNewestFirst(t *testing.T) {
	svc, db, _, _ := newTestService(t)

	enrollment, user, program := seedEnrollment(t, db, models.PaymentCompleted)

	later := models.Enrollment{
		UserID:         user.ID,
		ProgramID:      program.ID,
		PaymentAmount:  program.Price,
		PaymentStatus:  models.PaymentPending,
		IdempotencyKey: "key-later",
		EnrolledAt:     enrollment.EnrolledAt.Add(time.Hour),
	}
	require.NoError(t, db.Create(&later).Error)

	enrollments, err := svc.UserEnrollments(user.ID)
	require.NoError(t, err)

	require.Len(t, enrollments, 2)
	assert.Equal(t, later.ID, enrollments[0].ID)
	assert.Equal(t, enrollment.ID, enrollments[1].ID)
}

func TestExpireStalePending(t *testing.T) {
	svc, db, _, _ := newTestService(t)

	stale, _, program := seedEnrollment(t, db, models.PaymentPending)
	require.NoError(t, db.Model(&stale).
		Update("enrolled_at", time.Now().UTC().Add(-48*time.Hour)).Error)

	fresh := models.Enrollment{
		UserID:         stale.UserID,
		ProgramID:      program.ID,
		PaymentStatus:  models.PaymentPending,
		IdempotencyKey: "key-fresh",
		EnrolledAt:     time.Now().UTC(),
	}
	require.NoError(t, db.Create(&fresh).Error)

	n, err := svc.ExpireStalePending(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var reloaded models.Enrollment
	require.NoError(t, db.First(&reloaded, stale.ID).Error)
	assert.Equal(t, models.PaymentExpired, reloaded.PaymentStatus)

	reloaded = models.Enrollment{}
	require.NoError(t, db.First(&reloaded, fresh.ID).Error)
	assert.Equal(t, models.PaymentPending, reloaded.PaymentStatus)
}
