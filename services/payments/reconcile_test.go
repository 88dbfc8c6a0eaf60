package paymentService

import (
	"testing"
	"time"

	"reinvent/models"
	"reinvent/services/serverrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedEvent(id string, enrollmentID uint) *Event {
	return &Event{
		ID:              id,
		Type:            eventTypeCompleted,
		Kind:            EventCompleted,
		EnrollmentID:    enrollmentID,
		PaymentIntentID: "pi_123",
	}
}

func TestApplyCompletedEvent(t *testing.T) {
	svc, db, _, notifier := newTestService(t)
	enrollment, user, program := seedEnrollment(t, db, models.PaymentPending)

	require.NoError(t, svc.ApplyEvent(completedEvent("evt_1", enrollment.ID)))

	var reloaded models.Enrollment
	require.NoError(t, db.First(&reloaded, enrollment.ID).Error)
	assert.Equal(t, models.PaymentCompleted, reloaded.PaymentStatus)
	assert.Equal(t, "pi_123", reloaded.StripePaymentID)
	require.NotNil(t, reloaded.AccessExpiresAt)
	assert.WithinDuration(t, time.Now().UTC().Add(365*24*time.Hour), *reloaded.AccessExpiresAt, time.Minute)

	// Welcome notification row plus the side-channel call
	var notifications []models.Notification
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Welcome to your program!", notifications[0].Title)
	assert.Equal(t, models.NotificationSuccess, notifications[0].Type)

	assert.Equal(t, []string{program.Name}, notifier.welcomes)
}

func TestApplyCompletedEventTwiceIsIdempotent(t *testing.T) {
	svc, db, _, notifier := newTestService(t)
	enrollment, user, _ := seedEnrollment(t, db, models.PaymentPending)

	ev := completedEvent("evt_dup", enrollment.ID)
	require.NoError(t, svc.ApplyEvent(ev))
	first := mustGetEnrollment(t, svc, enrollment.ID)

	require.NoError(t, svc.ApplyEvent(ev))
	second := mustGetEnrollment(t, svc, enrollment.ID)

	assert.Equal(t, first.PaymentStatus, second.PaymentStatus)
	assert.Equal(t, first.AccessExpiresAt.Unix(), second.AccessExpiresAt.Unix())

	var notifications int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ?", user.ID).Count(&notifications).Error)
	assert.Equal(t, int64(1), notifications)
	assert.Len(t, notifier.welcomes, 1)
}

func TestTerminalStateIsMonotonic(t *testing.T) {
	svc, db, _, _ := newTestService(t)
	enrollment, _, _ := seedEnrollment(t, db, models.PaymentPending)

	require.NoError(t, svc.ApplyEvent(completedEvent("evt_done", enrollment.ID)))

	// A late expiry for the same enrollment must not regress it
	expired := &Event{
		ID:           "evt_late_expiry",
		Type:         eventTypeExpired,
		Kind:         EventExpired,
		EnrollmentID: enrollment.ID,
	}
	require.NoError(t, svc.ApplyEvent(expired))

	reloaded := mustGetEnrollment(t, svc, enrollment.ID)
	assert.Equal(t, models.PaymentCompleted, reloaded.PaymentStatus)
}

func TestApplyExpiredEvent(t *testing.T) {
	svc, db, _, notifier := newTestService(t)
	enrollment, _, _ := seedEnrollment(t, db, models.PaymentPending)

	require.NoError(t, svc.ApplyEvent(&Event{
		ID:           "evt_exp",
		Type:         eventTypeExpired,
		Kind:         EventExpired,
		EnrollmentID: enrollment.ID,
	}))

	reloaded := mustGetEnrollment(t, svc, enrollment.ID)
	assert.Equal(t, models.PaymentExpired, reloaded.PaymentStatus)

	// Expiry is silent: no notification of either kind
	var notifications int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&notifications).Error)
	assert.Zero(t, notifications)
	assert.Empty(t, notifier.welcomes)
}

func TestApplyFailedEventMatchesByPaymentIntent(t *testing.T) {
	svc, db, _, notifier := newTestService(t)
	enrollment, user, _ := seedEnrollment(t, db, models.PaymentPending)
	require.NoError(t, db.Model(&enrollment).
		Update("stripe_payment_id", "pi_fail_1").Error)

	require.NoError(t, svc.ApplyEvent(&Event{
		ID:              "evt_fail",
		Type:            eventTypeFailed,
		Kind:            EventFailed,
		PaymentIntentID: "pi_fail_1",
	}))

	reloaded := mustGetEnrollment(t, svc, enrollment.ID)
	assert.Equal(t, models.PaymentFailed, reloaded.PaymentStatus)

	var notifications []models.Notification
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Payment Failed", notifications[0].Title)
	assert.Equal(t, models.NotificationError, notifications[0].Type)

	assert.Equal(t, []uint{user.ID}, notifier.failures)
}

func TestApplyFailedEventUnknownPaymentIntent(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	err := svc.ApplyEvent(&Event{
		ID:              "evt_unmatched",
		Type:            eventTypeFailed,
		Kind:            EventFailed,
		PaymentIntentID: "pi_nobody",
	})
	assert.ErrorIs(t, err, serverrors.ErrNotFound)
}

func TestApplyUnrecognizedEventIsIgnored(t *testing.T) {
	svc, db, _, notifier := newTestService(t)
	enrollment, _, _ := seedEnrollment(t, db, models.PaymentPending)

	require.NoError(t, svc.ApplyEvent(&Event{
		ID:   "evt_other",
		Type: "invoice.created",
		Kind: EventOther,
	}))

	reloaded := mustGetEnrollment(t, svc, enrollment.ID)
	assert.Equal(t, models.PaymentPending, reloaded.PaymentStatus)
	assert.Empty(t, notifier.welcomes)

	var events int64
	require.NoError(t, db.Model(&models.PaymentEvent{}).Count(&events).Error)
	assert.Zero(t, events)
}

func mustGetEnrollment(t *testing.T, svc *Service, id uint) *models.Enrollment {
	t.Helper()
	enrollment, err := svc.EnrollmentStatus(id)
	require.NoError(t, err)
	return enrollment
}
