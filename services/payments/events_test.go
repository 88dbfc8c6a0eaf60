package paymentService

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func stripeEvent(t *testing.T, id, eventType string, object interface{}) stripe.Event {
	t.Helper()

	raw, err := json.Marshal(object)
	require.NoError(t, err)

	return stripe.Event{
		ID:   id,
		Type: stripe.EventType(eventType),
		Data: &stripe.EventData{Raw: raw},
	}
}

func TestDecodeCompletedEvent(t *testing.T) {
	ev, err := decodeEvent(stripeEvent(t, "evt_c", "checkout.session.completed", map[string]interface{}{
		"id":             "cs_1",
		"metadata":       map[string]string{"enrollment_id": "42"},
		"payment_intent": map[string]string{"id": "pi_9"},
	}))
	require.NoError(t, err)

	assert.Equal(t, EventCompleted, ev.Kind)
	assert.Equal(t, uint(42), ev.EnrollmentID)
	assert.Equal(t, "pi_9", ev.PaymentIntentID)
}

func TestDecodeExpiredEvent(t *testing.T) {
	ev, err := decodeEvent(stripeEvent(t, "evt_e", "checkout.session.expired", map[string]interface{}{
		"id":       "cs_2",
		"metadata": map[string]string{"enrollment_id": "7"},
	}))
	require.NoError(t, err)

	assert.Equal(t, EventExpired, ev.Kind)
	assert.Equal(t, uint(7), ev.EnrollmentID)
}

func TestDecodeFailedEvent(t *testing.T) {
	ev, err := decodeEvent(stripeEvent(t, "evt_f", "payment_intent.payment_failed", map[string]interface{}{
		"id": "pi_77",
	}))
	require.NoError(t, err)

	assert.Equal(t, EventFailed, ev.Kind)
	assert.Equal(t, "pi_77", ev.PaymentIntentID)
	assert.Zero(t, ev.EnrollmentID)
}

func TestDecodeUnknownEvent(t *testing.T) {
	ev, err := decodeEvent(stripeEvent(t, "evt_x", "customer.created", map[string]interface{}{
		"id": "cus_1",
	}))
	require.NoError(t, err)

	assert.Equal(t, EventOther, ev.Kind)
	assert.Equal(t, "customer.created", ev.Type)
}

func TestDecodeBadMetadataFallsBackToZero(t *testing.T) {
	ev, err := decodeEvent(stripeEvent(t, "evt_b", "checkout.session.completed", map[string]interface{}{
		"id":       "cs_3",
		"metadata": map[string]string{"enrollment_id": "not-a-number"},
	}))
	require.NoError(t, err)

	assert.Equal(t, EventCompleted, ev.Kind)
	assert.Zero(t, ev.EnrollmentID)
}
