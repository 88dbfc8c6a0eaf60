package paymentService

import (
	"encoding/json"
	"fmt"
	"strconv"

	"reinvent/services/serverrors"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

// EventKind is the closed set of webhook outcomes the reconciler handles.
// Anything else maps to EventOther and is logged, never applied.
type EventKind int

const (
	EventCompleted EventKind = iota
	EventExpired
	EventFailed
	EventOther
)

const (
	eventTypeCompleted = "checkout.session.completed"
	eventTypeExpired   = "checkout.session.expired"
	eventTypeFailed    = "payment_intent.payment_failed"
)

// Event is a verified, decoded webhook delivery. Completed and expired events
// carry the enrollment id from the checkout metadata; failed events are
// matched by the payment intent id instead.
type Event struct {
	ID              string
	Type            string
	Kind            EventKind
	EnrollmentID    uint
	PaymentIntentID string
	Raw             []byte
}

// ParseEvent verifies the webhook signature and decodes the payload into an
// Event. A signature or payload problem is the caller's 400; everything past
// this point is internal bookkeeping.
func ParseEvent(payload []byte, sigHeader, secret string) (*Event, error) {
	stripeEvent, err := webhook.ConstructEvent(payload, sigHeader, secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", serverrors.ErrExternal, err)
	}
	return decodeEvent(stripeEvent)
}

func decodeEvent(stripeEvent stripe.Event) (*Event, error) {
	ev := &Event{
		ID:   stripeEvent.ID,
		Type: string(stripeEvent.Type),
		Kind: EventOther,
		Raw:  stripeEvent.Data.Raw,
	}

	switch string(stripeEvent.Type) {
	case eventTypeCompleted, eventTypeExpired:
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(stripeEvent.Data.Raw, &sess); err != nil {
			return nil, fmt.Errorf("decode checkout session from event %s: %w", stripeEvent.ID, err)
		}
		ev.EnrollmentID = enrollmentIDFromMetadata(sess.Metadata)
		if sess.PaymentIntent != nil {
			ev.PaymentIntentID = sess.PaymentIntent.ID
		}
		if string(stripeEvent.Type) == eventTypeCompleted {
			ev.Kind = EventCompleted
		} else {
			ev.Kind = EventExpired
		}

	case eventTypeFailed:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(stripeEvent.Data.Raw, &intent); err != nil {
			return nil, fmt.Errorf("decode payment intent from event %s: %w", stripeEvent.ID, err)
		}
		ev.Kind = EventFailed
		ev.PaymentIntentID = intent.ID
	}

	return ev, nil
}

func enrollmentIDFromMetadata(metadata map[string]string) uint {
	raw, ok := metadata["enrollment_id"]
	if !ok {
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
