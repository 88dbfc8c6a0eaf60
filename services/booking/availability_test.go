package bookingService

import (
	"testing"
	"time"

	"reinvent/models"
	"reinvent/services/serverrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAvailabilityCountsOverlappingActiveBookings(t *testing.T) {
	db := newTestDB(t)
	svc := New(db)

	program := createProgram(t, db, models.ProgramIntensive, 5)
	user := createUser(t, db, "alice", "alice@example.com")

	queryStart := date(2024, time.March, 10)
	queryEnd := date(2024, time.March, 20)

	// Overlapping confirmed and paid bookings take spots
	createBooking(t, db, program.ID, user.ID, models.BookingConfirmed,
		date(2024, time.March, 5), date(2024, time.March, 12))
	createBooking(t, db, program.ID, user.ID, models.BookingPaid,
		date(2024, time.March, 15), date(2024, time.March, 25))

	// Pending bookings and non-overlapping ranges do not
	createBooking(t, db, program.ID, user.ID, models.BookingPending,
		date(2024, time.March, 10), date(2024, time.March, 20))
	createBooking(t, db, program.ID, user.ID, models.BookingConfirmed,
		date(2024, time.April, 1), date(2024, time.April, 10))

	availability, err := svc.CheckAvailability(program.ID, queryStart, queryEnd)
	require.NoError(t, err)

	assert.True(t, availability.Available)
	assert.Equal(t, 3, availability.AvailableSpots)
	assert.Equal(t, 5, availability.MaxParticipants)
}

func TestCheckAvailabilityBoundaryDatesOverlap(t *testing.T) {
	db := newTestDB(t)
	svc := New(db)

	program := createProgram(t, db, models.ProgramIntensive, 10)
	user := createUser(t, db, "bob", "bob@example.com")

	// Ends exactly on the query start: still an overlap
	createBooking(t, db, program.ID, user.ID, models.BookingConfirmed,
		date(2024, time.May, 1), date(2024, time.May, 10))
	// Starts exactly on the query end: still an overlap
	createBooking(t, db, program.ID, user.ID, models.BookingConfirmed,
		date(2024, time.May, 20), date(2024, time.May, 30))

	availability, err := svc.CheckAvailability(program.ID, date(2024, time.May, 10), date(2024, time.May, 20))
	require.NoError(t, err)

	assert.Equal(t, 8, availability.AvailableSpots)
}

func TestCheckAvailabilityClampsAtZero(t *testing.T) {
	db := newTestDB(t)
	svc := New(db)

	program := createProgram(t, db, models.ProgramIntensive, 1)
	user := createUser(t, db, "carol", "carol@example.com")

	start := date(2024, time.June, 1)
	end := date(2024, time.June, 5)
	createBooking(t, db, program.ID, user.ID, models.BookingConfirmed, start, end)
	createBooking(t, db, program.ID, user.ID, models.BookingPaid, start, end)

	availability, err := svc.CheckAvailability(program.ID, start, end)
	require.NoError(t, err)

	assert.False(t, availability.Available)
	assert.Equal(t, 0, availability.AvailableSpots)
}

func TestCheckAvailabilityUnknownProgram(t *testing.T) {
	db := newTestDB(t)
	svc := New(db)

	_, err := svc.CheckAvailability(42, date(2024, time.June, 1), date(2024, time.June, 5))
	assert.ErrorIs(t, err, serverrors.ErrNotFound)
}
