package bookingService

import (
	"testing"
	"time"

	"reinvent/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSessionsIntensiveOnePerDay(t *testing.T) {
	program := models.Program{ProgramType: models.ProgramIntensive}

	sessions := GenerateSessions(program, 7,
		date(2024, time.January, 1), date(2024, time.January, 3), "")

	require.Len(t, sessions, 3)
	for i, s := range sessions {
		assert.Equal(t, uint(7), s.BookingID)
		assert.Equal(t, date(2024, time.January, 1+i), s.SessionDate)
		assert.Equal(t, "09:00", s.StartTime)
		assert.Equal(t, "17:00", s.EndTime)
		assert.Equal(t, "group", s.SessionType)
		assert.Equal(t, "TBD", s.Location)
		assert.Equal(t, models.SessionScheduled, s.Status)
	}
}

func TestGenerateSessionsOngoingWeeklyCappedAtTwelve(t *testing.T) {
	program := models.Program{ProgramType: models.ProgramOngoing}

	start := date(2024, time.January, 1)
	sessions := GenerateSessions(program, 1, start, start.AddDate(0, 0, 90), "Studio B")

	require.Len(t, sessions, 12)
	for i, s := range sessions {
		assert.Equal(t, start.AddDate(0, 0, 7*i), s.SessionDate)
		assert.Equal(t, "14:00", s.StartTime)
		assert.Equal(t, "16:00", s.EndTime)
		assert.Equal(t, "Studio B", s.Location)
	}
}

func TestGenerateSessionsOngoingStopsAtEndDate(t *testing.T) {
	program := models.Program{ProgramType: models.ProgramOngoing}

	sessions := GenerateSessions(program, 1,
		date(2024, time.January, 1), date(2024, time.January, 20), "")

	// Jan 1, 8, 15; Jan 22 would pass the end date
	require.Len(t, sessions, 3)
	assert.Equal(t, date(2024, time.January, 15), sessions[2].SessionDate)
}

func TestGenerateSessionsSingleDayIntensive(t *testing.T) {
	program := models.Program{ProgramType: models.ProgramIntensive}

	d := date(2024, time.February, 14)
	sessions := GenerateSessions(program, 1, d, d, "")

	require.Len(t, sessions, 1)
	assert.Equal(t, d, sessions[0].SessionDate)
}

func TestGenerateSessionsOtherTypesProduceNone(t *testing.T) {
	program := models.Program{ProgramType: "workshop"}

	sessions := GenerateSessions(program, 1,
		date(2024, time.January, 1), date(2024, time.January, 31), "")

	assert.Empty(t, sessions)
}
