package bookingService

import (
	"time"

	"reinvent/models"
)

const (
	intensiveStartTime = "09:00"
	intensiveEndTime   = "17:00"

	ongoingStartTime = "14:00"
	ongoingEndTime   = "16:00"

	// Ongoing programs run weekly and cap out at 12 sessions
	// (roughly 90 days at one session per week).
	maxOngoingSessions = 12

	defaultLocation = "TBD"
)

// GenerateSessions builds the session series for a new booking based on the
// program type. Intensive programs get one 09:00-17:00 session per calendar
// day; ongoing programs get weekly 14:00-16:00 sessions, at most 12, stopping
// early when the end date is reached. Other program types are scheduled
// manually and get no sessions.
func GenerateSessions(program models.Program, bookingID uint, start, end time.Time, location string) []models.Session {
	if location == "" {
		location = defaultLocation
	}

	var sessions []models.Session

	switch program.ProgramType {
	case models.ProgramIntensive:
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			sessions = append(sessions, models.Session{
				BookingID:   bookingID,
				SessionDate: d,
				StartTime:   intensiveStartTime,
				EndTime:     intensiveEndTime,
				SessionType: "group",
				Location:    location,
				Status:      models.SessionScheduled,
			})
		}

	case models.ProgramOngoing:
		for d, n := start, 0; !d.After(end) && n < maxOngoingSessions; d, n = d.AddDate(0, 0, 7), n+1 {
			sessions = append(sessions, models.Session{
				BookingID:   bookingID,
				SessionDate: d,
				StartTime:   ongoingStartTime,
				EndTime:     ongoingEndTime,
				SessionType: "group",
				Location:    location,
				Status:      models.SessionScheduled,
			})
		}
	}

	return sessions
}
