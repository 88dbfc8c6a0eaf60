package bookingService

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"reinvent/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Trainer{},
		&models.Program{},
		&models.Booking{},
		&models.Session{},
	))

	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func createProgram(t *testing.T, db *gorm.DB, programType string, maxParticipants int) models.Program {
	t.Helper()

	program := models.Program{
		Name:            "Leadership " + programType,
		ShortName:       "lead-" + programType,
		ProgramType:     programType,
		Price:           499,
		MaxParticipants: maxParticipants,
		IsActive:        true,
	}
	require.NoError(t, db.Create(&program).Error)
	return program
}

func createUser(t *testing.T, db *gorm.DB, username, email string) models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    email,
		Password: "x",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createBooking(t *testing.T, db *gorm.DB, programID, userID uint, status string, start, end time.Time) models.Booking {
	t.Helper()

	booking := models.Booking{
		UserID:        userID,
		ProgramID:     programID,
		StartDate:     start,
		EndDate:       end,
		BookingStatus: status,
		PaymentStatus: models.PaymentPending,
	}
	require.NoError(t, db.Create(&booking).Error)
	return booking
}
