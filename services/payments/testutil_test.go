package paymentService

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
		&models.Program{},
		&models.Enrollment{},
		&models.PaymentEvent{},
		&models.Notification{},
	))

	return db
}

type fakeCheckoutClient struct {
	createErr  error
	getErr     error
	lastParams *CheckoutParams
	sessions   map[string]*CheckoutSession
}

func newFakeCheckoutClient() *fakeCheckoutClient {
	return &fakeCheckoutClient{sessions: map[string]*CheckoutSession{}}
}

func (f *fakeCheckoutClient) CreateSession(p CheckoutParams) (*CheckoutSession, error) {
	f.lastParams = &p
	if f.createErr != nil {
		return nil, f.createErr
	}
	sess := &CheckoutSession{
		ID:            fmt.Sprintf("cs_test_%d", len(f.sessions)+1),
		URL:           "https://checkout.stripe.test/pay",
		PaymentStatus: "unpaid",
		Metadata:      p.Metadata,
	}
	f.sessions[sess.ID] = sess
	return sess, nil
}

func (f *fakeCheckoutClient) GetSession(id string) (*CheckoutSession, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	sess, ok := f.sessions[id]
	if !ok {
		return nil, fmt.Errorf("no such session: %s", id)
	}
	return sess, nil
}

type fakeNotifier struct {
	welcomes []string
	failures []uint
}

func (f *fakeNotifier) Welcome(user models.User, programName string) {
	f.welcomes = append(f.welcomes, programName)
}

func (f *fakeNotifier) PaymentFailed(user models.User) {
	f.failures = append(f.failures, user.ID)
}

func newTestService(t *testing.T) (*Service, *gorm.DB, *fakeCheckoutClient, *fakeNotifier) {
	t.Helper()

	db := newTestDB(t)
	checkout := newFakeCheckoutClient()
	notifier := &fakeNotifier{}
	return New(db, checkout, notifier, "usd"), db, checkout, notifier
}

func seedEnrollment(t *testing.T, db *gorm.DB, status string) (models.Enrollment, models.User, models.Program) {
	t.Helper()

	user := models.User{Username: "pat", Email: "pat@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	program := models.Program{
		Name:            "Reinvention Lab",
		ShortName:       "rlab",
		Price:           1200,
		ProgramType:     models.ProgramOngoing,
		MaxParticipants: 20,
		IsActive:        true,
	}
	require.NoError(t, db.Create(&program).Error)

	enrollment := models.Enrollment{
		UserID:          user.ID,
		ProgramID:       program.ID,
		PaymentAmount:   program.Price,
		PaymentStatus:   status,
		StripeSessionID: "cs_seeded",
		IdempotencyKey:  fmt.Sprintf("key-%s-%d", t.Name(), time.Now().UnixNano()),
		EnrolledAt:      time.Now().UTC(),
	}
	require.NoError(t, db.Create(&enrollment).Error)

	return enrollment, user, program
}
