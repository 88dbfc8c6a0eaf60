package utils

import (
	"log"
	"time"

	"reinvent/database"
	"reinvent/models"
	paymentService "reinvent/services/payments"

	"github.com/robfig/cron/v3"
)

// Pending enrollments older than this have outlived their checkout session at
// the processor; the sweep marks them expired.
const stalePendingAge = 24 * time.Hour

// InitializeEnrollmentScheduler sets up the recurring enrollment housekeeping
// jobs.
func InitializeEnrollmentScheduler(payments *paymentService.Service) {
	log.Println("[ENROLLMENT-SCHEDULER] Initializing enrollment scheduler...")

	c := cron.New()

	// Hourly: expire pending enrollments whose checkout session is long gone
	c.AddFunc("0 * * * *", func() {
		n, err := payments.ExpireStalePending(stalePendingAge)
		if err != nil {
			log.Printf("[ENROLLMENT-SCHEDULER] Error expiring stale pending enrollments: %v", err)
			return
		}
		if n > 0 {
			log.Printf("[ENROLLMENT-SCHEDULER] Expired %d stale pending enrollments", n)
		}
	})

	// Daily at 9 AM: report enrollments whose access window has lapsed
	c.AddFunc("0 9 * * *", func() {
		log.Println("[ENROLLMENT-SCHEDULER] Running daily access check...")
		ReportLapsedAccess()
	})

	c.Start()
	log.Println("[ENROLLMENT-SCHEDULER] Enrollment scheduler started")
}

// ReportLapsedAccess logs completed enrollments whose one-year access window
// has ended.
func ReportLapsedAccess() {
	db := database.Database.Db
	now := time.Now().UTC()

	var count int64
	if err := db.Model(&models.Enrollment{}).
		Where("payment_status = ? AND is_deleted = false", models.PaymentCompleted).
		Where("access_expires_at IS NOT NULL AND access_expires_at < ?", now).
		Count(&count).Error; err != nil {
		log.Printf("[ENROLLMENT-SCHEDULER] Error counting lapsed enrollments: %v", err)
		return
	}

	if count > 0 {
		log.Printf("[ENROLLMENT-SCHEDULER] %d enrollments past their access window", count)
	}
}
