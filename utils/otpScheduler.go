package utils

import (
	"log"
	"time"

	"github.com/Teja3804/asset-reddy/database"
	"github.com/Teja3804/asset-reddy/models"

	"github.com/robfig/cron/v3"
)

// SweepExpiredOTPs deletes challenges whose validity window has passed.
// Verification also checks expiry lazily; the sweep keeps the table from
// accumulating dead rows.
func SweepExpiredOTPs() {
	result := database.Database.Db.
		Unscoped().
		Where("expires_at <= ?", time.Now()).
		Delete(&models.OTP{})
	if result.Error != nil {
		log.Printf("[OTP-SWEEP] Error deleting expired challenges: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("[OTP-SWEEP] Removed %d expired challenges", result.RowsAffected)
	}
}

// StartOtpCleanupScheduler runs the expiry sweep every five minutes.
func StartOtpCleanupScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("@every 5m", SweepExpiredOTPs); err != nil {
		log.Printf("Failed to schedule OTP sweep: %v", err)
		return c
	}

	c.Start()
	log.Println("OTP cleanup scheduler started.")
	return c
}
