package main

import (
	"log"
	"os"
	"time"

	"venuebook/internal/database"
	"venuebook/internal/domain"
)

// Periodic housekeeping: the API process never expires anything on its
// own, so this binary is meant to run from cron.
func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	now := time.Now()

	otps := db.Where("used = ? OR expires_at < ?", true, now).
		Delete(&domain.OtpCode{})
	if otps.Error != nil {
		log.Fatalf("cleanup otp_codes failed: %v", otps.Error)
	}

	subs := db.Model(&domain.Subscription{}).
		Where("status = ? AND end_date < ?", domain.SubscriptionActive, now).
		Update("status", domain.SubscriptionExpired)
	if subs.Error != nil {
		log.Fatalf("expire subscriptions failed: %v", subs.Error)
	}

	log.Printf("maintenance completed: otp_codes=%d subscriptions=%d", otps.RowsAffected, subs.RowsAffected)
}
