package scheduler

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"gymku_backend/internals/features/billing/model"
	"gymku_backend/internals/features/billing/service"
)

// StartExpiryReminderScheduler scans daily for Paid subscriptions expiring
// within the reminder window and pushes a notification to the gym's
// devices. The notified-at stamp keeps overlapping runs from re-sending;
// delivery itself stays fire-and-forget.
func StartExpiryReminderScheduler(db *gorm.DB, pusher service.Pusher) {
	go func() {
		windowDays := 3
		if val := os.Getenv("EXPIRY_REMINDER_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				windowDays = parsed
			}
		}

		for {
			runOnce(db, pusher, windowDays)
			time.Sleep(24 * time.Hour)
		}
	}()
}

func runOnce(db *gorm.DB, pusher service.Pusher, windowDays int) {
	log.Println("[REMINDER] Scanning for expiring subscriptions...")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	now := time.Now()
	cutoff := now.Add(time.Duration(windowDays) * 24 * time.Hour)

	var expiring []model.SubscriptionModel
	if err := db.WithContext(ctx).
		Where("subscription_status = ?", model.SubscriptionStatusPaid).
		Where("subscription_expiry_at BETWEEN ? AND ?", now, cutoff).
		Where("subscription_notified_for_expiry_at IS NULL").
		Limit(200).
		Find(&expiring).Error; err != nil {
		log.Printf("[REMINDER ERROR] scan failed: %v", err)
		return
	}
	if len(expiring) == 0 {
		log.Println("[REMINDER] Nothing expiring in the window")
		return
	}

	for _, sub := range expiring {
		var tokens []string
		if err := db.WithContext(ctx).
			Model(&model.DeviceTokenModel{}).
			Where("device_token_gym_code = ?", sub.SubscriptionGymCode).
			Pluck("device_token_value", &tokens).Error; err != nil {
			log.Printf("[REMINDER ERROR] token lookup for %s: %v", sub.SubscriptionGymCode, err)
			continue
		}

		title := "Membership expiring soon"
		body := fmt.Sprintf("%s (%s) expires on %s",
			sub.SubscriptionMemberEmail,
			sub.SubscriptionPlanName,
			sub.SubscriptionExpiryAt.Format("02 Jan 2006"))

		if err := pusher.Push(ctx, tokens, title, body); err != nil {
			log.Printf("[REMINDER ERROR] push for %s: %v", sub.SubscriptionOrderID, err)
			continue // no stamp, next run retries
		}

		if err := db.WithContext(ctx).
			Model(&model.SubscriptionModel{}).
			Where("subscription_id = ?", sub.SubscriptionID).
			Update("subscription_notified_for_expiry_at", now).Error; err != nil {
			log.Printf("[REMINDER ERROR] stamp for %s: %v", sub.SubscriptionOrderID, err)
		}
	}

	log.Printf("[REMINDER] Processed %d expiring subscriptions", len(expiring))
}
