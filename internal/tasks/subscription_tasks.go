package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"deals4property_echo/internal/listings"
	"deals4property_echo/internal/models"
)

// ExpireSubscriptionsTaskDef removes subscription entries whose term has
// elapsed. Expired entries are already treated as lapsed by the entitlement
// checks; this sweep keeps the table from accumulating dead rows.
type ExpireSubscriptionsTaskDef struct{}

// TaskID returns the unique identifier for this task
func (t *ExpireSubscriptionsTaskDef) TaskID() string {
	return "expire_subscription_entries"
}

// HandleExecution deletes entries stamped more than one term ago
func (t *ExpireSubscriptionsTaskDef) HandleExecution(ctx context.Context, db *gorm.DB, task models.ScheduledTask) (map[string]interface{}, error) {
	cutoff := time.Now().Add(-listings.SubscriptionTerm)

	result := db.WithContext(ctx).
		Where("subscribed_at IS NOT NULL AND subscribed_at <= ?", cutoff).
		Delete(&models.SubscriptionLocation{})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to expire subscription entries: %w", result.Error)
	}

	log.Printf("[Task: expire_subscription_entries] expired=%d cutoff=%s", result.RowsAffected, cutoff.Format(time.RFC3339))

	return map[string]interface{}{
		"status":  "success",
		"expired": result.RowsAffected,
		"cutoff":  cutoff.Format(time.RFC3339),
	}, nil
}

// ExpireSubscriptionsTask is the singleton instance of ExpireSubscriptionsTaskDef
var ExpireSubscriptionsTask = &ExpireSubscriptionsTaskDef{}
