package tasks

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"deals4property_echo/internal/listings"
	"deals4property_echo/internal/models"
)

// ReconcileApprovalsTaskDef sweeps the property tables against the admin
// approval copies and repairs any drift. The request path writes both sides
// in one transaction, so this normally finds nothing; it exists to catch
// rows touched outside the app (manual SQL, partial restores).
type ReconcileApprovalsTaskDef struct{}

// TaskID returns the unique identifier for this task
func (t *ReconcileApprovalsTaskDef) TaskID() string {
	return "reconcile_admin_approvals"
}

// HandleExecution repairs approval copies for both property categories
func (t *ReconcileApprovalsTaskDef) HandleExecution(ctx context.Context, db *gorm.DB, task models.ScheduledTask) (map[string]interface{}, error) {
	var resale []models.ResaleProperty
	if err := db.WithContext(ctx).Find(&resale).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch resale properties: %w", err)
	}
	var rental []models.RentalProperty
	if err := db.WithContext(ctx).Find(&rental).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch rental properties: %w", err)
	}

	all := make([]models.Listing, 0, len(resale)+len(rental))
	for _, p := range resale {
		all = append(all, p)
	}
	for _, p := range rental {
		all = append(all, p)
	}

	var mirrors []models.AdminApproval
	if err := db.WithContext(ctx).Find(&mirrors).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch approval copies: %w", err)
	}
	byPropertyID := make(map[string]models.AdminApproval, len(mirrors))
	for _, m := range mirrors {
		byPropertyID[m.PropertyID] = m
	}

	created, updated, removed := 0, 0, 0

	for _, l := range all {
		existing, ok := byPropertyID[l.ListingID()]
		if !ok {
			mirror := listings.MirrorForListing(l)
			if err := db.WithContext(ctx).Create(&mirror).Error; err != nil {
				return nil, fmt.Errorf("failed to create approval copy for %s: %w", l.ListingID(), err)
			}
			created++
			continue
		}
		delete(byPropertyID, l.ListingID())
		if listings.MirrorMatches(existing, l) {
			continue
		}
		fresh := listings.MirrorForListing(l)
		fresh.ID = existing.ID
		fresh.CreatedAt = existing.CreatedAt
		if err := db.WithContext(ctx).Save(&fresh).Error; err != nil {
			return nil, fmt.Errorf("failed to repair approval copy for %s: %w", l.ListingID(), err)
		}
		updated++
	}

	// Whatever is left points at a property that no longer exists
	for _, orphan := range byPropertyID {
		if err := db.WithContext(ctx).Delete(&orphan).Error; err != nil {
			return nil, fmt.Errorf("failed to remove orphan approval copy %s: %w", orphan.ID, err)
		}
		removed++
	}

	log.Printf("[Task: reconcile_admin_approvals] created=%d updated=%d removed=%d", created, updated, removed)

	return map[string]interface{}{
		"status":  "success",
		"scanned": len(all),
		"created": created,
		"updated": updated,
		"removed": removed,
	}, nil
}

// ReconcileApprovalsTask is the singleton instance of ReconcileApprovalsTaskDef
var ReconcileApprovalsTask = &ReconcileApprovalsTaskDef{}
