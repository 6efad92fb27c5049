package listings

import (
	"fmt"

	"deals4property_echo/internal/models"
)

// Decision is an admin review action
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// ApplyDecision transitions a listing's review state. Any state is reachable
// from any state: a rejected listing can be approved later and an approved
// one can be pulled back to rejected. There is no terminal state.
func ApplyDecision(d *models.ListingDetails, decision Decision) error {
	switch decision {
	case DecisionApprove:
		d.Status = models.StatusApproved
		d.IsApproved = true
	case DecisionReject:
		d.Status = models.StatusRejected
		d.IsApproved = false
	default:
		return fmt.Errorf("unknown decision %q", decision)
	}
	return nil
}

// NewSubmissionDefaults forces the review state every fresh listing starts
// with, regardless of what the submitter sent.
func NewSubmissionDefaults(d *models.ListingDetails) {
	d.Status = models.StatusPendingApproval
	d.IsApproved = false
	if d.ListingState == "" {
		d.ListingState = models.ListingAvailable
	}
}
