package listings

import (
	"testing"

	"deals4property_echo/internal/models"
)

func TestApplyDecision(t *testing.T) {
	tests := []struct {
		name         string
		from         models.PropertyStatus
		decision     Decision
		wantStatus   models.PropertyStatus
		wantApproved bool
	}{
		{
			name:         "approve pending",
			from:         models.StatusPendingApproval,
			decision:     DecisionApprove,
			wantStatus:   models.StatusApproved,
			wantApproved: true,
		},
		{
			name:         "reject pending",
			from:         models.StatusPendingApproval,
			decision:     DecisionReject,
			wantStatus:   models.StatusRejected,
			wantApproved: false,
		},
		{
			name:         "approve a rejected listing",
			from:         models.StatusRejected,
			decision:     DecisionApprove,
			wantStatus:   models.StatusApproved,
			wantApproved: true,
		},
		{
			name:         "reject an approved listing",
			from:         models.StatusApproved,
			decision:     DecisionReject,
			wantStatus:   models.StatusRejected,
			wantApproved: false,
		},
		{
			name:         "re-approve an approved listing",
			from:         models.StatusApproved,
			decision:     DecisionApprove,
			wantStatus:   models.StatusApproved,
			wantApproved: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := models.ListingDetails{Status: tt.from, IsApproved: tt.from == models.StatusApproved}
			if err := ApplyDecision(&d, tt.decision); err != nil {
				t.Fatalf("ApplyDecision returned error: %v", err)
			}
			if d.Status != tt.wantStatus {
				t.Errorf("status = %q; want %q", d.Status, tt.wantStatus)
			}
			if d.IsApproved != tt.wantApproved {
				t.Errorf("is_approved = %v; want %v", d.IsApproved, tt.wantApproved)
			}
		})
	}
}

func TestApplyDecisionUnknown(t *testing.T) {
	d := models.ListingDetails{Status: models.StatusPendingApproval}
	if err := ApplyDecision(&d, Decision("archive")); err == nil {
		t.Fatal("expected error for unknown decision")
	}
	if d.Status != models.StatusPendingApproval {
		t.Errorf("status changed on unknown decision: %q", d.Status)
	}
}

func TestNewSubmissionDefaults(t *testing.T) {
	d := models.ListingDetails{
		Status:       models.StatusApproved,
		IsApproved:   true,
		ListingState: "",
	}
	NewSubmissionDefaults(&d)

	if d.Status != models.StatusPendingApproval {
		t.Errorf("status = %q; want %q", d.Status, models.StatusPendingApproval)
	}
	if d.IsApproved {
		t.Error("is_approved should be false on a fresh submission")
	}
	if d.ListingState != models.ListingAvailable {
		t.Errorf("listing_state = %q; want %q", d.ListingState, models.ListingAvailable)
	}
}

func TestNewSubmissionDefaultsKeepsListingState(t *testing.T) {
	d := models.ListingDetails{ListingState: models.ListingHold}
	NewSubmissionDefaults(&d)
	if d.ListingState != models.ListingHold {
		t.Errorf("listing_state = %q; want %q", d.ListingState, models.ListingHold)
	}
}
