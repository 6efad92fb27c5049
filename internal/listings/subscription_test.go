package listings

import (
	"testing"
	"time"

	"deals4property_echo/internal/models"
)

func subAt(name string, stamped time.Time) models.SubscriptionLocation {
	return models.SubscriptionLocation{Name: name, SubscribedAt: &stamped}
}

func TestSubscriptionTermBoundary(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	loc, _ := CatalogByID("3") // Mira Road

	tests := []struct {
		name         string
		subscribedAt time.Time
		wantDisabled bool
		wantLocked   bool
	}{
		{
			name:         "just stamped",
			subscribedAt: now,
			wantDisabled: true,
			wantLocked:   false,
		},
		{
			name:         "one millisecond before the term elapses",
			subscribedAt: now.Add(-SubscriptionTerm + time.Millisecond),
			wantDisabled: true,
			wantLocked:   false,
		},
		{
			name:         "exactly at the term boundary",
			subscribedAt: now.Add(-SubscriptionTerm),
			wantDisabled: false,
			wantLocked:   true,
		},
		{
			name:         "one millisecond past the boundary",
			subscribedAt: now.Add(-SubscriptionTerm - time.Millisecond),
			wantDisabled: false,
			wantLocked:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subs := []models.SubscriptionLocation{subAt("Mira Road", tt.subscribedAt)}
			if got := IsLocationDisabled(subs, loc, now); got != tt.wantDisabled {
				t.Errorf("IsLocationDisabled = %v; want %v", got, tt.wantDisabled)
			}
			if got := IsLocationLocked(subs, loc, now); got != tt.wantLocked {
				t.Errorf("IsLocationLocked = %v; want %v", got, tt.wantLocked)
			}
		})
	}
}

func TestLocationLockedWithoutSubscription(t *testing.T) {
	now := time.Now()
	loc, _ := CatalogByID("1")

	if IsLocationDisabled(nil, loc, now) {
		t.Error("no subscription should never be disabled")
	}
	if !IsLocationLocked(nil, loc, now) {
		t.Error("no subscription should be locked")
	}

	// A row without a stamp counts as never purchased
	subs := []models.SubscriptionLocation{{Name: "Mumbai"}}
	if IsLocationDisabled(subs, loc, now) {
		t.Error("unstamped subscription should not be disabled")
	}
	if !IsLocationLocked(subs, loc, now) {
		t.Error("unstamped subscription should be locked")
	}
}

func TestMergeSelections(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	active := now.Add(-10 * 24 * time.Hour)
	expired := now.Add(-40 * 24 * time.Hour)

	existing := []models.SubscriptionLocation{
		subAt("Mumbai", active),    // id 1, still in term
		subAt("Mira Road", expired), // id 3, lapsed
	}

	// Re-select the lapsed Mira Road and add Thane; Mumbai is not in the
	// selection but must be carried because it is still active.
	merged := MergeSelections("user-1", existing, []string{"3", "2"}, now)

	byName := map[string]models.SubscriptionLocation{}
	for _, sub := range merged {
		byName[sub.Name] = sub
	}

	if len(merged) != 3 {
		t.Fatalf("merged %d entries; want 3 (%v)", len(merged), merged)
	}

	mumbai, ok := byName["Mumbai"]
	if !ok {
		t.Fatal("active Mumbai entry was dropped")
	}
	if !mumbai.SubscribedAt.Equal(active) {
		t.Errorf("active entry re-stamped: %v; want %v", mumbai.SubscribedAt, active)
	}

	mira, ok := byName["Mira Road"]
	if !ok {
		t.Fatal("re-selected Mira Road entry missing")
	}
	if !mira.SubscribedAt.Equal(now) {
		t.Errorf("lapsed entry should be stamped now: %v", mira.SubscribedAt)
	}
	if mira.Price != 800 {
		t.Errorf("Mira Road price = %v; want catalog price 800", mira.Price)
	}
	if mira.UserID != "user-1" {
		t.Errorf("UserID = %q; want user-1", mira.UserID)
	}

	thane, ok := byName["Thane"]
	if !ok {
		t.Fatal("newly selected Thane entry missing")
	}
	if thane.Price != 1000 {
		t.Errorf("Thane price = %v; want catalog price 1000", thane.Price)
	}
}

func TestMergeSelectionsDropsLapsedUnselected(t *testing.T) {
	now := time.Now()
	expired := now.Add(-31 * 24 * time.Hour)
	existing := []models.SubscriptionLocation{subAt("Pune", expired)}

	merged := MergeSelections("user-1", existing, nil, now)
	if len(merged) != 0 {
		t.Errorf("lapsed unselected entry survived: %v", merged)
	}
}

func TestMergeSelectionsIgnoresUnknownIDs(t *testing.T) {
	merged := MergeSelections("user-1", nil, []string{"999"}, time.Now())
	if len(merged) != 0 {
		t.Errorf("unknown catalog id produced entries: %v", merged)
	}
}

func TestMergeSelectionsSkipsActiveReselect(t *testing.T) {
	now := time.Now()
	active := now.Add(-time.Hour)
	existing := []models.SubscriptionLocation{subAt("Mumbai", active)}

	// Selecting an already active location must not double it or re-stamp it
	merged := MergeSelections("user-1", existing, []string{"1"}, now)
	if len(merged) != 1 {
		t.Fatalf("merged %d entries; want 1", len(merged))
	}
	if !merged[0].SubscribedAt.Equal(active) {
		t.Errorf("active entry re-stamped: %v; want %v", merged[0].SubscribedAt, active)
	}
}

func TestSelectionTotal(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		expected float64
	}{
		{
			name:     "single location",
			ids:      []string{"3"},
			expected: 800,
		},
		{
			name:     "several locations",
			ids:      []string{"1", "2", "3"},
			expected: 3300,
		},
		{
			name:     "unknown ids skipped",
			ids:      []string{"1", "999"},
			expected: 1500,
		},
		{
			name:     "empty selection",
			ids:      nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectionTotal(tt.ids); got != tt.expected {
				t.Errorf("SelectionTotal(%v) = %v; want %v", tt.ids, got, tt.expected)
			}
		})
	}
}

func TestAnnotateCatalog(t *testing.T) {
	now := time.Now()
	subs := []models.SubscriptionLocation{
		subAt("Mumbai", now.Add(-time.Hour)),
		subAt("Thane", now.Add(-45*24*time.Hour)),
	}

	options := AnnotateCatalog(subs, now)
	if len(options) != len(Catalog) {
		t.Fatalf("annotated %d options; want %d", len(options), len(Catalog))
	}

	byName := map[string]LocationOption{}
	for _, opt := range options {
		byName[opt.Name] = opt
	}

	if opt := byName["Mumbai"]; !opt.Subscribed || !opt.Disabled || opt.Locked {
		t.Errorf("active Mumbai = %+v; want subscribed+disabled", opt)
	}
	if opt := byName["Thane"]; !opt.Subscribed || opt.Disabled || !opt.Locked {
		t.Errorf("lapsed Thane = %+v; want subscribed+locked", opt)
	}
	if opt := byName["Pune"]; opt.Subscribed || opt.Disabled || !opt.Locked {
		t.Errorf("never-subscribed Pune = %+v; want locked only", opt)
	}
}
