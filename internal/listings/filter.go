package listings

import (
	"sort"
	"strings"

	"deals4property_echo/internal/models"
)

// Filters holds the explicit dashboard filter inputs. Zero values mean the
// field is inactive; Cosmo is tri-state (nil = don't care).
type Filters struct {
	BHKType     string  `json:"bhk_type"`
	Station     string  `json:"station"`
	MinBudget   float64 `json:"min_budget"`
	MaxBudget   float64 `json:"max_budget"`
	SubLocation string  `json:"sub_location"`
	Cosmo       *bool   `json:"cosmo"`
}

// Viewer carries the parts of the session user the engine consults
type Viewer struct {
	ID            string
	IsAdmin       bool
	Subscriptions []string // subscribed location names
}

// ViewerFromUser builds a Viewer snapshot from a user row
func ViewerFromUser(u *models.User) Viewer {
	v := Viewer{}
	if u == nil {
		return v
	}
	v.ID = u.ID
	v.IsAdmin = u.IsAdmin
	for _, sub := range u.SubscriptionLocations {
		v.Subscriptions = append(v.Subscriptions, sub.Name)
	}
	return v
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// VisibleListings produces the row set a viewer sees for one category, given
// full snapshots of both property collections and the active filters. It is a
// pure function over its inputs; the caller owns the fetch. Results come back
// ordered by creation time so the table is stable across refreshes.
func VisibleListings(category models.PropertyCategory, resale []models.ResaleProperty, rental []models.RentalProperty, f Filters, viewer Viewer, ignoreSubscription bool) []models.Listing {
	var candidates []models.Listing
	switch category {
	case models.CategoryRental:
		for _, p := range rental {
			candidates = append(candidates, p)
		}
	default:
		for _, p := range resale {
			candidates = append(candidates, p)
		}
	}

	subs := make([]string, 0, len(viewer.Subscriptions))
	for _, name := range viewer.Subscriptions {
		if n := normalize(name); n != "" {
			subs = append(subs, n)
		}
	}

	var out []models.Listing
	for _, l := range candidates {
		if matches(l, f, viewer, subs, ignoreSubscription) {
			out = append(out, l)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedTime().Before(out[j].CreatedTime())
	})
	return out
}

func matches(l models.Listing, f Filters, viewer Viewer, subs []string, ignoreSubscription bool) bool {
	d := l.Details()

	// Owners pull Hold / Sold Out rows off the dashboard entirely
	if d.ListingState == models.ListingHold || d.ListingState == models.ListingSoldOut {
		return false
	}

	if !ignoreSubscription && !viewer.IsAdmin {
		road := normalize(d.RoadLocation)
		subscribed := false
		for _, s := range subs {
			if s == road {
				subscribed = true
				break
			}
		}
		if !subscribed && d.UserID != viewer.ID {
			return false
		}
	}

	if f.BHKType != "" && d.Type != f.BHKType {
		return false
	}

	if f.Station != "" {
		if !strings.Contains(normalize(d.Station), normalize(f.Station)) {
			return false
		}
	}

	// Absent amounts compare as 0, same as the legacy dashboard
	if f.MinBudget > 0 && l.BudgetAmount() < f.MinBudget {
		return false
	}
	if f.MaxBudget > 0 && l.BudgetAmount() > f.MaxBudget {
		return false
	}

	if f.SubLocation != "" && normalize(d.RoadLocation) != normalize(f.SubLocation) {
		return false
	}

	if f.Cosmo != nil && d.Cosmo != *f.Cosmo {
		return false
	}

	return true
}

// CanSeeContactDetails reports whether floor, flat and contact fields should
// be visible to the viewer for a given listing: owners, admins, and brokers
// subscribed to the listing's road location.
func CanSeeContactDetails(l models.Listing, viewer Viewer) bool {
	d := l.Details()
	if viewer.IsAdmin || d.UserID == viewer.ID {
		return true
	}
	road := normalize(d.RoadLocation)
	for _, name := range viewer.Subscriptions {
		if normalize(name) == road {
			return true
		}
	}
	return false
}
