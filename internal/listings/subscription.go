package listings

import (
	"time"

	"deals4property_echo/internal/models"
)

// SubscriptionTerm is how long a purchased location stays active. Within the
// term the row cannot be toggled off; at or past the boundary it needs a new
// purchase.
const SubscriptionTerm = 30 * 24 * time.Hour

// CatalogLocation is a purchasable location. The server-side catalog is the
// price authority; client-submitted prices are never trusted.
type CatalogLocation struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Catalog mirrors the location list offered on the subscription page
var Catalog = []CatalogLocation{
	{ID: "1", Name: "Mumbai", Price: 1500},
	{ID: "2", Name: "Thane", Price: 1000},
	{ID: "3", Name: "Mira Road", Price: 800},
	{ID: "4", Name: "Dahisar", Price: 800},
	{ID: "5", Name: "Bhayandar", Price: 800},
	{ID: "6", Name: "Delhi", Price: 1500},
	{ID: "7", Name: "Bangalore", Price: 1200},
	{ID: "8", Name: "Pune", Price: 1000},
}

// CatalogByID looks up a catalog entry
func CatalogByID(id string) (CatalogLocation, bool) {
	for _, loc := range Catalog {
		if loc.ID == id {
			return loc, true
		}
	}
	return CatalogLocation{}, false
}

func findSubscription(subs []models.SubscriptionLocation, loc CatalogLocation) *models.SubscriptionLocation {
	for i := range subs {
		if normalize(subs[i].Name) == normalize(loc.Name) {
			return &subs[i]
		}
	}
	return nil
}

// IsLocationDisabled reports whether a catalog row is an active paid
// entitlement that cannot be toggled off yet: a matching subscription exists
// and strictly less than the full term has elapsed since it was stamped.
func IsLocationDisabled(subs []models.SubscriptionLocation, loc CatalogLocation, now time.Time) bool {
	sub := findSubscription(subs, loc)
	if sub == nil || sub.SubscribedAt == nil {
		return false
	}
	return now.Sub(*sub.SubscribedAt) < SubscriptionTerm
}

// IsLocationLocked reports whether a catalog row requires a new purchase:
// never subscribed, subscribed without a stamp, or the term has fully elapsed.
func IsLocationLocked(subs []models.SubscriptionLocation, loc CatalogLocation, now time.Time) bool {
	sub := findSubscription(subs, loc)
	if sub == nil || sub.SubscribedAt == nil {
		return true
	}
	return now.Sub(*sub.SubscribedAt) >= SubscriptionTerm
}

// LocationOption is a catalog entry annotated for one viewer
type LocationOption struct {
	CatalogLocation
	Subscribed bool `json:"subscribed"`
	Disabled   bool `json:"disabled"`
	Locked     bool `json:"locked"`
}

// AnnotateCatalog renders the catalog against a user's current subscriptions
func AnnotateCatalog(subs []models.SubscriptionLocation, now time.Time) []LocationOption {
	out := make([]LocationOption, 0, len(Catalog))
	for _, loc := range Catalog {
		out = append(out, LocationOption{
			CatalogLocation: loc,
			Subscribed:      findSubscription(subs, loc) != nil,
			Disabled:        IsLocationDisabled(subs, loc, now),
			Locked:          IsLocationLocked(subs, loc, now),
		})
	}
	return out
}

// MergeSelections computes the new subscription set when a user saves the
// subscription page: every still-disabled (active) entry is carried over
// unmodified, and each newly selected locked catalog entry is added with a
// fresh stamp and the catalog price. Locked entries that were not re-selected
// drop out.
func MergeSelections(userID string, existing []models.SubscriptionLocation, selectedIDs []string, now time.Time) []models.SubscriptionLocation {
	var merged []models.SubscriptionLocation

	for _, sub := range existing {
		if loc, ok := catalogByName(sub.Name); ok && IsLocationDisabled(existing, loc, now) {
			merged = append(merged, sub)
		}
	}

	for _, id := range selectedIDs {
		loc, ok := CatalogByID(id)
		if !ok {
			continue
		}
		if !IsLocationLocked(existing, loc, now) {
			// Already active, carried over above
			continue
		}
		stamp := now
		merged = append(merged, models.SubscriptionLocation{
			UserID:       userID,
			LocationID:   loc.ID,
			Name:         loc.Name,
			Price:        loc.Price,
			SubscribedAt: &stamp,
		})
	}

	return merged
}

// SelectionTotal prices a set of catalog ids, skipping unknown ids
func SelectionTotal(selectedIDs []string) float64 {
	var total float64
	for _, id := range selectedIDs {
		if loc, ok := CatalogByID(id); ok {
			total += loc.Price
		}
	}
	return total
}

func catalogByName(name string) (CatalogLocation, bool) {
	for _, loc := range Catalog {
		if normalize(loc.Name) == normalize(name) {
			return loc, true
		}
	}
	return CatalogLocation{}, false
}
