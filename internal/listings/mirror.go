package listings

import (
	"github.com/google/uuid"

	"deals4property_echo/internal/models"
)

// MirrorForListing builds the denormalized review copy for a listing. The
// copy carries just what the admin queue renders; the property id links back
// to the source row.
func MirrorForListing(l models.Listing) models.AdminApproval {
	d := l.Details()
	mirror := models.AdminApproval{
		ID:           uuid.New().String(),
		Category:     l.Category(),
		PropertyID:   l.ListingID(),
		UserID:       d.UserID,
		Society:      d.Society,
		RoadLocation: d.RoadLocation,
		Type:         d.Type,
		Station:      d.Station,
		Amount:       l.BudgetAmount(),
		Status:       d.Status,
	}
	switch p := l.(type) {
	case models.ResaleProperty:
		mirror.ContactName = p.ContactName
	case models.RentalProperty:
		mirror.Deposit = p.Deposit
		mirror.ContactName = p.ContactName
	}
	return mirror
}

// MirrorMatches reports whether an existing review copy still reflects the
// source listing
func MirrorMatches(mirror models.AdminApproval, l models.Listing) bool {
	want := MirrorForListing(l)
	return mirror.Category == want.Category &&
		mirror.UserID == want.UserID &&
		mirror.Society == want.Society &&
		mirror.RoadLocation == want.RoadLocation &&
		mirror.Type == want.Type &&
		mirror.Station == want.Station &&
		mirror.Amount == want.Amount &&
		mirror.Deposit == want.Deposit &&
		mirror.ContactName == want.ContactName &&
		mirror.Status == want.Status
}
