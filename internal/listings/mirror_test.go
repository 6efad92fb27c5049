package listings

import (
	"testing"
	"time"

	"deals4property_echo/internal/models"
)

func TestMirrorForListing(t *testing.T) {
	resale := resaleRow("p1", "seller-1", "Mira Road", 5000000, time.Now())
	mirror := MirrorForListing(resale)

	if mirror.PropertyID != "p1" || mirror.Category != models.CategoryResale {
		t.Errorf("mirror identity = %s/%s; want p1/Resale", mirror.PropertyID, mirror.Category)
	}
	if mirror.Amount != 5000000 {
		t.Errorf("mirror amount = %v; want 5000000", mirror.Amount)
	}
	if mirror.ContactName != "Owner" {
		t.Errorf("mirror contact = %q; want Owner", mirror.ContactName)
	}
	if mirror.Deposit != 0 {
		t.Errorf("resale mirror should carry no deposit, got %v", mirror.Deposit)
	}
	if mirror.Status != models.StatusApproved {
		t.Errorf("mirror status = %q; want source status", mirror.Status)
	}
	if mirror.ID == "" {
		t.Error("mirror needs its own id")
	}

	rental := rentalRow("l1", "seller-1", "Dahisar", 25000, time.Now())
	mirror = MirrorForListing(rental)
	if mirror.Amount != 25000 || mirror.Deposit != 75000 {
		t.Errorf("rental mirror amounts = %v/%v; want 25000/75000", mirror.Amount, mirror.Deposit)
	}
}

func TestMirrorMatches(t *testing.T) {
	resale := resaleRow("p1", "seller-1", "Mira Road", 5000000, time.Now())
	mirror := MirrorForListing(resale)

	if !MirrorMatches(mirror, resale) {
		t.Error("fresh mirror should match its source")
	}

	resale.ExpectedPrice = 6000000
	if MirrorMatches(mirror, resale) {
		t.Error("price drift should be detected")
	}

	resale.ExpectedPrice = 5000000
	resale.Status = models.StatusRejected
	if MirrorMatches(mirror, resale) {
		t.Error("status drift should be detected")
	}
}
