package listings

import (
	"strings"
	"testing"
	"time"

	"deals4property_echo/internal/models"
)

func TestWhatsAppText(t *testing.T) {
	property := resaleRow("p1", "seller-1", "Mira Road", 5000000, time.Now())
	property.Society = "Sunshine Heights"
	sender := ShareSender{Name: "Asha Broker", Phone: "9876543210"}

	t.Run("owner sees floor and flat", func(t *testing.T) {
		owner := Viewer{ID: "seller-1"}
		text := WhatsAppText([]models.Listing{property}, "Mr.", "Rahul", owner, sender, 0)

		for _, want := range []string{
			"Hello! Mr. Rahul,",
			"✅ Sunshine Heights",
			"Floor No: 4",
			"Flat No: 402",
			"Expected Price: ₹5000000",
			"Thank you for considering Deals4Property.",
			"Asha Broker",
		} {
			if !strings.Contains(text, want) {
				t.Errorf("text missing %q:\n%s", want, text)
			}
		}
	})

	t.Run("subscriber does not see floor and flat", func(t *testing.T) {
		subscriber := Viewer{ID: "broker-1", Subscriptions: []string{"Mira Road"}}
		text := WhatsAppText([]models.Listing{property}, "", "Rahul", subscriber, sender, 0)

		if strings.Contains(text, "Floor No") || strings.Contains(text, "Flat No") {
			t.Errorf("unprivileged share leaked unit numbers:\n%s", text)
		}
		if !strings.Contains(text, "Expected Price: ₹5000000") {
			t.Errorf("price missing from share text:\n%s", text)
		}
	})

	t.Run("admin sees floor and flat", func(t *testing.T) {
		admin := Viewer{ID: "admin-1", IsAdmin: true}
		text := WhatsAppText([]models.Listing{property}, "", "Rahul", admin, sender, 0)
		if !strings.Contains(text, "Floor No: 4") {
			t.Errorf("admin share missing unit numbers:\n%s", text)
		}
	})

	t.Run("total count falls back to selection size", func(t *testing.T) {
		admin := Viewer{ID: "admin-1", IsAdmin: true}
		text := WhatsAppText([]models.Listing{property}, "", "Rahul", admin, sender, 0)
		if !strings.Contains(text, "share with you 1 properties") {
			t.Errorf("fallback count missing:\n%s", text)
		}

		text = WhatsAppText([]models.Listing{property}, "", "Rahul", admin, sender, 12)
		if !strings.Contains(text, "share with you 12 properties") {
			t.Errorf("explicit count missing:\n%s", text)
		}
	})

	t.Run("rental amounts", func(t *testing.T) {
		rental := rentalRow("l1", "seller-1", "Mira Road", 25000, time.Now())
		admin := Viewer{ID: "admin-1", IsAdmin: true}
		text := WhatsAppText([]models.Listing{rental}, "", "Rahul", admin, sender, 0)
		if !strings.Contains(text, "Rent: ₹25000") || !strings.Contains(text, "Deposit: ₹75000") {
			t.Errorf("rental amounts missing:\n%s", text)
		}
	})
}

func TestShareLink(t *testing.T) {
	tests := []struct {
		name       string
		phone      string
		text       string
		wantPrefix string
	}{
		{
			name:       "with receiver number",
			phone:      "9876543210",
			text:       "hello there",
			wantPrefix: "https://web.whatsapp.com/send?phone=9876543210&text=hello+there",
		},
		{
			name:       "number is stripped of punctuation",
			phone:      "+91 98765-43210",
			text:       "hi",
			wantPrefix: "https://web.whatsapp.com/send?phone=919876543210&text=hi",
		},
		{
			name:       "without receiver number",
			phone:      "",
			text:       "hello",
			wantPrefix: "https://wa.me/?text=hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShareLink(tt.phone, tt.text)
			if got != tt.wantPrefix {
				t.Errorf("ShareLink = %q; want %q", got, tt.wantPrefix)
			}
		})
	}
}
