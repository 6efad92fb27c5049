package listings

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"deals4property_echo/internal/models"
)

var nonDigits = regexp.MustCompile(`\D`)

// ShareSender identifies who signs the outgoing message
type ShareSender struct {
	Name  string
	Phone string
}

// WhatsAppText composes the plain-text property summary sent to a prospect.
// Floor and flat numbers are included only when the viewer owns the listing
// or is an admin; everything the viewer cannot see stays out of the message.
func WhatsAppText(properties []models.Listing, prefix, receiverName string, viewer Viewer, sender ShareSender, totalCount int) string {
	if totalCount <= 0 {
		totalCount = len(properties)
	}

	var b strings.Builder
	greeting := receiverName
	if prefix != "" {
		greeting = prefix + " " + receiverName
	}
	fmt.Fprintf(&b, "Hello! %s,\n\n", greeting)
	fmt.Fprintf(&b, "We are pleased to share with you %d properties that match your requirements and budget.\n\n", totalCount)
	fmt.Fprintf(&b, "Here are the details of the %d selected properties:\n\n", len(properties))

	for _, l := range properties {
		d := l.Details()
		fmt.Fprintf(&b, "✅ %s\n", d.Society)

		fields := []string{}
		appendField := func(v string) {
			if strings.TrimSpace(v) != "" {
				fields = append(fields, v)
			}
		}

		appendField(d.RoadLocation)
		appendField(d.Type)
		appendField(d.DirectBroker)

		privileged := viewer.IsAdmin || d.UserID == viewer.ID

		switch p := l.(type) {
		case models.ResaleProperty:
			if privileged {
				if p.FloorNo != "" {
					appendField("Floor No: " + p.FloorNo)
				}
				if p.FlatNo != "" {
					appendField("Flat No: " + p.FlatNo)
				}
			}
			if p.ExpectedPrice > 0 {
				appendField(fmt.Sprintf("Expected Price: ₹%.0f", p.ExpectedPrice))
			}
			appendField(p.ContactName)
			appendField(p.ContactNumber)
		case models.RentalProperty:
			if privileged {
				if p.FloorNo > 0 {
					appendField(fmt.Sprintf("Floor No: %d", p.FloorNo))
				}
				if p.FlatNo != "" {
					appendField("Flat No: " + p.FlatNo)
				}
			}
			if p.Rent > 0 {
				appendField(fmt.Sprintf("Rent: ₹%.0f", p.Rent))
			}
			if p.Deposit > 0 {
				appendField(fmt.Sprintf("Deposit: ₹%.0f", p.Deposit))
			}
			appendField(p.ContactName)
			appendField(p.ContactNumber)
		}

		fmt.Fprintf(&b, "* - %s\n\n", strings.Join(fields, ", "))
	}

	fmt.Fprintf(&b, "Thank you for considering Deals4Property.\n\nBest regards,\n%s\n%s", sender.Name, sender.Phone)
	return b.String()
}

// ShareLink builds the messaging deep link for a composed text. With a
// receiver number it targets the web client send screen, otherwise the
// generic wa.me share screen. There is no API call and no delivery
// confirmation; the link is handed back to the browser.
func ShareLink(receiverPhone, text string) string {
	encoded := url.QueryEscape(text)
	phone := nonDigits.ReplaceAllString(receiverPhone, "")
	if phone != "" {
		return fmt.Sprintf("https://web.whatsapp.com/send?phone=%s&text=%s", phone, encoded)
	}
	return fmt.Sprintf("https://wa.me/?text=%s", encoded)
}
