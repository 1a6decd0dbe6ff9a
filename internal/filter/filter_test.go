package filter

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func testPayments() []*domain.Payment {
	return []*domain.Payment{
		{
			ID:          "p1",
			EventID:     "e1",
			Type:        domain.PaymentTypeClient,
			Status:      domain.PaymentStatusPending,
			Amount:      decimal.RequireFromString("5000"),
			Description: "Venue deposit",
			ClientName:  "Acme Corp",
			DueDate:     testNow.AddDate(0, 0, 5),
		},
		{
			ID:            "p2",
			EventID:       "e1",
			Type:          domain.PaymentTypeVendor,
			Status:        domain.PaymentStatusPaid,
			Amount:        decimal.RequireFromString("1200"),
			Description:   "Catering invoice",
			VendorName:    "Tasty Bites",
			InvoiceNumber: "INV-2024-0001",
			DueDate:       testNow.AddDate(0, 0, -2),
		},
		{
			ID:          "p3",
			EventID:     "e2",
			Type:        domain.PaymentTypeClient,
			Status:      domain.PaymentStatusPending,
			Amount:      decimal.RequireFromString("300"),
			Description: "Final balance",
			ClientName:  "Globex",
			DueDate:     testNow.AddDate(0, 0, -1), // overdue
		},
	}
}

func TestPaymentFilter_Search(t *testing.T) {
	got := Payments(testPayments(), PaymentFilter{Search: "acme"}, testNow)

	assert.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
}

func TestPaymentFilter_SearchInvoiceNumber(t *testing.T) {
	got := Payments(testPayments(), PaymentFilter{Search: "inv-2024"}, testNow)

	assert.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)
}

func TestPaymentFilter_Type(t *testing.T) {
	got := Payments(testPayments(), PaymentFilter{Type: domain.PaymentTypeClient}, testNow)

	assert.Len(t, got, 2)
}

func TestPaymentFilter_StatusMatchesEffective(t *testing.T) {
	// p3 is stored as pending but past due, so it matches overdue, not pending.
	overdue := Payments(testPayments(), PaymentFilter{Status: domain.PaymentStatusOverdue}, testNow)
	assert.Len(t, overdue, 1)
	assert.Equal(t, "p3", overdue[0].ID)

	pending := Payments(testPayments(), PaymentFilter{Status: domain.PaymentStatusPending}, testNow)
	assert.Len(t, pending, 1)
	assert.Equal(t, "p1", pending[0].ID)
}

func TestPaymentFilter_EventID(t *testing.T) {
	got := Payments(testPayments(), PaymentFilter{EventID: "e2"}, testNow)

	assert.Len(t, got, 1)
	assert.Equal(t, "p3", got[0].ID)
}

func TestPaymentFilter_DueRangeInclusive(t *testing.T) {
	from := testNow.AddDate(0, 0, -2)
	to := testNow.AddDate(0, 0, -1)

	got := Payments(testPayments(), PaymentFilter{DueFrom: &from, DueTo: &to}, testNow)

	assert.Len(t, got, 2) // p2 and p3, both boundary days
}

func TestPaymentFilter_ZeroMatchesAll(t *testing.T) {
	got := Payments(testPayments(), PaymentFilter{}, testNow)

	assert.Len(t, got, 3)
}

func TestPaymentFilter_Combined(t *testing.T) {
	f := PaymentFilter{
		Type:    domain.PaymentTypeClient,
		EventID: "e1",
	}
	got := Payments(testPayments(), f, testNow)

	assert.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
}

func TestVendorFilter(t *testing.T) {
	vendors := []*domain.Vendor{
		{ID: "v1", Name: "Elena Photography", Company: "Lens Studio", Specialty: "Photography", Rating: 4.8, Availability: domain.AvailabilityAvailable, PriceRange: domain.PriceRangePremium},
		{ID: "v2", Name: "Bob's Catering", Company: "Tasty Bites", Specialty: "Catering", Rating: 4.1, Availability: domain.AvailabilityBusy, PriceRange: domain.PriceRangeModerate},
		{ID: "v3", Name: "DJ Max", Company: "Soundwave", Specialty: "Music", Rating: 3.2, Availability: domain.AvailabilityAvailable, PriceRange: domain.PriceRangeBudget},
	}

	bySearch := Vendors(vendors, VendorFilter{Search: "tasty"})
	assert.Len(t, bySearch, 1)
	assert.Equal(t, "v2", bySearch[0].ID)

	bySpecialty := Vendors(vendors, VendorFilter{Specialty: "Photography"})
	assert.Len(t, bySpecialty, 1)

	byRating := Vendors(vendors, VendorFilter{MinRating: 4.0})
	assert.Len(t, byRating, 2)

	byAvailability := Vendors(vendors, VendorFilter{Availability: domain.AvailabilityAvailable})
	assert.Len(t, byAvailability, 2)

	byPrice := Vendors(vendors, VendorFilter{PriceRange: domain.PriceRangeBudget})
	assert.Len(t, byPrice, 1)
	assert.Equal(t, "v3", byPrice[0].ID)
}

func TestGuestFilter(t *testing.T) {
	guests := []*domain.Guest{
		{ID: "g1", EventID: "e1", Name: "Alice Smith", Email: "alice@example.com", RSVPStatus: domain.RSVPStatusConfirmed},
		{ID: "g2", EventID: "e1", Name: "Bob Jones", Email: "bob@example.com", RSVPStatus: domain.RSVPStatusPending},
		{ID: "g3", EventID: "e2", Name: "Carol White", Email: "carol@example.com", RSVPStatus: domain.RSVPStatusDeclined},
	}

	bySearch := Guests(guests, GuestFilter{Search: "ALICE"})
	assert.Len(t, bySearch, 1)

	byStatus := Guests(guests, GuestFilter{Status: domain.RSVPStatusPending})
	assert.Len(t, byStatus, 1)
	assert.Equal(t, "g2", byStatus[0].ID)

	byEvent := Guests(guests, GuestFilter{EventID: "e1"})
	assert.Len(t, byEvent, 2)

	combined := Guests(guests, GuestFilter{EventID: "e1", Status: domain.RSVPStatusConfirmed})
	assert.Len(t, combined, 1)
	assert.Equal(t, "g1", combined[0].ID)
}
