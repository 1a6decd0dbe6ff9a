// Package filter composes pure predicates for dashboard search and facet
// filtering. A zero filter matches everything; each set field narrows the
// result. Substring matching is case-insensitive.
package filter

import (
	"strings"
	"time"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
)

type PaymentFilter struct {
	Search  string
	Type    domain.PaymentType
	Status  domain.PaymentStatus // matched against the effective status
	EventID string
	DueFrom *time.Time // inclusive, by day
	DueTo   *time.Time // inclusive, by day
}

func (f PaymentFilter) Matches(p *domain.Payment, now time.Time) bool {
	if f.Search != "" && !containsFold(f.Search, p.Description, p.ClientName, p.VendorName, p.InvoiceNumber) {
		return false
	}
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.Status != "" && p.EffectiveStatus(now) != f.Status {
		return false
	}
	if f.EventID != "" && p.EventID != f.EventID {
		return false
	}
	due := dayOf(p.DueDate)
	if f.DueFrom != nil && due.Before(dayOf(*f.DueFrom)) {
		return false
	}
	if f.DueTo != nil && due.After(dayOf(*f.DueTo)) {
		return false
	}
	return true
}

// Payments returns the payments matching the filter, preserving order.
func Payments(payments []*domain.Payment, f PaymentFilter, now time.Time) []*domain.Payment {
	res := make([]*domain.Payment, 0, len(payments))
	for _, p := range payments {
		if f.Matches(p, now) {
			res = append(res, p)
		}
	}
	return res
}

type VendorFilter struct {
	Search       string
	Specialty    string
	MinRating    float64
	Availability domain.Availability
	PriceRange   domain.PriceRange
}

func (f VendorFilter) Matches(v *domain.Vendor) bool {
	if f.Search != "" && !containsFold(f.Search, v.Name, v.Company, v.Specialty) {
		return false
	}
	if f.Specialty != "" && v.Specialty != f.Specialty {
		return false
	}
	if f.MinRating > 0 && v.Rating < f.MinRating {
		return false
	}
	if f.Availability != "" && v.Availability != f.Availability {
		return false
	}
	if f.PriceRange != "" && v.PriceRange != f.PriceRange {
		return false
	}
	return true
}

func Vendors(vendors []*domain.Vendor, f VendorFilter) []*domain.Vendor {
	res := make([]*domain.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if f.Matches(v) {
			res = append(res, v)
		}
	}
	return res
}

type GuestFilter struct {
	Search  string
	Status  domain.RSVPStatus
	EventID string
}

func (f GuestFilter) Matches(g *domain.Guest) bool {
	if f.Search != "" && !containsFold(f.Search, g.Name, g.Email) {
		return false
	}
	if f.Status != "" && g.RSVPStatus != f.Status {
		return false
	}
	if f.EventID != "" && g.EventID != f.EventID {
		return false
	}
	return true
}

func Guests(guests []*domain.Guest, f GuestFilter) []*domain.Guest {
	res := make([]*domain.Guest, 0, len(guests))
	for _, g := range guests {
		if f.Matches(g) {
			res = append(res, g)
		}
	}
	return res
}

// containsFold reports whether any of the fields contains needle,
// case-insensitively.
func containsFold(needle string, fields ...string) bool {
	needle = strings.ToLower(needle)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
