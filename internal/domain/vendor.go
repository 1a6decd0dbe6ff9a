package domain

import "time"

type PriceRange string

const (
	PriceRangeBudget   PriceRange = "$"
	PriceRangeModerate PriceRange = "$$"
	PriceRangePremium  PriceRange = "$$$"
)

func (p PriceRange) Valid() bool {
	return p == PriceRangeBudget || p == PriceRangeModerate || p == PriceRangePremium
}

type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityBusy      Availability = "busy"
	AvailabilityPartial   Availability = "partially-available"
)

func (a Availability) Valid() bool {
	return a == AvailabilityAvailable || a == AvailabilityBusy || a == AvailabilityPartial
}

// Vendor is a third-party supplier. Rating is the running mean of all
// submitted ratings; ReviewCount increments by exactly one per submission.
type Vendor struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Company         string       `json:"company"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone"`
	Specialty       string       `json:"specialty"`
	Location        string       `json:"location"`
	Rating          float64      `json:"rating"`
	ReviewCount     int          `json:"review_count"`
	Description     string       `json:"description"`
	Website         string       `json:"website"`
	PriceRange      PriceRange   `json:"price_range"`
	Availability    Availability `json:"availability"`
	PortfolioImages []string     `json:"portfolio_images"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type CreateVendorInput struct {
	Name            string
	Company         string
	Email           string
	Phone           string
	Specialty       string
	Location        string
	Description     string
	Website         string
	PriceRange      PriceRange
	Availability    Availability
	PortfolioImages []string
}

type UpdateVendorInput struct {
	ID              string
	Name            string
	Company         string
	Email           string
	Phone           string
	Specialty       string
	Location        string
	Description     string
	Website         string
	PriceRange      PriceRange
	Availability    Availability
	PortfolioImages []string
}
