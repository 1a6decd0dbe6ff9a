package dto

import "github.com/shopspring/decimal"

type CreatePaymentRequest struct {
	EventID       string          `json:"event" binding:"required,uuid"`
	Type          string          `json:"type" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	DueDate       string          `json:"due_date" binding:"required"`
	ClientName    string          `json:"client_name"`
	VendorName    string          `json:"vendor_name"`
	PaymentMethod string          `json:"payment_method"`
}

type UpdatePaymentRequest struct {
	EventID       string          `json:"event" binding:"required,uuid"`
	Type          string          `json:"type" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	DueDate       string          `json:"due_date" binding:"required"`
	ClientName    string          `json:"client_name"`
	VendorName    string          `json:"vendor_name"`
	PaymentMethod string          `json:"payment_method"`
}

type SetPaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ProcessPaymentRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

type BulkDeletePaymentsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

type CreateEventRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" binding:"required"`
	Venue       string          `json:"venue"`
	Status      string          `json:"status"`
	Budget      decimal.Decimal `json:"budget"`
	GuestCount  int             `json:"guest_count"`
}

type UpdateEventRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" binding:"required"`
	Venue       string          `json:"venue"`
	Status      string          `json:"status"`
	Budget      decimal.Decimal `json:"budget"`
	GuestCount  int             `json:"guest_count"`
}

type CreateGuestRequest struct {
	EventID string `json:"event" binding:"required,uuid"`
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
}

type UpdateGuestRequest struct {
	EventID string `json:"event" binding:"required,uuid"`
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
}

type SetRSVPRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateBudgetItemRequest struct {
	EventID         string          `json:"event" binding:"required,uuid"`
	Name            string          `json:"name" binding:"required"`
	Category        string          `json:"category" binding:"required"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
	SpentAmount     decimal.Decimal `json:"spent_amount"`
}

type UpdateBudgetItemRequest struct {
	EventID         string          `json:"event" binding:"required,uuid"`
	Name            string          `json:"name" binding:"required"`
	Category        string          `json:"category" binding:"required"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
	SpentAmount     decimal.Decimal `json:"spent_amount"`
}

type SetSpentAmountRequest struct {
	SpentAmount decimal.Decimal `json:"spent_amount"`
}

type CreateVendorRequest struct {
	Name            string   `json:"name" binding:"required"`
	Company         string   `json:"company" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Phone           string   `json:"phone"`
	Specialty       string   `json:"specialty" binding:"required"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	Website         string   `json:"website"`
	PriceRange      string   `json:"price_range"`
	Availability    string   `json:"availability"`
	PortfolioImages []string `json:"portfolio_images"`
}

type UpdateVendorRequest struct {
	Name            string   `json:"name" binding:"required"`
	Company         string   `json:"company"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Specialty       string   `json:"specialty"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	Website         string   `json:"website"`
	PriceRange      string   `json:"price_range"`
	Availability    string   `json:"availability"`
	PortfolioImages []string `json:"portfolio_images"`
}

type RateVendorRequest struct {
	Rating float64 `json:"rating" binding:"required"`
}

type SetAvailabilityRequest struct {
	Availability string `json:"availability" binding:"required"`
}
