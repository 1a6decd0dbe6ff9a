package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/apper-canvas/eventflow-ether-cell/internal/analytics"
	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
)

const dateLayout = "2006-01-02"

type PaymentResponse struct {
	ID                 string          `json:"id"`
	EventID            string          `json:"event"`
	Type               string          `json:"type"`
	Amount             decimal.Decimal `json:"amount"`
	Description        string          `json:"description"`
	Status             string          `json:"status"`
	DueDate            string          `json:"due_date"`
	PaidDate           *string         `json:"paid_date"`
	PaymentMethod      string          `json:"payment_method,omitempty"`
	ClientName         string          `json:"client_name,omitempty"`
	VendorName         string          `json:"vendor_name,omitempty"`
	InvoiceNumber      string          `json:"invoice_number,omitempty"`
	TransactionID      string          `json:"transaction_id,omitempty"`
	ProcessingFee      decimal.Decimal `json:"processing_fee"`
	NetAmount          decimal.Decimal `json:"net_amount"`
	ConfirmationNumber string          `json:"confirmation_number,omitempty"`
	CreatedAt          string          `json:"created_at"`
	UpdatedAt          string          `json:"updated_at"`
}

type BulkDeleteResponse struct {
	Deleted int      `json:"deleted"`
	Failed  []string `json:"failed,omitempty"`
}

type PaymentSummaryResponse struct {
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	TotalExpenses       decimal.Decimal `json:"total_expenses"`
	OutstandingPayments decimal.Decimal `json:"outstanding_payments"`
	NetProfit           decimal.Decimal `json:"net_profit"`
	OverdueCount        int             `json:"overdue_count"`
	PaymentCount        int             `json:"payment_count"`
}

type ChargeResponse struct {
	Payment PaymentResponse      `json:"payment"`
	Result  *domain.ChargeResult `json:"result"`
}

type PayoutResponse struct {
	Payment PaymentResponse      `json:"payment"`
	Result  *domain.PayoutResult `json:"result"`
}

type EventResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Venue       string          `json:"venue"`
	Status      string          `json:"status"`
	Budget      decimal.Decimal `json:"budget"`
	GuestCount  int             `json:"guest_count"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

type CalendarDayResponse struct {
	Date        string            `json:"date"`
	Events      []EventResponse   `json:"events"`
	PaymentsDue []PaymentResponse `json:"payments_due"`
}

type GuestResponse struct {
	ID         string `json:"id"`
	EventID    string `json:"event"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	RSVPStatus string `json:"rsvp_status"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type BudgetItemResponse struct {
	ID              string          `json:"id"`
	EventID         string          `json:"event"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
	SpentAmount     decimal.Decimal `json:"spent_amount"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}

type BudgetSummaryResponse struct {
	TotalAllocated decimal.Decimal `json:"total_allocated"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	Remaining      decimal.Decimal `json:"remaining"`
	Utilization    float64         `json:"utilization"`
	ItemCount      int             `json:"item_count"`
}

type VendorResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Company         string   `json:"company"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone,omitempty"`
	Specialty       string   `json:"specialty"`
	Location        string   `json:"location,omitempty"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"review_count"`
	Description     string   `json:"description,omitempty"`
	Website         string   `json:"website,omitempty"`
	PriceRange      string   `json:"price_range"`
	Availability    string   `json:"availability"`
	PortfolioImages []string `json:"portfolio_images"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ToPaymentResponse renders a payment for the API. The status field carries
// the effective status, so a pending payment past due reads as overdue.
func ToPaymentResponse(p *domain.Payment, now time.Time) PaymentResponse {
	resp := PaymentResponse{
		ID:                 p.ID,
		EventID:            p.EventID,
		Type:               string(p.Type),
		Amount:             p.Amount,
		Description:        p.Description,
		Status:             string(p.EffectiveStatus(now)),
		DueDate:            p.DueDate.Format(dateLayout),
		PaymentMethod:      string(p.PaymentMethod),
		ClientName:         p.ClientName,
		VendorName:         p.VendorName,
		InvoiceNumber:      p.InvoiceNumber,
		TransactionID:      p.TransactionID,
		ProcessingFee:      p.ProcessingFee,
		NetAmount:          p.NetAmount,
		ConfirmationNumber: p.ConfirmationNumber,
		CreatedAt:          p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          p.UpdatedAt.Format(time.RFC3339),
	}
	if p.PaidDate != nil {
		paid := p.PaidDate.Format(time.RFC3339)
		resp.PaidDate = &paid
	}
	return resp
}

func ToPaymentResponses(payments []*domain.Payment, now time.Time) []PaymentResponse {
	resp := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, ToPaymentResponse(p, now))
	}
	return resp
}

func ToPaymentSummaryResponse(s analytics.PaymentSummary) PaymentSummaryResponse {
	return PaymentSummaryResponse{
		TotalRevenue:        s.TotalRevenue,
		TotalExpenses:       s.TotalExpenses,
		OutstandingPayments: s.OutstandingPayments,
		NetProfit:           s.NetProfit,
		OverdueCount:        s.OverdueCount,
		PaymentCount:        s.PaymentCount,
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Date:        e.Date.Format(dateLayout),
		Venue:       e.Venue,
		Status:      string(e.Status),
		Budget:      e.Budget,
		GuestCount:  e.GuestCount,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
	}
}

func ToCalendarDayResponse(d domain.CalendarDay, now time.Time) CalendarDayResponse {
	events := make([]EventResponse, 0, len(d.Events))
	for _, e := range d.Events {
		events = append(events, ToEventResponse(e))
	}
	return CalendarDayResponse{
		Date:        d.Date.Format(dateLayout),
		Events:      events,
		PaymentsDue: ToPaymentResponses(d.PaymentsDue, now),
	}
}

func ToGuestResponse(g *domain.Guest) GuestResponse {
	return GuestResponse{
		ID:         g.ID,
		EventID:    g.EventID,
		Name:       g.Name,
		Email:      g.Email,
		RSVPStatus: string(g.RSVPStatus),
		CreatedAt:  g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  g.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBudgetItemResponse(item *domain.BudgetItem) BudgetItemResponse {
	return BudgetItemResponse{
		ID:              item.ID,
		EventID:         item.EventID,
		Name:            item.Name,
		Category:        item.Category,
		AllocatedAmount: item.AllocatedAmount,
		SpentAmount:     item.SpentAmount,
		CreatedAt:       item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       item.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBudgetSummaryResponse(s analytics.BudgetSummary) BudgetSummaryResponse {
	return BudgetSummaryResponse{
		TotalAllocated: s.TotalAllocated,
		TotalSpent:     s.TotalSpent,
		Remaining:      s.Remaining,
		Utilization:    s.Utilization,
		ItemCount:      s.ItemCount,
	}
}

func ToVendorResponse(v *domain.Vendor) VendorResponse {
	images := v.PortfolioImages
	if images == nil {
		images = []string{}
	}
	return VendorResponse{
		ID:              v.ID,
		Name:            v.Name,
		Company:         v.Company,
		Email:           v.Email,
		Phone:           v.Phone,
		Specialty:       v.Specialty,
		Location:        v.Location,
		Rating:          v.Rating,
		ReviewCount:     v.ReviewCount,
		Description:     v.Description,
		Website:         v.Website,
		PriceRange:      string(v.PriceRange),
		Availability:    string(v.Availability),
		PortfolioImages: images,
		CreatedAt:       v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       v.UpdatedAt.Format(time.RFC3339),
	}
}
