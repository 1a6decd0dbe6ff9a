package repository

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
)

// Date layouts of the persisted record: due dates carry no time component,
// instants are RFC 3339.
const (
	recordDateLayout    = "2006-01-02"
	recordInstantLayout = time.RFC3339Nano
)

// PaymentRecord is the persisted shape of a payment: the column set of the
// payments table, with dates as strings and amounts as decimal strings. The
// in-memory store persists this shape directly.
type PaymentRecord struct {
	ID                 string `json:"id"`
	Event              string `json:"event"`
	Type               string `json:"type"`
	Amount             string `json:"amount"`
	Description        string `json:"description"`
	Status             string `json:"status"`
	DueDate            string `json:"due_date"`
	PaidDate           string `json:"paid_date,omitempty"`
	PaymentMethod      string `json:"payment_method,omitempty"`
	ClientName         string `json:"client_name,omitempty"`
	VendorName         string `json:"vendor_name,omitempty"`
	InvoiceNumber      string `json:"invoice_number,omitempty"`
	TransactionID      string `json:"transaction_id,omitempty"`
	ProcessingFee      string `json:"processing_fee,omitempty"`
	NetAmount          string `json:"net_amount,omitempty"`
	ConfirmationNumber string `json:"confirmation_number,omitempty"`
	CreatedAt          string `json:"created_at,omitempty"`
	UpdatedAt          string `json:"updated_at,omitempty"`
}

// PaymentFromRecord maps a persisted record to the domain type. The mapping
// is total: missing or malformed optional fields fall back to zero values
// instead of failing, matching what the dashboard tolerates in stored data.
func PaymentFromRecord(rec PaymentRecord) *domain.Payment {
	p := &domain.Payment{
		ID:                 rec.ID,
		EventID:            rec.Event,
		Type:               domain.PaymentType(rec.Type),
		Amount:             parseAmount(rec.Amount),
		Description:        rec.Description,
		Status:             domain.PaymentStatus(rec.Status),
		PaymentMethod:      domain.PaymentMethod(rec.PaymentMethod),
		ClientName:         rec.ClientName,
		VendorName:         rec.VendorName,
		InvoiceNumber:      rec.InvoiceNumber,
		TransactionID:      rec.TransactionID,
		ProcessingFee:      parseAmount(rec.ProcessingFee),
		NetAmount:          parseAmount(rec.NetAmount),
		ConfirmationNumber: rec.ConfirmationNumber,
	}

	if p.Type == "" {
		p.Type = domain.PaymentTypeClient
	}
	if p.Status == "" {
		p.Status = domain.PaymentStatusPending
	}

	if due, err := time.Parse(recordDateLayout, rec.DueDate); err == nil {
		p.DueDate = due
	}
	if paid, err := time.Parse(recordInstantLayout, rec.PaidDate); err == nil {
		p.PaidDate = &paid
	}
	if created, err := time.Parse(recordInstantLayout, rec.CreatedAt); err == nil {
		p.CreatedAt = created
	}
	if updated, err := time.Parse(recordInstantLayout, rec.UpdatedAt); err == nil {
		p.UpdatedAt = updated
	}

	return p
}

// PaymentToRecord maps a domain payment back to its persisted shape.
func PaymentToRecord(p *domain.Payment) PaymentRecord {
	rec := PaymentRecord{
		ID:                 p.ID,
		Event:              p.EventID,
		Type:               string(p.Type),
		Amount:             p.Amount.String(),
		Description:        p.Description,
		Status:             string(p.Status),
		DueDate:            p.DueDate.Format(recordDateLayout),
		PaymentMethod:      string(p.PaymentMethod),
		ClientName:         p.ClientName,
		VendorName:         p.VendorName,
		InvoiceNumber:      p.InvoiceNumber,
		TransactionID:      p.TransactionID,
		ProcessingFee:      p.ProcessingFee.String(),
		NetAmount:          p.NetAmount.String(),
		ConfirmationNumber: p.ConfirmationNumber,
	}

	if p.PaidDate != nil {
		rec.PaidDate = p.PaidDate.Format(recordInstantLayout)
	}
	if !p.CreatedAt.IsZero() {
		rec.CreatedAt = p.CreatedAt.Format(recordInstantLayout)
	}
	if !p.UpdatedAt.IsZero() {
		rec.UpdatedAt = p.UpdatedAt.Format(recordInstantLayout)
	}

	return rec
}

func parseAmount(s string) decimal.Decimal {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
