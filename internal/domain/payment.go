package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentType string

const (
	// PaymentTypeClient is money owed to the organizer (incoming, revenue).
	PaymentTypeClient PaymentType = "client"
	// PaymentTypeVendor is money owed by the organizer (outgoing, expense).
	PaymentTypeVendor PaymentType = "vendor"
)

func (t PaymentType) Valid() bool {
	return t == PaymentTypeClient || t == PaymentTypeVendor
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"

	// PaymentStatusOverdue is a derived display status: a pending payment
	// whose due date has passed. It is never written to storage.
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// StoredStatuses are the statuses a payment row may actually hold.
var StoredStatuses = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusPaid,
	PaymentStatusRefunded,
}

func (s PaymentStatus) Stored() bool {
	for _, st := range StoredStatuses {
		if s == st {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCreditCard    PaymentMethod = "credit_card"
	PaymentMethodBankTransfer  PaymentMethod = "bank_transfer"
	PaymentMethodCash          PaymentMethod = "cash"
	PaymentMethodCheck         PaymentMethod = "check"
	PaymentMethodOnlinePayment PaymentMethod = "online_payment"
	PaymentMethodPayPal        PaymentMethod = "paypal"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodBankTransfer, PaymentMethodCash,
		PaymentMethodCheck, PaymentMethodOnlinePayment, PaymentMethodPayPal:
		return true
	}
	return false
}

type Payment struct {
	ID                 string          `json:"id"`
	EventID            string          `json:"event_id"`
	Type               PaymentType     `json:"type"`
	Amount             decimal.Decimal `json:"amount"`
	Description        string          `json:"description"`
	Status             PaymentStatus   `json:"status"`
	DueDate            time.Time       `json:"due_date"`
	PaidDate           *time.Time      `json:"paid_date"`
	PaymentMethod      PaymentMethod   `json:"payment_method"`
	ClientName         string          `json:"client_name"`
	VendorName         string          `json:"vendor_name"`
	InvoiceNumber      string          `json:"invoice_number"`
	TransactionID      string          `json:"transaction_id"`
	ProcessingFee      decimal.Decimal `json:"processing_fee"`
	NetAmount          decimal.Decimal `json:"net_amount"`
	ConfirmationNumber string          `json:"confirmation_number"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// EffectiveStatus is the status as shown to users: pending payments past
// their due date read as overdue, everything else as stored.
func (p *Payment) EffectiveStatus(now time.Time) PaymentStatus {
	if p.Status == PaymentStatusPending && p.DueDate.Before(now) {
		return PaymentStatusOverdue
	}
	return p.Status
}

// Counterparty is the name relevant to the payment's direction.
func (p *Payment) Counterparty() string {
	if p.Type == PaymentTypeVendor {
		return p.VendorName
	}
	return p.ClientName
}

// CanChangeStatus reports whether a stored-status transition is allowed.
// Refunds are only reachable from paid; paid may be reverted to pending.
func CanChangeStatus(from, to PaymentStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case PaymentStatusPending:
		return to == PaymentStatusPaid
	case PaymentStatusPaid:
		return to == PaymentStatusPending || to == PaymentStatusRefunded
	default:
		return false
	}
}

type CreatePaymentInput struct {
	EventID       string
	Type          PaymentType
	Amount        decimal.Decimal
	Description   string
	DueDate       time.Time
	ClientName    string
	VendorName    string
	PaymentMethod PaymentMethod
}

type UpdatePaymentInput struct {
	ID            string
	EventID       string
	Type          PaymentType
	Amount        decimal.Decimal
	Description   string
	DueDate       time.Time
	ClientName    string
	VendorName    string
	PaymentMethod PaymentMethod
}

// PaymentReceipt is the state recorded on a payment after successful
// processing. Fee and net amount stay zero on the vendor payout path.
type PaymentReceipt struct {
	Method             PaymentMethod
	TransactionID      string
	ProcessingFee      decimal.Decimal
	NetAmount          decimal.Decimal
	ConfirmationNumber string
}

// ChargeResult is the gateway outcome for receiving a client payment.
type ChargeResult struct {
	TransactionID string          `json:"transaction_id"`
	ProcessingFee decimal.Decimal `json:"processing_fee"`
	NetAmount     decimal.Decimal `json:"net_amount"`
}

// PayoutResult is the gateway outcome for paying a vendor.
type PayoutResult struct {
	TransactionID      string `json:"transaction_id"`
	ConfirmationNumber string `json:"confirmation_number"`
}
