package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
)

func TestPaymentRecordRoundTrip(t *testing.T) {
	paid := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	created := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	p := &domain.Payment{
		ID:                 "p1",
		EventID:            "e1",
		Type:               domain.PaymentTypeClient,
		Amount:             decimal.RequireFromString("1000.00"),
		Description:        "Venue deposit",
		Status:             domain.PaymentStatusPaid,
		DueDate:            time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC),
		PaidDate:           &paid,
		PaymentMethod:      domain.PaymentMethodCreditCard,
		ClientName:         "Acme Corp",
		InvoiceNumber:      "INV-2024-0001",
		TransactionID:      "TXN-1718000000000",
		ProcessingFee:      decimal.RequireFromString("29.00"),
		NetAmount:          decimal.RequireFromString("971.00"),
		ConfirmationNumber: "",
		CreatedAt:          created,
		UpdatedAt:          paid,
	}

	got := PaymentFromRecord(PaymentToRecord(p))

	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.EventID, got.EventID)
	assert.Equal(t, p.Type, got.Type)
	assert.True(t, got.Amount.Equal(p.Amount))
	assert.Equal(t, p.Status, got.Status)
	assert.True(t, got.DueDate.Equal(p.DueDate))
	require.NotNil(t, got.PaidDate)
	assert.True(t, got.PaidDate.Equal(paid))
	assert.Equal(t, p.PaymentMethod, got.PaymentMethod)
	assert.Equal(t, p.InvoiceNumber, got.InvoiceNumber)
	assert.True(t, got.ProcessingFee.Equal(p.ProcessingFee))
	assert.True(t, got.NetAmount.Equal(p.NetAmount))
	assert.True(t, got.CreatedAt.Equal(created))
}

func TestPaymentFromRecord_Defaults(t *testing.T) {
	// Sparse legacy record: no type, status, or amounts.
	rec := PaymentRecord{
		ID:      "p1",
		Event:   "e1",
		DueDate: "2024-06-08",
	}

	got := PaymentFromRecord(rec)

	assert.Equal(t, domain.PaymentTypeClient, got.Type)
	assert.Equal(t, domain.PaymentStatusPending, got.Status)
	assert.True(t, got.Amount.IsZero())
	assert.Nil(t, got.PaidDate)
	assert.True(t, got.CreatedAt.IsZero())
}

func TestPaymentFromRecord_MalformedAmounts(t *testing.T) {
	rec := PaymentRecord{
		ID:            "p1",
		Event:         "e1",
		Type:          "client",
		Status:        "pending",
		Amount:        "not-a-number",
		ProcessingFee: "",
		DueDate:       "2024-06-08",
	}

	got := PaymentFromRecord(rec)

	assert.True(t, got.Amount.IsZero())
	assert.True(t, got.ProcessingFee.IsZero())
}

func TestPaymentToRecord_DueDateIsDateOnly(t *testing.T) {
	p := &domain.Payment{
		ID:      "p1",
		Type:    domain.PaymentTypeClient,
		Status:  domain.PaymentStatusPending,
		Amount:  decimal.RequireFromString("100"),
		DueDate: time.Date(2024, 6, 8, 15, 45, 30, 0, time.UTC),
	}

	rec := PaymentToRecord(p)

	assert.Equal(t, "2024-06-08", rec.DueDate)
	assert.Empty(t, rec.PaidDate)
}
