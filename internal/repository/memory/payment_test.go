package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
)

var storeNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestStore() *PaymentStore {
	return NewPaymentStore(WithClock(func() time.Time { return storeNow }))
}

func clientPayment(id string) *domain.Payment {
	return &domain.Payment{
		ID:         id,
		EventID:    "e1",
		Type:       domain.PaymentTypeClient,
		Status:     domain.PaymentStatusPending,
		Amount:     decimal.RequireFromString("1000.00"),
		ClientName: "Acme Corp",
		DueDate:    storeNow.AddDate(0, 0, 7),
	}
}

func TestPaymentStore_CreateAssignsInvoiceNumber(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	first := clientPayment("p1")
	require.NoError(t, store.Create(ctx, first))
	assert.Equal(t, "INV-2024-0001", first.InvoiceNumber)

	second := clientPayment("p2")
	require.NoError(t, store.Create(ctx, second))
	assert.Equal(t, "INV-2024-0002", second.InvoiceNumber)

	// Vendor payments get no invoice number.
	vendor := clientPayment("p3")
	vendor.Type = domain.PaymentTypeVendor
	require.NoError(t, store.Create(ctx, vendor))
	assert.Empty(t, vendor.InvoiceNumber)
}

func TestPaymentStore_GetByID(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	p := clientPayment("p1")
	require.NoError(t, store.Create(ctx, p))

	got, err := store.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
	assert.True(t, got.Amount.Equal(p.Amount))

	_, err = store.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestPaymentStore_ListNewestFirst(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, clientPayment("p1")))
	require.NoError(t, store.Create(ctx, clientPayment("p2")))

	got, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p2", got[0].ID)
	assert.Equal(t, "p1", got[1].ID)
}

func TestPaymentStore_ListByEvent(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	p1 := clientPayment("p1")
	p2 := clientPayment("p2")
	p2.EventID = "e2"
	require.NoError(t, store.Create(ctx, p1))
	require.NoError(t, store.Create(ctx, p2))

	got, err := store.List(ctx, "e2")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)
}

func TestPaymentStore_SetStatus_StampsAndClearsPaidDate(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, clientPayment("p1")))

	require.NoError(t, store.SetStatus(ctx, "p1", domain.PaymentStatusPaid))
	got, err := store.GetByID(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, got.PaidDate)
	firstPaid := *got.PaidDate

	// Re-setting paid keeps the original stamp.
	require.NoError(t, store.SetStatus(ctx, "p1", domain.PaymentStatusPaid))
	got, err = store.GetByID(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, got.PaidDate)
	assert.Equal(t, firstPaid, *got.PaidDate)

	// Reverting to pending clears the stamp.
	require.NoError(t, store.SetStatus(ctx, "p1", domain.PaymentStatusPending))
	got, err = store.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, got.PaidDate)
}

func TestPaymentStore_MarkPaid(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, clientPayment("p1")))

	receipt := domain.PaymentReceipt{
		Method:        domain.PaymentMethodCreditCard,
		TransactionID: "TXN-123",
		ProcessingFee: decimal.RequireFromString("29.00"),
		NetAmount:     decimal.RequireFromString("971.00"),
	}
	require.NoError(t, store.MarkPaid(ctx, "p1", receipt))

	got, err := store.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, got.Status)
	assert.Equal(t, "TXN-123", got.TransactionID)
	assert.True(t, got.ProcessingFee.Equal(receipt.ProcessingFee))
	assert.True(t, got.NetAmount.Equal(receipt.NetAmount))
	require.NotNil(t, got.PaidDate)

	// A second attempt fails: the payment is no longer pending.
	err = store.MarkPaid(ctx, "p1", receipt)
	assert.ErrorIs(t, err, domain.ErrPaymentNotPending)

	err = store.MarkPaid(ctx, "missing", receipt)
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestPaymentStore_Update(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, clientPayment("p1")))

	upd := clientPayment("p1")
	upd.Description = "updated"
	upd.Amount = decimal.RequireFromString("2000.00")
	require.NoError(t, store.Update(ctx, upd))

	got, err := store.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Description)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("2000.00")))

	assert.ErrorIs(t, store.Update(ctx, clientPayment("missing")), domain.ErrPaymentNotFound)
}

func TestPaymentStore_Delete(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, clientPayment("p1")))
	require.NoError(t, store.Delete(ctx, "p1"))

	_, err := store.GetByID(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "p1"), domain.ErrPaymentNotFound)
}

func TestPaymentStore_ListDue(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	overdue := clientPayment("p1")
	overdue.DueDate = storeNow.AddDate(0, 0, -3)
	onTime := clientPayment("p2")

	paidPastDue := clientPayment("p3")
	paidPastDue.DueDate = storeNow.AddDate(0, 0, -3)

	require.NoError(t, store.Create(ctx, overdue))
	require.NoError(t, store.Create(ctx, onTime))
	require.NoError(t, store.Create(ctx, paidPastDue))
	require.NoError(t, store.SetStatus(ctx, "p3", domain.PaymentStatusPaid))

	due, err := store.ListDue(ctx, storeNow)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "p1", due[0].ID)
}
