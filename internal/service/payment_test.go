package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
	"github.com/apper-canvas/eventflow-ether-cell/internal/filter"
	"github.com/apper-canvas/eventflow-ether-cell/internal/repository/memory"
	"github.com/apper-canvas/eventflow-ether-cell/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

var paymentNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newPaymentFixture(t *testing.T) (*PaymentService, *memory.PaymentStore, *mocks.MockPaymentGateway, *mocks.MockPaymentNotifier) {
	t.Helper()

	store := memory.NewPaymentStore(memory.WithClock(func() time.Time { return paymentNow }))
	gateway := mocks.NewMockPaymentGateway(t)
	notifier := mocks.NewMockPaymentNotifier(t)
	svc := NewPaymentService(store, gateway, notifier, newTestLogger(t))

	return svc, store, gateway, notifier
}

func clientInput() domain.CreatePaymentInput {
	return domain.CreatePaymentInput{
		EventID:     "e1",
		Type:        domain.PaymentTypeClient,
		Amount:      decimal.RequireFromString("1000.00"),
		Description: "Venue deposit",
		DueDate:     paymentNow.AddDate(0, 0, 7),
		ClientName:  "Acme Corp",
	}
}

func vendorInput() domain.CreatePaymentInput {
	return domain.CreatePaymentInput{
		EventID:     "e1",
		Type:        domain.PaymentTypeVendor,
		Amount:      decimal.RequireFromString("750.00"),
		Description: "Catering balance",
		DueDate:     paymentNow.AddDate(0, 0, 7),
		VendorName:  "Tasty Bites",
	}
}

func TestPaymentService_Create(t *testing.T) {
	svc, _, _, _ := newPaymentFixture(t)

	p, err := svc.Create(context.Background(), clientInput())

	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.PaymentStatusPending, p.Status)
	assert.Regexp(t, `^INV-2024-\d{4}$`, p.InvoiceNumber)
}

func TestPaymentService_Create_SequentialInvoiceNumbers(t *testing.T) {
	svc, _, _, _ := newPaymentFixture(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, clientInput())
	require.NoError(t, err)
	second, err := svc.Create(ctx, clientInput())
	require.NoError(t, err)

	assert.Equal(t, "INV-2024-0001", first.InvoiceNumber)
	assert.Equal(t, "INV-2024-0002", second.InvoiceNumber)
}

func TestPaymentService_Create_VendorHasNoInvoice(t *testing.T) {
	svc, _, _, _ := newPaymentFixture(t)

	p, err := svc.Create(context.Background(), vendorInput())

	require.NoError(t, err)
	assert.Empty(t, p.InvoiceNumber)
}

func TestPaymentService_Create_DefaultsToClientType(t *testing.T) {
	svc, _, _, _ := newPaymentFixture(t)

	input := clientInput()
	input.Type = ""
	p, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentTypeClient, p.Type)
}

func TestPaymentService_Create_Validation(t *testing.T) {
	svc, _, _, _ := newPaymentFixture(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*domain.CreatePaymentInput)
	}{
		{"missing event", func(i *domain.CreatePaymentInput) { i.EventID = "" }},
		{"zero amount", func(i *domain.CreatePaymentInput) { i.Amount = decimal.Zero }},
		{"negative amount", func(i *domain.CreatePaymentInput) { i.Amount = decimal.RequireFromString("-5") }},
		{"missing description", func(i *domain.CreatePaymentInput) { i.Description = "" }},
		{"missing due date", func(i *domain.CreatePaymentInput) { i.DueDate = time.Time{} }},
		{"bad type", func(i *domain.CreatePaymentInput) { i.Type = "subscription" }},
		{"bad method", func(i *domain.CreatePaymentInput) { i.PaymentMethod = "bitcoin" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := clientInput()
			tc.mutate(&input)

			_, err := svc.Create(ctx, input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestPaymentService_List_Filtered(t *testing.T) {
	svc, _, _, _ := newPaymentFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, clientInput())
	require.NoError(t, err)
	_, err = svc.Create(ctx, vendorInput())
	require.NoError(t, err)

	vendors, err := svc.List(ctx, filter.PaymentFilter{Type: domain.PaymentTypeVendor})
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, domain.PaymentTypeVendor, vendors[0].Type)

	all, err := svc.List(ctx, filter.PaymentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPaymentService_SetStatus_Transitions(t *testing.T) {
	svc, _, _, _ := newPaymentFixture(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, clientInput())
	require.NoError(t, err)

	// pending -> paid
	got, err := svc.SetStatus(ctx, p.ID, domain.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, got.Status)
	require.NotNil(t, got.PaidDate)

	// paid -> refunded
	got, err = svc.SetStatus(ctx, p.ID, domain.PaymentStatusRefunded)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusRefunded, got.Status)

	// refunded is terminal
	_, err = svc.SetStatus(ctx, p.ID, domain.PaymentStatusPending)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusChange)
}

func TestPaymentService_SetStatus_PendingToRefundedRejected(t *testing.T) {
	svc, _, _, _ := newPaymentFixture(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, clientInput())
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, p.ID, domain.PaymentStatusRefunded)

	assert.ErrorIs(t, err, domain.ErrInvalidStatusChange)
}

func TestPaymentService_SetStatus_PaidIsIdempotent(t *testing.T) {
	svc, _, _, _ := newPaymentFixture(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, clientInput())
	require.NoError(t, err)

	first, err := svc.SetStatus(ctx, p.ID, domain.PaymentStatusPaid)
	require.NoError(t, err)
	require.NotNil(t, first.PaidDate)

	second, err := svc.SetStatus(ctx, p.ID, domain.PaymentStatusPaid)
	require.NoError(t, err)
	require.NotNil(t, second.PaidDate)
	assert.Equal(t, *first.PaidDate, *second.PaidDate)
}

func TestPaymentService_SetStatus_RevertClearsPaidDate(t *testing.T) {
	svc, _, _, _ := newPaymentFixture(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, clientInput())
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, p.ID, domain.PaymentStatusPaid)
	require.NoError(t, err)

	got, err := svc.SetStatus(ctx, p.ID, domain.PaymentStatusPending)
	require.NoError(t, err)
	assert.Nil(t, got.PaidDate)
}

func TestPaymentService_SetStatus_OverdueNotStorable(t *testing.T) {
	svc, _, _, _ := newPaymentFixture(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, clientInput())
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, p.ID, domain.PaymentStatusOverdue)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPaymentService_Receive_Success(t *testing.T) {
	svc, store, gateway, notifier := newPaymentFixture(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, clientInput())
	require.NoError(t, err)

	result := &domain.ChargeResult{
		TransactionID: "TXN-123",
		ProcessingFee: decimal.RequireFromString("29.00"),
		NetAmount:     decimal.RequireFromString("971.00"),
	}
	gateway.EXPECT().Charge(mock.Anything, mock.Anything, domain.PaymentMethodCreditCard).Return(result, nil)
	notifier.EXPECT().NotifyPaymentReceived(mock.Anything, mock.Anything).Return()

	got, err := svc.Receive(ctx, p.ID, domain.PaymentMethodCreditCard)

	require.NoError(t, err)
	assert.Equal(t, "TXN-123", got.TransactionID)

	stored, err := store.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, stored.Status)
	assert.True(t, stored.ProcessingFee.Equal(result.ProcessingFee))
	assert.True(t, stored.NetAmount.Equal(result.NetAmount))
	require.NotNil(t, stored.PaidDate)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPaymentService_Receive_GatewayFailureLeavesPending(t *testing.T) {
	svc, store, gateway, _ := newPaymentFixture(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, clientInput())
	require.NoError(t, err)

	gateway.EXPECT().Charge(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrProcessingFailed)

	_, err = svc.Receive(ctx, p.ID, domain.PaymentMethodCash)

	assert.ErrorIs(t, err, domain.ErrProcessingFailed)

	stored, err := store.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, stored.Status)
	assert.Nil(t, stored.PaidDate)
	assert.Empty(t, stored.TransactionID)
}

func TestPaymentService_Receive_RejectsVendorPayment(t *testing.T) {
	svc, _, _, _ := newPaymentFixture(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, vendorInput())
	require.NoError(t, err)

	_, err = svc.Receive(ctx, p.ID, domain.PaymentMethodCash)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPaymentService_Receive_RejectsNonPending(t *testing.T) {
	svc, _, _, _ := newPaymentFixture(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, clientInput())
	require.NoError(t, err)
	_, err = svc.SetStatus(ctx, p.ID, domain.PaymentStatusPaid)
	require.NoError(t, err)

	_, err = svc.Receive(ctx, p.ID, domain.PaymentMethodCash)

	assert.ErrorIs(t, err, domain.ErrPaymentNotPending)
}

func TestPaymentService_Pay_Success(t *testing.T) {
	svc, store, gateway, notifier := newPaymentFixture(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, vendorInput())
	require.NoError(t, err)

	result := &domain.PayoutResult{
		TransactionID:      "VTX-456",
		ConfirmationNumber: "CNF-456",
	}
	gateway.EXPECT().Payout(mock.Anything, mock.Anything, domain.PaymentMethodBankTransfer).Return(result, nil)
	notifier.EXPECT().NotifyVendorPaid(mock.Anything, mock.Anything).Return()

	got, err := svc.Pay(ctx, p.ID, domain.PaymentMethodBankTransfer)

	require.NoError(t, err)
	assert.Equal(t, "CNF-456", got.ConfirmationNumber)

	stored, err := store.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, stored.Status)
	assert.Equal(t, "CNF-456", stored.ConfirmationNumber)
	assert.True(t, stored.ProcessingFee.IsZero())

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPaymentService_Pay_RejectsClientPayment(t *testing.T) {
	svc, _, _, _ := newPaymentFixture(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, clientInput())
	require.NoError(t, err)

	_, err = svc.Pay(ctx, p.ID, domain.PaymentMethodCash)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPaymentService_Pay_GatewayFailureLeavesPending(t *testing.T) {
	svc, store, gateway, _ := newPaymentFixture(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, vendorInput())
	require.NoError(t, err)

	gateway.EXPECT().Payout(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrProcessingFailed)

	_, err = svc.Pay(ctx, p.ID, domain.PaymentMethodBankTransfer)

	assert.ErrorIs(t, err, domain.ErrProcessingFailed)

	stored, err := store.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, stored.Status)
}

func TestPaymentService_Delete_NotFound(t *testing.T) {
	svc, _, _, _ := newPaymentFixture(t)

	err := svc.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestPaymentService_DeleteMany_PartialFailure(t *testing.T) {
	svc, _, _, _ := newPaymentFixture(t)
	ctx := context.Background()

	p1, err := svc.Create(ctx, clientInput())
	require.NoError(t, err)
	p2, err := svc.Create(ctx, clientInput())
	require.NoError(t, err)

	deleted, failed := svc.DeleteMany(ctx, []string{p1.ID, "missing", p2.ID})

	assert.Equal(t, 2, deleted)
	assert.Equal(t, []string{"missing"}, failed)

	remaining, err := svc.List(ctx, filter.PaymentFilter{})
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestPaymentService_Analytics(t *testing.T) {
	svc, _, _, _ := newPaymentFixture(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, clientInput())
	require.NoError(t, err)
	_, err = svc.SetStatus(ctx, p.ID, domain.PaymentStatusPaid)
	require.NoError(t, err)
	_, err = svc.Create(ctx, vendorInput())
	require.NoError(t, err)

	summary, err := svc.Analytics(ctx, "")

	require.NoError(t, err)
	assert.True(t, summary.TotalRevenue.Equal(decimal.RequireFromString("1000.00")))
	assert.True(t, summary.OutstandingPayments.Equal(decimal.RequireFromString("750.00")))
	assert.Equal(t, 2, summary.PaymentCount)
}

func TestPaymentService_NotifyOverdue(t *testing.T) {
	svc, _, _, notifier := newPaymentFixture(t)
	ctx := context.Background()

	overdueInput := clientInput()
	overdueInput.DueDate = time.Now().UTC().AddDate(0, 0, -3)
	_, err := svc.Create(ctx, overdueInput)
	require.NoError(t, err)

	_, err = svc.Create(ctx, clientInput())
	require.NoError(t, err)

	notifier.EXPECT().NotifyPaymentOverdue(mock.Anything, mock.Anything).Return().Once()

	due, err := svc.NotifyOverdue(ctx)

	require.NoError(t, err)
	assert.Len(t, due, 1)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}
