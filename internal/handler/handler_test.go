package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/eventflow-ether-cell/internal/analytics"
	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
	"github.com/apper-canvas/eventflow-ether-cell/internal/filter"
	"github.com/apper-canvas/eventflow-ether-cell/internal/handler/dto"
	hmocks "github.com/apper-canvas/eventflow-ether-cell/internal/handler/mocks"
	"github.com/apper-canvas/eventflow-ether-cell/internal/router"
)

type testMocks struct {
	payment *hmocks.MockPaymentSvc
	event   *hmocks.MockEventSvc
	guest   *hmocks.MockGuestSvc
	budget  *hmocks.MockBudgetSvc
	vendor  *hmocks.MockVendorSvc
}

func setupRouter(t *testing.T) (testMocks, http.Handler) {
	t.Helper()

	m := testMocks{
		payment: hmocks.NewMockPaymentSvc(t),
		event:   hmocks.NewMockEventSvc(t),
		guest:   hmocks.NewMockGuestSvc(t),
		budget:  hmocks.NewMockBudgetSvc(t),
		vendor:  hmocks.NewMockVendorSvc(t),
	}
	h := NewHandler(m.payment, m.event, m.guest, m.budget, m.vendor)

	return m, router.InitRouter("test", h)
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func samplePayment(id string) *domain.Payment {
	return &domain.Payment{
		ID:            id,
		EventID:       uuid.New().String(),
		Type:          domain.PaymentTypeClient,
		Amount:        decimal.RequireFromString("1000.00"),
		Description:   "Venue deposit",
		Status:        domain.PaymentStatusPending,
		DueDate:       time.Now().UTC().AddDate(0, 0, 7),
		ClientName:    "Acme Corp",
		InvoiceNumber: "INV-2024-0001",
	}
}

func TestCreatePayment(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	payment := samplePayment(uuid.New().String())
	payment.EventID = eventID

	m.payment.EXPECT().Create(mock.Anything, mock.MatchedBy(func(input domain.CreatePaymentInput) bool {
		return input.EventID == eventID && input.Amount.Equal(decimal.RequireFromString("1000.00"))
	})).Return(payment, nil)

	w := doJSON(t, r, http.MethodPost, "/api/payments", dto.CreatePaymentRequest{
		EventID:     eventID,
		Type:        "client",
		Amount:      decimal.RequireFromString("1000.00"),
		Description: "Venue deposit",
		DueDate:     "2026-09-05",
		ClientName:  "Acme Corp",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode[dto.PaymentResponse](t, w)
	assert.Equal(t, payment.ID, resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "INV-2024-0001", resp.InvoiceNumber)
}

func TestCreatePayment_BadDueDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/payments", dto.CreatePaymentRequest{
		EventID:     uuid.New().String(),
		Type:        "client",
		Amount:      decimal.RequireFromString("100"),
		Description: "x",
		DueDate:     "05/09/2026",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePayment_ValidationError(t *testing.T) {
	m, r := setupRouter(t)

	m.payment.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, domain.ErrValidation)

	w := doJSON(t, r, http.MethodPost, "/api/payments", dto.CreatePaymentRequest{
		EventID:     uuid.New().String(),
		Type:        "client",
		Description: "x",
		DueDate:     "2026-09-05",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPayment_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/payments/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPayment_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.payment.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrPaymentNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/payments/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPayments_PassesFilter(t *testing.T) {
	m, r := setupRouter(t)

	m.payment.EXPECT().List(mock.Anything, mock.MatchedBy(func(f filter.PaymentFilter) bool {
		return f.Search == "acme" &&
			f.Type == domain.PaymentTypeClient &&
			f.Status == domain.PaymentStatusOverdue &&
			f.DueFrom != nil && f.DueFrom.Format("2006-01-02") == "2026-01-01"
	})).Return([]*domain.Payment{samplePayment(uuid.New().String())}, nil)

	w := doJSON(t, r, http.MethodGet,
		"/api/payments?search=acme&type=client&status=overdue&due_from=2026-01-01", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[[]dto.PaymentResponse](t, w)
	assert.Len(t, resp, 1)
}

func TestListPayments_BadDueFrom(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/payments?due_from=01-01-2026", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetPaymentStatus_Conflict(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.payment.EXPECT().SetStatus(mock.Anything, id, domain.PaymentStatusRefunded).
		Return(nil, domain.ErrInvalidStatusChange)

	w := doJSON(t, r, http.MethodPatch, "/api/payments/"+id+"/status",
		dto.SetPaymentStatusRequest{Status: "refunded"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestReceivePayment(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	paid := samplePayment(id)
	paid.Status = domain.PaymentStatusPaid
	now := time.Now().UTC()
	paid.PaidDate = &now
	paid.TransactionID = "TXN-123"

	result := &domain.ChargeResult{
		TransactionID: "TXN-123",
		ProcessingFee: decimal.RequireFromString("29.00"),
		NetAmount:     decimal.RequireFromString("971.00"),
	}
	m.payment.EXPECT().Receive(mock.Anything, id, domain.PaymentMethodCreditCard).Return(result, nil)
	m.payment.EXPECT().GetByID(mock.Anything, id).Return(paid, nil)

	w := doJSON(t, r, http.MethodPost, "/api/payments/"+id+"/receive",
		dto.ProcessPaymentRequest{PaymentMethod: "credit_card"})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.ChargeResponse](t, w)
	assert.Equal(t, "paid", resp.Payment.Status)
	assert.Equal(t, "TXN-123", resp.Result.TransactionID)
}

func TestReceivePayment_GatewayFailure(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.payment.EXPECT().Receive(mock.Anything, id, domain.PaymentMethodCash).
		Return(nil, domain.ErrProcessingFailed)

	w := doJSON(t, r, http.MethodPost, "/api/payments/"+id+"/receive",
		dto.ProcessPaymentRequest{PaymentMethod: "cash"})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestReceivePayment_NotPending(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.payment.EXPECT().Receive(mock.Anything, id, domain.PaymentMethodCash).
		Return(nil, domain.ErrPaymentNotPending)

	w := doJSON(t, r, http.MethodPost, "/api/payments/"+id+"/receive",
		dto.ProcessPaymentRequest{PaymentMethod: "cash"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPayVendor(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	paid := samplePayment(id)
	paid.Type = domain.PaymentTypeVendor
	paid.Status = domain.PaymentStatusPaid
	paid.ConfirmationNumber = "CNF-456"

	result := &domain.PayoutResult{TransactionID: "VTX-456", ConfirmationNumber: "CNF-456"}
	m.payment.EXPECT().Pay(mock.Anything, id, domain.PaymentMethodBankTransfer).Return(result, nil)
	m.payment.EXPECT().GetByID(mock.Anything, id).Return(paid, nil)

	w := doJSON(t, r, http.MethodPost, "/api/payments/"+id+"/pay",
		dto.ProcessPaymentRequest{PaymentMethod: "bank_transfer"})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.PayoutResponse](t, w)
	assert.Equal(t, "CNF-456", resp.Result.ConfirmationNumber)
}

func TestBulkDeletePayments(t *testing.T) {
	m, r := setupRouter(t)

	ids := []string{uuid.New().String(), uuid.New().String(), "missing"}
	m.payment.EXPECT().DeleteMany(mock.Anything, ids).Return(2, []string{"missing"})

	w := doJSON(t, r, http.MethodPost, "/api/payments/bulk-delete",
		dto.BulkDeletePaymentsRequest{IDs: ids})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.BulkDeleteResponse](t, w)
	assert.Equal(t, 2, resp.Deleted)
	assert.Equal(t, []string{"missing"}, resp.Failed)
}

func TestBulkDeletePayments_EmptyIDs(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/payments/bulk-delete",
		dto.BulkDeletePaymentsRequest{IDs: []string{}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentAnalytics(t *testing.T) {
	m, r := setupRouter(t)

	summary := analytics.PaymentSummary{
		TotalRevenue:        decimal.RequireFromString("7500.50"),
		TotalExpenses:       decimal.RequireFromString("1200.00"),
		OutstandingPayments: decimal.RequireFromString("1100.00"),
		NetProfit:           decimal.RequireFromString("6300.50"),
		OverdueCount:        1,
		PaymentCount:        6,
	}
	m.payment.EXPECT().Analytics(mock.Anything, "e1").Return(summary, nil)

	w := doJSON(t, r, http.MethodGet, "/api/payments/analytics?event=e1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.PaymentSummaryResponse](t, w)
	assert.Equal(t, 1, resp.OverdueCount)
	assert.Equal(t, 6, resp.PaymentCount)
}

func TestCreateEvent(t *testing.T) {
	m, r := setupRouter(t)

	event := &domain.Event{
		ID:     uuid.New().String(),
		Name:   "Summer Gala",
		Date:   time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC),
		Status: domain.EventStatusPlanning,
	}
	m.event.EXPECT().Create(mock.Anything, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Name: "Summer Gala",
		Date: "2026-07-20",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode[dto.EventResponse](t, w)
	assert.Equal(t, "planning", resp.Status)
}

func TestCalendar(t *testing.T) {
	m, r := setupRouter(t)

	days := []domain.CalendarDay{
		{
			Date:   time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC),
			Events: []*domain.Event{{ID: "e1", Name: "Summer Gala"}},
		},
	}
	m.event.EXPECT().Calendar(mock.Anything, 2026, time.July).Return(days, nil)

	w := doJSON(t, r, http.MethodGet, "/api/calendar?year=2026&month=7", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[[]dto.CalendarDayResponse](t, w)
	require.Len(t, resp, 1)
	assert.Len(t, resp[0].Events, 1)
}

func TestCalendar_BadMonth(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/calendar?year=2026&month=13", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetGuestRSVP(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	guest := &domain.Guest{ID: id, Name: "Jordan Lee", RSVPStatus: domain.RSVPStatusConfirmed}
	m.guest.EXPECT().SetRSVP(mock.Anything, id, domain.RSVPStatusConfirmed).Return(guest, nil)

	w := doJSON(t, r, http.MethodPatch, "/api/guests/"+id+"/rsvp",
		dto.SetRSVPRequest{Status: "confirmed"})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.GuestResponse](t, w)
	assert.Equal(t, "confirmed", resp.RSVPStatus)
}

func TestBudgetSummary(t *testing.T) {
	m, r := setupRouter(t)

	summary := analytics.BudgetSummary{
		TotalAllocated: decimal.RequireFromString("8000"),
		TotalSpent:     decimal.RequireFromString("4000"),
		Remaining:      decimal.RequireFromString("4000"),
		Utilization:    50,
		ItemCount:      2,
	}
	m.budget.EXPECT().Summary(mock.Anything, "e1").Return(summary, nil)

	w := doJSON(t, r, http.MethodGet, "/api/budget-items/summary?event=e1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.BudgetSummaryResponse](t, w)
	assert.Equal(t, 2, resp.ItemCount)
}

func TestSetBudgetItemSpent(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	spent := decimal.RequireFromString("1200.50")
	item := &domain.BudgetItem{
		ID:              id,
		AllocatedAmount: decimal.RequireFromString("5000"),
		SpentAmount:     spent,
	}
	m.budget.EXPECT().SetSpentAmount(mock.Anything, id, spent).Return(item, nil)

	w := doJSON(t, r, http.MethodPatch, "/api/budget-items/"+id+"/spent",
		dto.SetSpentAmountRequest{SpentAmount: spent})

	require.Equal(t, http.StatusOK, w.Code)
}

func TestRateVendor(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	vendor := &domain.Vendor{ID: id, Name: "Maria Santos", Rating: 4.5, ReviewCount: 3}
	m.vendor.EXPECT().Rate(mock.Anything, id, 4.5).Return(vendor, nil)

	w := doJSON(t, r, http.MethodPost, "/api/vendors/"+id+"/ratings",
		dto.RateVendorRequest{Rating: 4.5})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.VendorResponse](t, w)
	assert.Equal(t, 4.5, resp.Rating)
	assert.Equal(t, 3, resp.ReviewCount)
}

func TestRateVendor_OutOfRange(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.vendor.EXPECT().Rate(mock.Anything, id, 5.5).Return(nil, domain.ErrValidation)

	w := doJSON(t, r, http.MethodPost, "/api/vendors/"+id+"/ratings",
		dto.RateVendorRequest{Rating: 5.5})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetVendorAvailability(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	vendor := &domain.Vendor{ID: id, Availability: domain.AvailabilityBusy}
	m.vendor.EXPECT().SetAvailability(mock.Anything, id, domain.AvailabilityBusy).Return(vendor, nil)

	w := doJSON(t, r, http.MethodPatch, "/api/vendors/"+id+"/availability",
		dto.SetAvailabilityRequest{Availability: "busy"})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.VendorResponse](t, w)
	assert.Equal(t, "busy", resp.Availability)
}

func TestListVendors_MinRating(t *testing.T) {
	m, r := setupRouter(t)

	m.vendor.EXPECT().List(mock.Anything, mock.MatchedBy(func(f filter.VendorFilter) bool {
		return f.Specialty == "catering" && f.MinRating == 4.0
	})).Return([]*domain.Vendor{{ID: "v1", Specialty: "catering", Rating: 4.8}}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/vendors?specialty=catering&min_rating=4.0", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[[]dto.VendorResponse](t, w)
	assert.Len(t, resp, 1)
}

func TestHealth(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
