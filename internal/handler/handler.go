package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"

	"github.com/apper-canvas/eventflow-ether-cell/internal/analytics"
	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
	"github.com/apper-canvas/eventflow-ether-cell/internal/filter"
	"github.com/apper-canvas/eventflow-ether-cell/internal/handler/dto"
)

type PaymentSvc interface {
	Create(ctx context.Context, input domain.CreatePaymentInput) (*domain.Payment, error)
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	List(ctx context.Context, f filter.PaymentFilter) ([]*domain.Payment, error)
	Update(ctx context.Context, input domain.UpdatePaymentInput) (*domain.Payment, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) (int, []string)
	SetStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Payment, error)
	Receive(ctx context.Context, id string, method domain.PaymentMethod) (*domain.ChargeResult, error)
	Pay(ctx context.Context, id string, method domain.PaymentMethod) (*domain.PayoutResult, error)
	Analytics(ctx context.Context, eventID string) (analytics.PaymentSummary, error)
}

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, search string) ([]*domain.Event, error)
	Update(ctx context.Context, input domain.UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
	Calendar(ctx context.Context, year int, month time.Month) ([]domain.CalendarDay, error)
}

type GuestSvc interface {
	Create(ctx context.Context, input domain.CreateGuestInput) (*domain.Guest, error)
	List(ctx context.Context, f filter.GuestFilter) ([]*domain.Guest, error)
	Update(ctx context.Context, input domain.UpdateGuestInput) (*domain.Guest, error)
	Delete(ctx context.Context, id string) error
	SetRSVP(ctx context.Context, id string, status domain.RSVPStatus) (*domain.Guest, error)
}

type BudgetSvc interface {
	Create(ctx context.Context, input domain.CreateBudgetItemInput) (*domain.BudgetItem, error)
	List(ctx context.Context, eventID string) ([]*domain.BudgetItem, error)
	Update(ctx context.Context, input domain.UpdateBudgetItemInput) (*domain.BudgetItem, error)
	Delete(ctx context.Context, id string) error
	SetSpentAmount(ctx context.Context, id string, amount decimal.Decimal) (*domain.BudgetItem, error)
	Summary(ctx context.Context, eventID string) (analytics.BudgetSummary, error)
}

type VendorSvc interface {
	Create(ctx context.Context, input domain.CreateVendorInput) (*domain.Vendor, error)
	GetByID(ctx context.Context, id string) (*domain.Vendor, error)
	List(ctx context.Context, f filter.VendorFilter) ([]*domain.Vendor, error)
	Update(ctx context.Context, input domain.UpdateVendorInput) (*domain.Vendor, error)
	Delete(ctx context.Context, id string) error
	Rate(ctx context.Context, id string, rating float64) (*domain.Vendor, error)
	SetAvailability(ctx context.Context, id string, availability domain.Availability) (*domain.Vendor, error)
}

type Handler struct {
	paymentService PaymentSvc
	eventService   EventSvc
	guestService   GuestSvc
	budgetService  BudgetSvc
	vendorService  VendorSvc
}

func NewHandler(
	paymentService PaymentSvc,
	eventService EventSvc,
	guestService GuestSvc,
	budgetService BudgetSvc,
	vendorService VendorSvc,
) *Handler {
	return &Handler{
		paymentService: paymentService,
		eventService:   eventService,
		guestService:   guestService,
		budgetService:  budgetService,
		vendorService:  vendorService,
	}
}

const dateLayout = "2006-01-02"

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrGuestNotFound),
		errors.Is(err, domain.ErrBudgetItemNotFound),
		errors.Is(err, domain.ErrVendorNotFound),
		errors.Is(err, domain.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPaymentNotPending),
		errors.Is(err, domain.ErrInvalidStatusChange):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrProcessingFailed):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
