package ports

import (
	"context"
	"time"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
)

type PaymentRepo interface {
	// Create persists a new payment. For client payments with no invoice
	// number the store synthesizes one from its own sequence.
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	// List returns payments ordered by creation time descending, optionally
	// restricted to one event.
	List(ctx context.Context, eventID string) ([]*domain.Payment, error)
	Update(ctx context.Context, p *domain.Payment) error
	Delete(ctx context.Context, id string) error
	// SetStatus writes a stored status. Transitioning into paid stamps
	// paid_date; transitioning away clears it; re-setting paid keeps the
	// original stamp.
	SetStatus(ctx context.Context, id string, status domain.PaymentStatus) error
	// MarkPaid atomically records a successful processing outcome on a
	// pending payment.
	MarkPaid(ctx context.Context, id string, receipt domain.PaymentReceipt) error
	// ListDue returns pending payments whose due date is strictly before
	// the given instant.
	ListDue(ctx context.Context, before time.Time) ([]*domain.Payment, error)
}
