package ports

import (
	"context"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
)

// PaymentGateway is the external gateway boundary. The shipped implementation
// is a simulator; a real adapter would slot in here.
type PaymentGateway interface {
	// Charge receives a client payment. A failure means no money moved.
	Charge(ctx context.Context, p *domain.Payment, method domain.PaymentMethod) (*domain.ChargeResult, error)
	// Payout pays a vendor. A failure means no money moved.
	Payout(ctx context.Context, p *domain.Payment, method domain.PaymentMethod) (*domain.PayoutResult, error)
}
