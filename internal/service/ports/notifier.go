package ports

import (
	"context"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
)

type PaymentNotifier interface {
	NotifyPaymentReceived(ctx context.Context, p *domain.Payment)
	NotifyVendorPaid(ctx context.Context, p *domain.Payment)
	NotifyPaymentOverdue(ctx context.Context, p *domain.Payment)
}
