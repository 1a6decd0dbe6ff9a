package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
)

type BudgetRepo interface {
	Create(ctx context.Context, item *domain.BudgetItem) error
	GetByID(ctx context.Context, id string) (*domain.BudgetItem, error)
	List(ctx context.Context, eventID string) ([]*domain.BudgetItem, error)
	Update(ctx context.Context, item *domain.BudgetItem) error
	Delete(ctx context.Context, id string) error
	SetSpentAmount(ctx context.Context, id string, amount decimal.Decimal) error
}
