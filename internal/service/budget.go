package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/apper-canvas/eventflow-ether-cell/internal/analytics"
	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
	"github.com/apper-canvas/eventflow-ether-cell/internal/service/ports"
)

type BudgetService struct {
	repo ports.BudgetRepo
}

func NewBudgetService(repo ports.BudgetRepo) *BudgetService {
	return &BudgetService{repo: repo}
}

func (s *BudgetService) Create(ctx context.Context, input domain.CreateBudgetItemInput) (*domain.BudgetItem, error) {
	if input.EventID == "" {
		return nil, fmt.Errorf("%w: event is required", domain.ErrValidation)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Category == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrValidation)
	}
	if input.AllocatedAmount.IsNegative() || input.SpentAmount.IsNegative() {
		return nil, fmt.Errorf("%w: amounts must not be negative", domain.ErrValidation)
	}

	item := &domain.BudgetItem{
		ID:              uuid.New().String(),
		EventID:         input.EventID,
		Name:            input.Name,
		Category:        input.Category,
		AllocatedAmount: input.AllocatedAmount,
		SpentAmount:     input.SpentAmount,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create budget item: %w", err)
	}

	return item, nil
}

func (s *BudgetService) List(ctx context.Context, eventID string) ([]*domain.BudgetItem, error) {
	return s.repo.List(ctx, eventID)
}

func (s *BudgetService) Update(ctx context.Context, input domain.UpdateBudgetItemInput) (*domain.BudgetItem, error) {
	if input.ID == "" {
		return nil, fmt.Errorf("%w: id is required", domain.ErrValidation)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Category == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrValidation)
	}
	if input.AllocatedAmount.IsNegative() || input.SpentAmount.IsNegative() {
		return nil, fmt.Errorf("%w: amounts must not be negative", domain.ErrValidation)
	}

	item := &domain.BudgetItem{
		ID:              input.ID,
		EventID:         input.EventID,
		Name:            input.Name,
		Category:        input.Category,
		AllocatedAmount: input.AllocatedAmount,
		SpentAmount:     input.SpentAmount,
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update budget item: %w", err)
	}

	return s.repo.GetByID(ctx, input.ID)
}

func (s *BudgetService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// SetSpentAmount overwrites an item's spending. Exceeding the allocation is
// allowed; over-budget is a displayed state, not an error.
func (s *BudgetService) SetSpentAmount(ctx context.Context, id string, amount decimal.Decimal) (*domain.BudgetItem, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: spent_amount must not be negative", domain.ErrValidation)
	}

	if err := s.repo.SetSpentAmount(ctx, id, amount); err != nil {
		return nil, fmt.Errorf("set spent amount: %w", err)
	}

	return s.repo.GetByID(ctx, id)
}

func (s *BudgetService) Summary(ctx context.Context, eventID string) (analytics.BudgetSummary, error) {
	items, err := s.repo.List(ctx, eventID)
	if err != nil {
		return analytics.BudgetSummary{}, fmt.Errorf("list budget items: %w", err)
	}
	return analytics.SummarizeBudget(items), nil
}
