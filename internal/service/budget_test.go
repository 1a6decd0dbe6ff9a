package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
	"github.com/apper-canvas/eventflow-ether-cell/internal/service/ports/mocks"
)

func budgetInput() domain.CreateBudgetItemInput {
	return domain.CreateBudgetItemInput{
		EventID:         "e1",
		Name:            "Catering",
		Category:        "food",
		AllocatedAmount: decimal.RequireFromString("5000"),
	}
}

func TestBudgetService_Create(t *testing.T) {
	repo := mocks.NewMockBudgetRepo(t)
	svc := NewBudgetService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	item, err := svc.Create(context.Background(), budgetInput())

	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.True(t, item.SpentAmount.IsZero())
}

func TestBudgetService_Create_Validation(t *testing.T) {
	svc := NewBudgetService(mocks.NewMockBudgetRepo(t))
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*domain.CreateBudgetItemInput)
	}{
		{"missing event", func(i *domain.CreateBudgetItemInput) { i.EventID = "" }},
		{"missing name", func(i *domain.CreateBudgetItemInput) { i.Name = "" }},
		{"missing category", func(i *domain.CreateBudgetItemInput) { i.Category = "" }},
		{"negative allocation", func(i *domain.CreateBudgetItemInput) { i.AllocatedAmount = decimal.RequireFromString("-1") }},
		{"negative spent", func(i *domain.CreateBudgetItemInput) { i.SpentAmount = decimal.RequireFromString("-1") }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := budgetInput()
			tc.mutate(&input)

			_, err := svc.Create(ctx, input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBudgetService_SetSpentAmount(t *testing.T) {
	repo := mocks.NewMockBudgetRepo(t)
	svc := NewBudgetService(repo)

	spent := decimal.RequireFromString("1200.50")
	repo.EXPECT().SetSpentAmount(mock.Anything, "b1", spent).Return(nil)
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.BudgetItem{
		ID:              "b1",
		AllocatedAmount: decimal.RequireFromString("5000"),
		SpentAmount:     spent,
	}, nil)

	item, err := svc.SetSpentAmount(context.Background(), "b1", spent)

	require.NoError(t, err)
	assert.True(t, item.SpentAmount.Equal(spent))
}

func TestBudgetService_SetSpentAmount_OverBudgetAllowed(t *testing.T) {
	repo := mocks.NewMockBudgetRepo(t)
	svc := NewBudgetService(repo)

	spent := decimal.RequireFromString("6000")
	repo.EXPECT().SetSpentAmount(mock.Anything, "b1", spent).Return(nil)
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.BudgetItem{
		ID:              "b1",
		AllocatedAmount: decimal.RequireFromString("5000"),
		SpentAmount:     spent,
	}, nil)

	item, err := svc.SetSpentAmount(context.Background(), "b1", spent)

	require.NoError(t, err)
	assert.True(t, item.SpentAmount.GreaterThan(item.AllocatedAmount))
}

func TestBudgetService_SetSpentAmount_Negative(t *testing.T) {
	svc := NewBudgetService(mocks.NewMockBudgetRepo(t))

	_, err := svc.SetSpentAmount(context.Background(), "b1", decimal.RequireFromString("-10"))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBudgetService_Summary(t *testing.T) {
	repo := mocks.NewMockBudgetRepo(t)
	svc := NewBudgetService(repo)

	items := []*domain.BudgetItem{
		{ID: "b1", AllocatedAmount: decimal.RequireFromString("5000"), SpentAmount: decimal.RequireFromString("2000")},
		{ID: "b2", AllocatedAmount: decimal.RequireFromString("3000"), SpentAmount: decimal.RequireFromString("2000")},
	}
	repo.EXPECT().List(mock.Anything, "e1").Return(items, nil)

	summary, err := svc.Summary(context.Background(), "e1")

	require.NoError(t, err)
	assert.True(t, summary.TotalAllocated.Equal(decimal.RequireFromString("8000")))
	assert.True(t, summary.TotalSpent.Equal(decimal.RequireFromString("4000")))
	assert.True(t, summary.Remaining.Equal(decimal.RequireFromString("4000")))
	assert.Equal(t, 2, summary.ItemCount)
}

func TestBudgetService_Delete_NotFound(t *testing.T) {
	repo := mocks.NewMockBudgetRepo(t)
	svc := NewBudgetService(repo)

	repo.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrBudgetItemNotFound)

	err := svc.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrBudgetItemNotFound)
}
