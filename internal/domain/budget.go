package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetItem is one spending category of an event's budget. SpentAmount is
// allowed to exceed AllocatedAmount; over-budget is a valid, displayed state.
type BudgetItem struct {
	ID              string          `json:"id"`
	EventID         string          `json:"event_id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
	SpentAmount     decimal.Decimal `json:"spent_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type CreateBudgetItemInput struct {
	EventID         string
	Name            string
	Category        string
	AllocatedAmount decimal.Decimal
	SpentAmount     decimal.Decimal
}

type UpdateBudgetItemInput struct {
	ID              string
	EventID         string
	Name            string
	Category        string
	AllocatedAmount decimal.Decimal
	SpentAmount     decimal.Decimal
}
