// Package analytics derives aggregate financial metrics from in-memory
// payment and budget collections. All functions are pure; callers pass the
// reference time so results are reproducible. Sums use decimal arithmetic,
// never floats.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
)

// PaymentSummary aggregates a payment set for dashboard display.
type PaymentSummary struct {
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	TotalExpenses       decimal.Decimal `json:"total_expenses"`
	OutstandingPayments decimal.Decimal `json:"outstanding_payments"`
	OverdueCount        int             `json:"overdue_count"`
	NetProfit           decimal.Decimal `json:"net_profit"`
	PaymentCount        int             `json:"payment_count"`
}

// SummarizePayments computes revenue, expenses, outstanding and overdue
// figures over the given payments:
//
//   - revenue:     paid client payments, gross amount
//   - expenses:    paid vendor payments
//   - outstanding: payments not yet settled (pending, including overdue)
//   - overdue:     pending payments whose due date is strictly before now
func SummarizePayments(payments []*domain.Payment, now time.Time) PaymentSummary {
	s := PaymentSummary{
		TotalRevenue:        decimal.Zero,
		TotalExpenses:       decimal.Zero,
		OutstandingPayments: decimal.Zero,
		NetProfit:           decimal.Zero,
		PaymentCount:        len(payments),
	}

	for _, p := range payments {
		switch eff := p.EffectiveStatus(now); eff {
		case domain.PaymentStatusPaid:
			if p.Type == domain.PaymentTypeClient {
				s.TotalRevenue = s.TotalRevenue.Add(p.Amount)
			} else {
				s.TotalExpenses = s.TotalExpenses.Add(p.Amount)
			}
		case domain.PaymentStatusPending, domain.PaymentStatusOverdue:
			s.OutstandingPayments = s.OutstandingPayments.Add(p.Amount)
			if eff == domain.PaymentStatusOverdue {
				s.OverdueCount++
			}
		}
	}

	s.NetProfit = s.TotalRevenue.Sub(s.TotalExpenses)
	return s
}

// BudgetSummary aggregates the budget items of one event.
type BudgetSummary struct {
	TotalAllocated decimal.Decimal `json:"total_allocated"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	Remaining      decimal.Decimal `json:"remaining"`
	Utilization    float64         `json:"utilization"`
	ItemCount      int             `json:"item_count"`
}

// SummarizeBudget totals allocations and spending. Utilization is the spent
// percentage of the allocation; it may exceed 100 since over-budget items are
// a valid state.
func SummarizeBudget(items []*domain.BudgetItem) BudgetSummary {
	s := BudgetSummary{
		TotalAllocated: decimal.Zero,
		TotalSpent:     decimal.Zero,
		ItemCount:      len(items),
	}

	for _, item := range items {
		s.TotalAllocated = s.TotalAllocated.Add(item.AllocatedAmount)
		s.TotalSpent = s.TotalSpent.Add(item.SpentAmount)
	}

	s.Remaining = s.TotalAllocated.Sub(s.TotalSpent)
	if s.TotalAllocated.IsPositive() {
		s.Utilization = s.TotalSpent.
			Div(s.TotalAllocated).
			Mul(decimal.NewFromInt(100)).
			InexactFloat64()
	}
	return s
}
