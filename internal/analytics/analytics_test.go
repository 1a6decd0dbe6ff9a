package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func payment(typ domain.PaymentType, status domain.PaymentStatus, amount string, due time.Time) *domain.Payment {
	return &domain.Payment{
		ID:      "p-" + amount,
		Type:    typ,
		Status:  status,
		Amount:  dec(amount),
		DueDate: due,
	}
}

func TestSummarizePayments(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -10)
	future := now.AddDate(0, 0, 10)

	payments := []*domain.Payment{
		payment(domain.PaymentTypeClient, domain.PaymentStatusPaid, "5000.00", past),
		payment(domain.PaymentTypeClient, domain.PaymentStatusPaid, "2500.50", past),
		payment(domain.PaymentTypeVendor, domain.PaymentStatusPaid, "1200.00", past),
		payment(domain.PaymentTypeClient, domain.PaymentStatusPending, "800.00", future),
		payment(domain.PaymentTypeVendor, domain.PaymentStatusPending, "300.00", past), // overdue
		payment(domain.PaymentTypeClient, domain.PaymentStatusRefunded, "999.00", past),
	}

	s := SummarizePayments(payments, now)

	assert.True(t, s.TotalRevenue.Equal(dec("7500.50")), "revenue: %s", s.TotalRevenue)
	assert.True(t, s.TotalExpenses.Equal(dec("1200.00")), "expenses: %s", s.TotalExpenses)
	assert.True(t, s.OutstandingPayments.Equal(dec("1100.00")), "outstanding: %s", s.OutstandingPayments)
	assert.True(t, s.NetProfit.Equal(dec("6300.50")), "net profit: %s", s.NetProfit)
	assert.Equal(t, 1, s.OverdueCount)
	assert.Equal(t, 6, s.PaymentCount)
}

func TestSummarizePayments_NetProfitIdentity(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	payments := []*domain.Payment{
		payment(domain.PaymentTypeClient, domain.PaymentStatusPaid, "1000.00", now),
		payment(domain.PaymentTypeVendor, domain.PaymentStatusPaid, "450.25", now),
		payment(domain.PaymentTypeVendor, domain.PaymentStatusPaid, "49.75", now),
	}

	s := SummarizePayments(payments, now)

	assert.True(t, s.NetProfit.Equal(s.TotalRevenue.Sub(s.TotalExpenses)))
}

func TestSummarizePayments_RevenueIsGross(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	// Paid by credit card: fee recorded, but revenue counts the gross amount.
	p := payment(domain.PaymentTypeClient, domain.PaymentStatusPaid, "1000.00", now)
	p.ProcessingFee = dec("29.00")
	p.NetAmount = dec("971.00")

	s := SummarizePayments([]*domain.Payment{p}, now)

	assert.True(t, s.TotalRevenue.Equal(dec("1000.00")), "revenue: %s", s.TotalRevenue)
}

func TestSummarizePayments_RefundedExcludedEverywhere(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	payments := []*domain.Payment{
		payment(domain.PaymentTypeClient, domain.PaymentStatusRefunded, "100.00", now.AddDate(0, 0, -1)),
	}

	s := SummarizePayments(payments, now)

	assert.True(t, s.TotalRevenue.IsZero())
	assert.True(t, s.OutstandingPayments.IsZero())
	assert.Equal(t, 0, s.OverdueCount)
	assert.Equal(t, 1, s.PaymentCount)
}

func TestSummarizePayments_OverdueIsDerivedNotStored(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	p := payment(domain.PaymentTypeClient, domain.PaymentStatusPending, "500.00", now.AddDate(0, 0, -3))

	s := SummarizePayments([]*domain.Payment{p}, now)

	assert.Equal(t, 1, s.OverdueCount)
	// The stored status stays pending.
	assert.Equal(t, domain.PaymentStatusPending, p.Status)

	// With a reference time before the due date the same payment is on time.
	earlier := SummarizePayments([]*domain.Payment{p}, now.AddDate(0, 0, -5))
	assert.Equal(t, 0, earlier.OverdueCount)
}

func TestSummarizePayments_Empty(t *testing.T) {
	s := SummarizePayments(nil, time.Now())

	assert.True(t, s.TotalRevenue.IsZero())
	assert.True(t, s.TotalExpenses.IsZero())
	assert.True(t, s.OutstandingPayments.IsZero())
	assert.True(t, s.NetProfit.IsZero())
	assert.Equal(t, 0, s.OverdueCount)
	assert.Equal(t, 0, s.PaymentCount)
}

func TestSummarizeBudget(t *testing.T) {
	items := []*domain.BudgetItem{
		{AllocatedAmount: dec("1000.00"), SpentAmount: dec("250.00")},
		{AllocatedAmount: dec("500.00"), SpentAmount: dec("500.00")},
	}

	s := SummarizeBudget(items)

	assert.True(t, s.TotalAllocated.Equal(dec("1500.00")))
	assert.True(t, s.TotalSpent.Equal(dec("750.00")))
	assert.True(t, s.Remaining.Equal(dec("750.00")))
	assert.InDelta(t, 50.0, s.Utilization, 0.0001)
	assert.Equal(t, 2, s.ItemCount)
}

func TestSummarizeBudget_OverBudget(t *testing.T) {
	items := []*domain.BudgetItem{
		{AllocatedAmount: dec("100.00"), SpentAmount: dec("150.00")},
	}

	s := SummarizeBudget(items)

	assert.True(t, s.Remaining.Equal(dec("-50.00")))
	assert.InDelta(t, 150.0, s.Utilization, 0.0001)
}

func TestSummarizeBudget_ZeroAllocation(t *testing.T) {
	items := []*domain.BudgetItem{
		{AllocatedAmount: decimal.Zero, SpentAmount: dec("10.00")},
	}

	s := SummarizeBudget(items)

	assert.Equal(t, 0.0, s.Utilization)
}
