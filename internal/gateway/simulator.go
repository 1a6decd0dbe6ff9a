// Package gateway models the external payment gateway. No real gateway is
// integrated; the simulator stands in with randomized outcomes so the rest of
// the system exercises the failure path. The outcome source and clock are
// injectable for deterministic tests.
package gateway

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
)

// creditCardFeeRate is the flat 2.9% fee charged on credit-card receipts.
// Other methods carry no fee.
var creditCardFeeRate = decimal.RequireFromString("0.029")

type Simulator struct {
	chargeSuccessRate float64
	payoutSuccessRate float64
	chargeLatency     time.Duration
	payoutLatency     time.Duration
	outcome           func() float64
	now               func() time.Time
}

type Option func(*Simulator)

// WithOutcome replaces the randomness source. The returned value is compared
// against the success rate: values below it succeed.
func WithOutcome(f func() float64) Option {
	return func(s *Simulator) { s.outcome = f }
}

func WithClock(now func() time.Time) Option {
	return func(s *Simulator) { s.now = now }
}

func WithLatency(charge, payout time.Duration) Option {
	return func(s *Simulator) {
		s.chargeLatency = charge
		s.payoutLatency = payout
	}
}

// NewSimulator builds a simulator succeeding with the given probabilities
// (0.90 for client receipts and 0.95 for vendor payouts in production).
func NewSimulator(chargeSuccessRate, payoutSuccessRate float64, opts ...Option) *Simulator {
	s := &Simulator{
		chargeSuccessRate: chargeSuccessRate,
		payoutSuccessRate: payoutSuccessRate,
		chargeLatency:     2 * time.Second,
		payoutLatency:     1500 * time.Millisecond,
		outcome:           rand.Float64,
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Charge simulates receiving a client payment. Credit-card receipts incur the
// processing fee; the net amount is the gross minus that fee. The artificial
// latency is not cancellable: once issued, the call runs to completion.
func (s *Simulator) Charge(_ context.Context, p *domain.Payment, method domain.PaymentMethod) (*domain.ChargeResult, error) {
	time.Sleep(s.chargeLatency)

	if s.outcome() >= s.chargeSuccessRate {
		return nil, fmt.Errorf("%w: please try again", domain.ErrProcessingFailed)
	}

	fee := decimal.Zero
	if method == domain.PaymentMethodCreditCard {
		fee = p.Amount.Mul(creditCardFeeRate).Round(2)
	}

	return &domain.ChargeResult{
		TransactionID: fmt.Sprintf("TXN-%d", s.now().UnixMilli()),
		ProcessingFee: fee,
		NetAmount:     p.Amount.Sub(fee),
	}, nil
}

// Payout simulates paying a vendor.
func (s *Simulator) Payout(_ context.Context, _ *domain.Payment, _ domain.PaymentMethod) (*domain.PayoutResult, error) {
	time.Sleep(s.payoutLatency)

	if s.outcome() >= s.payoutSuccessRate {
		return nil, fmt.Errorf("%w: please try again", domain.ErrProcessingFailed)
	}

	ms := s.now().UnixMilli()
	return &domain.PayoutResult{
		TransactionID:      fmt.Sprintf("VTX-%d", ms),
		ConfirmationNumber: fmt.Sprintf("CNF-%d", ms),
	}, nil
}
