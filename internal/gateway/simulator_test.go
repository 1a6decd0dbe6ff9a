package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
)

func newTestSimulator(outcome float64) *Simulator {
	return NewSimulator(0.90, 0.95,
		WithOutcome(func() float64 { return outcome }),
		WithClock(func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }),
		WithLatency(0, 0),
	)
}

func TestSimulator_Charge_CreditCardFee(t *testing.T) {
	s := newTestSimulator(0.0) // always succeeds

	p := &domain.Payment{Amount: decimal.RequireFromString("1000.00")}

	res, err := s.Charge(context.Background(), p, domain.PaymentMethodCreditCard)

	require.NoError(t, err)
	assert.True(t, res.ProcessingFee.Equal(decimal.RequireFromString("29.00")), "fee: %s", res.ProcessingFee)
	assert.True(t, res.NetAmount.Equal(decimal.RequireFromString("971.00")), "net: %s", res.NetAmount)
	assert.Regexp(t, `^TXN-\d+$`, res.TransactionID)
}

func TestSimulator_Charge_NoFeeForOtherMethods(t *testing.T) {
	s := newTestSimulator(0.0)

	p := &domain.Payment{Amount: decimal.RequireFromString("1000.00")}

	for _, method := range []domain.PaymentMethod{
		domain.PaymentMethodBankTransfer,
		domain.PaymentMethodCash,
		domain.PaymentMethodCheck,
		domain.PaymentMethodOnlinePayment,
		domain.PaymentMethodPayPal,
	} {
		res, err := s.Charge(context.Background(), p, method)

		require.NoError(t, err)
		assert.True(t, res.ProcessingFee.IsZero(), "method %s: fee %s", method, res.ProcessingFee)
		assert.True(t, res.NetAmount.Equal(p.Amount), "method %s: net %s", method, res.NetAmount)
	}
}

func TestSimulator_Charge_FeeRounding(t *testing.T) {
	s := newTestSimulator(0.0)

	// 2.9% of 333.33 is 9.66657, rounded to 9.67.
	p := &domain.Payment{Amount: decimal.RequireFromString("333.33")}

	res, err := s.Charge(context.Background(), p, domain.PaymentMethodCreditCard)

	require.NoError(t, err)
	assert.True(t, res.ProcessingFee.Equal(decimal.RequireFromString("9.67")), "fee: %s", res.ProcessingFee)
	assert.True(t, res.NetAmount.Equal(decimal.RequireFromString("323.66")), "net: %s", res.NetAmount)
}

func TestSimulator_Charge_Failure(t *testing.T) {
	s := newTestSimulator(0.95) // above the 0.90 charge success rate

	p := &domain.Payment{Amount: decimal.RequireFromString("100.00")}

	res, err := s.Charge(context.Background(), p, domain.PaymentMethodCash)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrProcessingFailed)
}

func TestSimulator_Payout_Success(t *testing.T) {
	s := newTestSimulator(0.0)

	p := &domain.Payment{Amount: decimal.RequireFromString("750.00")}

	res, err := s.Payout(context.Background(), p, domain.PaymentMethodBankTransfer)

	require.NoError(t, err)
	assert.Regexp(t, `^VTX-\d+$`, res.TransactionID)
	assert.Regexp(t, `^CNF-\d+$`, res.ConfirmationNumber)
}

func TestSimulator_Payout_Failure(t *testing.T) {
	// 0.92 fails the 0.90 charge rate but passes the 0.95 payout rate.
	s := newTestSimulator(0.92)

	p := &domain.Payment{Amount: decimal.RequireFromString("750.00")}

	res, err := s.Payout(context.Background(), p, domain.PaymentMethodBankTransfer)
	require.NoError(t, err)
	assert.NotNil(t, res)

	_, err = s.Charge(context.Background(), p, domain.PaymentMethodCash)
	assert.ErrorIs(t, err, domain.ErrProcessingFailed)
}
