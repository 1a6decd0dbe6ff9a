package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
	"github.com/apper-canvas/eventflow-ether-cell/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_SweepsOverdue(t *testing.T) {
	sweeper := mocks.NewMockOverdueSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, 50*time.Millisecond, log)

	overdue := []*domain.Payment{
		{ID: "p1", EventID: "e1", Type: domain.PaymentTypeClient, ClientName: "Acme Corp"},
	}
	sweeper.EXPECT().NotifyOverdue(mock.Anything).Return(overdue, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweeper.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	sweeper := mocks.NewMockOverdueSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, 50*time.Millisecond, log)

	sweeper.EXPECT().NotifyOverdue(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweeper.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	sweeper := mocks.NewMockOverdueSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	sweeper := mocks.NewMockOverdueSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, 30*time.Millisecond, log)

	sweeper.EXPECT().NotifyOverdue(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(sweeper.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
