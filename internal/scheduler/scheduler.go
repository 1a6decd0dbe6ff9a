package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
)

type overdueSweeper interface {
	NotifyOverdue(ctx context.Context) ([]*domain.Payment, error)
}

type Scheduler struct {
	paymentService overdueSweeper
	interval       time.Duration
	logger         logger.Logger
}

func New(
	paymentService overdueSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		paymentService: paymentService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	overdue, err := s.paymentService.NotifyOverdue(ctx)
	if err != nil {
		s.logger.Error("failed to sweep overdue payments",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, p := range overdue {
		s.logger.Info("payment overdue",
			logger.String("payment_id", p.ID),
			logger.String("event_id", p.EventID),
			logger.String("counterparty", p.Counterparty()),
		)
	}
}
