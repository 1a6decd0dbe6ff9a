// Package memory provides an in-memory payment store. It persists the same
// record shape as the PostgreSQL repository and backs service tests and demo
// setups where no database is available.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
	"github.com/apper-canvas/eventflow-ether-cell/internal/repository"
	"github.com/apper-canvas/eventflow-ether-cell/internal/service/ports"
)

// Ensure PaymentStore implements the repository port.
var _ ports.PaymentRepo = (*PaymentStore)(nil)

type PaymentStore struct {
	mu      sync.RWMutex
	records []repository.PaymentRecord
	now     func() time.Time
}

type Option func(*PaymentStore)

// WithClock pins the store's notion of now, so invoice years and paid dates
// are deterministic in tests.
func WithClock(now func() time.Time) Option {
	return func(s *PaymentStore) { s.now = now }
}

func NewPaymentStore(opts ...Option) *PaymentStore {
	s := &PaymentStore{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *PaymentStore) Create(_ context.Context, p *domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Type == domain.PaymentTypeClient && p.InvoiceNumber == "" {
		count := 0
		for _, rec := range s.records {
			if rec.Type == string(domain.PaymentTypeClient) {
				count++
			}
		}
		p.InvoiceNumber = fmt.Sprintf("INV-%d-%04d", s.now().UTC().Year(), count+1)
	}

	now := s.now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	s.records = append(s.records, repository.PaymentToRecord(p))
	return nil
}

func (s *PaymentStore) GetByID(_ context.Context, id string) (*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.ID == id {
			return repository.PaymentFromRecord(rec), nil
		}
	}
	return nil, domain.ErrPaymentNotFound
}

// List returns payments newest first, optionally restricted to one event.
func (s *PaymentStore) List(_ context.Context, eventID string) ([]*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*domain.Payment, 0, len(s.records))
	for i := len(s.records) - 1; i >= 0; i-- {
		rec := s.records[i]
		if eventID != "" && rec.Event != eventID {
			continue
		}
		res = append(res, repository.PaymentFromRecord(rec))
	}
	return res, nil
}

func (s *PaymentStore) Update(_ context.Context, p *domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.records {
		if rec.ID != p.ID {
			continue
		}
		cur := repository.PaymentFromRecord(rec)
		cur.EventID = p.EventID
		cur.Type = p.Type
		cur.Amount = p.Amount
		cur.Description = p.Description
		cur.DueDate = p.DueDate
		cur.PaymentMethod = p.PaymentMethod
		cur.ClientName = p.ClientName
		cur.VendorName = p.VendorName
		cur.UpdatedAt = s.now().UTC()
		s.records[i] = repository.PaymentToRecord(cur)
		return nil
	}
	return domain.ErrPaymentNotFound
}

func (s *PaymentStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.records {
		if rec.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return domain.ErrPaymentNotFound
}

func (s *PaymentStore) SetStatus(_ context.Context, id string, status domain.PaymentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.records {
		if rec.ID != id {
			continue
		}
		cur := repository.PaymentFromRecord(rec)
		switch {
		case status == domain.PaymentStatusPaid && cur.Status != domain.PaymentStatusPaid:
			paid := s.now().UTC()
			cur.PaidDate = &paid
		case status != domain.PaymentStatusPaid:
			cur.PaidDate = nil
		}
		cur.Status = status
		cur.UpdatedAt = s.now().UTC()
		s.records[i] = repository.PaymentToRecord(cur)
		return nil
	}
	return domain.ErrPaymentNotFound
}

func (s *PaymentStore) MarkPaid(_ context.Context, id string, receipt domain.PaymentReceipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.records {
		if rec.ID != id {
			continue
		}
		cur := repository.PaymentFromRecord(rec)
		if cur.Status != domain.PaymentStatusPending {
			return domain.ErrPaymentNotPending
		}
		paid := s.now().UTC()
		cur.Status = domain.PaymentStatusPaid
		cur.PaidDate = &paid
		cur.PaymentMethod = receipt.Method
		cur.TransactionID = receipt.TransactionID
		cur.ProcessingFee = receipt.ProcessingFee
		cur.NetAmount = receipt.NetAmount
		cur.ConfirmationNumber = receipt.ConfirmationNumber
		cur.UpdatedAt = paid
		s.records[i] = repository.PaymentToRecord(cur)
		return nil
	}
	return domain.ErrPaymentNotFound
}

func (s *PaymentStore) ListDue(_ context.Context, before time.Time) ([]*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []*domain.Payment
	for _, rec := range s.records {
		p := repository.PaymentFromRecord(rec)
		if p.Status == domain.PaymentStatusPending && p.DueDate.Before(before) {
			res = append(res, p)
		}
	}
	return res, nil
}
