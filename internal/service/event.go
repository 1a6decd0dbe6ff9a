package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
	"github.com/apper-canvas/eventflow-ether-cell/internal/service/ports"
)

type EventService struct {
	repo        ports.EventRepo
	paymentRepo ports.PaymentRepo
}

func NewEventService(repo ports.EventRepo, paymentRepo ports.PaymentRepo) *EventService {
	return &EventService{
		repo:        repo,
		paymentRepo: paymentRepo,
	}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if input.Budget.IsNegative() {
		return nil, fmt.Errorf("%w: budget must not be negative", domain.ErrValidation)
	}
	if input.GuestCount < 0 {
		return nil, fmt.Errorf("%w: guest_count must not be negative", domain.ErrValidation)
	}
	if input.Status == "" {
		input.Status = domain.EventStatusPlanning
	}
	if !input.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown event status %q", domain.ErrValidation, input.Status)
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Date:        input.Date,
		Venue:       input.Venue,
		Status:      input.Status,
		Budget:      input.Budget,
		GuestCount:  input.GuestCount,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all events, optionally narrowed by a case-insensitive
// substring search over name, description and venue.
func (s *EventService) List(ctx context.Context, search string) ([]*domain.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if search == "" {
		return events, nil
	}

	needle := strings.ToLower(search)
	res := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Name), needle) ||
			strings.Contains(strings.ToLower(e.Description), needle) ||
			strings.Contains(strings.ToLower(e.Venue), needle) {
			res = append(res, e)
		}
	}
	return res, nil
}

func (s *EventService) Update(ctx context.Context, input domain.UpdateEventInput) (*domain.Event, error) {
	if input.ID == "" {
		return nil, fmt.Errorf("%w: id is required", domain.ErrValidation)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Budget.IsNegative() {
		return nil, fmt.Errorf("%w: budget must not be negative", domain.ErrValidation)
	}
	if input.GuestCount < 0 {
		return nil, fmt.Errorf("%w: guest_count must not be negative", domain.ErrValidation)
	}
	if !input.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown event status %q", domain.ErrValidation, input.Status)
	}

	event := &domain.Event{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		Date:        input.Date,
		Venue:       input.Venue,
		Status:      input.Status,
		Budget:      input.Budget,
		GuestCount:  input.GuestCount,
	}
	if err := s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return s.repo.GetByID(ctx, input.ID)
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Calendar buckets the given month's events and payment due dates by day.
// Days with nothing scheduled are omitted.
func (s *EventService) Calendar(ctx context.Context, year int, month time.Month) ([]domain.CalendarDay, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	payments, err := s.paymentRepo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	days := make(map[int]*domain.CalendarDay)
	day := func(d int) *domain.CalendarDay {
		if _, ok := days[d]; !ok {
			days[d] = &domain.CalendarDay{
				Date: time.Date(year, month, d, 0, 0, 0, 0, time.UTC),
			}
		}
		return days[d]
	}

	for _, e := range events {
		if e.Date.Year() == year && e.Date.Month() == month {
			cd := day(e.Date.Day())
			cd.Events = append(cd.Events, e)
		}
	}
	for _, p := range payments {
		if p.DueDate.Year() == year && p.DueDate.Month() == month {
			cd := day(p.DueDate.Day())
			cd.PaymentsDue = append(cd.PaymentsDue, p)
		}
	}

	res := make([]domain.CalendarDay, 0, len(days))
	for _, cd := range days {
		res = append(res, *cd)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Date.Before(res[j].Date) })

	return res, nil
}
