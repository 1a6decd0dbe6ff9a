package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
	"github.com/apper-canvas/eventflow-ether-cell/internal/filter"
	"github.com/apper-canvas/eventflow-ether-cell/internal/service/ports"
)

type GuestService struct {
	repo ports.GuestRepo
}

func NewGuestService(repo ports.GuestRepo) *GuestService {
	return &GuestService{repo: repo}
}

func (s *GuestService) Create(ctx context.Context, input domain.CreateGuestInput) (*domain.Guest, error) {
	if input.EventID == "" {
		return nil, fmt.Errorf("%w: event is required", domain.ErrValidation)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	guest := &domain.Guest{
		ID:         uuid.New().String(),
		EventID:    input.EventID,
		Name:       input.Name,
		Email:      input.Email,
		RSVPStatus: domain.RSVPStatusPending,
	}

	if err := s.repo.Create(ctx, guest); err != nil {
		return nil, fmt.Errorf("create guest: %w", err)
	}

	return guest, nil
}

func (s *GuestService) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *GuestService) List(ctx context.Context, f filter.GuestFilter) ([]*domain.Guest, error) {
	guests, err := s.repo.List(ctx, f.EventID)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	return filter.Guests(guests, f), nil
}

func (s *GuestService) Update(ctx context.Context, input domain.UpdateGuestInput) (*domain.Guest, error) {
	if input.ID == "" {
		return nil, fmt.Errorf("%w: id is required", domain.ErrValidation)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	guest := &domain.Guest{
		ID:      input.ID,
		EventID: input.EventID,
		Name:    input.Name,
		Email:   input.Email,
	}
	if err := s.repo.Update(ctx, guest); err != nil {
		return nil, fmt.Errorf("update guest: %w", err)
	}

	return s.repo.GetByID(ctx, input.ID)
}

func (s *GuestService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *GuestService) SetRSVP(ctx context.Context, id string, status domain.RSVPStatus) (*domain.Guest, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown rsvp status %q", domain.ErrValidation, status)
	}

	if err := s.repo.SetRSVP(ctx, id, status); err != nil {
		return nil, fmt.Errorf("set rsvp: %w", err)
	}

	return s.repo.GetByID(ctx, id)
}
