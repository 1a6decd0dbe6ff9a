package ports

import (
	"context"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
)

type GuestRepo interface {
	Create(ctx context.Context, g *domain.Guest) error
	GetByID(ctx context.Context, id string) (*domain.Guest, error)
	List(ctx context.Context, eventID string) ([]*domain.Guest, error)
	Update(ctx context.Context, g *domain.Guest) error
	Delete(ctx context.Context, id string) error
	SetRSVP(ctx context.Context, id string, status domain.RSVPStatus) error
}
