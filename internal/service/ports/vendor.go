package ports

import (
	"context"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
)

type VendorRepo interface {
	Create(ctx context.Context, v *domain.Vendor) error
	GetByID(ctx context.Context, id string) (*domain.Vendor, error)
	// List returns vendors ordered by rating descending.
	List(ctx context.Context) ([]*domain.Vendor, error)
	Update(ctx context.Context, v *domain.Vendor) error
	Delete(ctx context.Context, id string) error
	SetRating(ctx context.Context, id string, rating float64, reviewCount int) error
	SetAvailability(ctx context.Context, id string, availability domain.Availability) error
}
