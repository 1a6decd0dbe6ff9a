package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
	"github.com/apper-canvas/eventflow-ether-cell/internal/filter"
	"github.com/apper-canvas/eventflow-ether-cell/internal/service/ports"
)

type VendorService struct {
	repo   ports.VendorRepo
	logger logger.Logger
}

func NewVendorService(repo ports.VendorRepo, log logger.Logger) *VendorService {
	return &VendorService{repo: repo, logger: log}
}

func (s *VendorService) Create(ctx context.Context, input domain.CreateVendorInput) (*domain.Vendor, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Company == "" {
		return nil, fmt.Errorf("%w: company is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if input.Specialty == "" {
		return nil, fmt.Errorf("%w: specialty is required", domain.ErrValidation)
	}

	priceRange := input.PriceRange
	if priceRange == "" {
		priceRange = domain.PriceRangeBudget
	}
	if !priceRange.Valid() {
		return nil, fmt.Errorf("%w: unknown price range %q", domain.ErrValidation, priceRange)
	}

	availability := input.Availability
	if availability == "" {
		availability = domain.AvailabilityAvailable
	}
	if !availability.Valid() {
		return nil, fmt.Errorf("%w: unknown availability %q", domain.ErrValidation, availability)
	}

	vendor := &domain.Vendor{
		ID:              uuid.New().String(),
		Name:            input.Name,
		Company:         input.Company,
		Email:           input.Email,
		Phone:           input.Phone,
		Specialty:       input.Specialty,
		Location:        input.Location,
		Description:     input.Description,
		Website:         input.Website,
		PriceRange:      priceRange,
		Availability:    availability,
		PortfolioImages: input.PortfolioImages,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, vendor); err != nil {
		return nil, fmt.Errorf("create vendor: %w", err)
	}

	s.logger.Info("vendor created",
		logger.String("vendor_id", vendor.ID),
		logger.String("specialty", vendor.Specialty),
	)

	return vendor, nil
}

func (s *VendorService) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VendorService) List(ctx context.Context, f filter.VendorFilter) ([]*domain.Vendor, error) {
	vendors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	return filter.Vendors(vendors, f), nil
}

func (s *VendorService) Update(ctx context.Context, input domain.UpdateVendorInput) (*domain.Vendor, error) {
	if input.ID == "" {
		return nil, fmt.Errorf("%w: id is required", domain.ErrValidation)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.PriceRange != "" && !input.PriceRange.Valid() {
		return nil, fmt.Errorf("%w: unknown price range %q", domain.ErrValidation, input.PriceRange)
	}
	if input.Availability != "" && !input.Availability.Valid() {
		return nil, fmt.Errorf("%w: unknown availability %q", domain.ErrValidation, input.Availability)
	}

	vendor := &domain.Vendor{
		ID:              input.ID,
		Name:            input.Name,
		Company:         input.Company,
		Email:           input.Email,
		Phone:           input.Phone,
		Specialty:       input.Specialty,
		Location:        input.Location,
		Description:     input.Description,
		Website:         input.Website,
		PriceRange:      input.PriceRange,
		Availability:    input.Availability,
		PortfolioImages: input.PortfolioImages,
	}
	if err := s.repo.Update(ctx, vendor); err != nil {
		return nil, fmt.Errorf("update vendor: %w", err)
	}

	return s.repo.GetByID(ctx, input.ID)
}

func (s *VendorService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Rate folds a new review score into the vendor's running average.
func (s *VendorService) Rate(ctx context.Context, id string, rating float64) (*domain.Vendor, error) {
	if rating < 0 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 0 and 5", domain.ErrValidation)
	}

	vendor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	total := vendor.Rating*float64(vendor.ReviewCount) + rating
	count := vendor.ReviewCount + 1
	mean := total / float64(count)

	if err := s.repo.SetRating(ctx, id, mean, count); err != nil {
		return nil, fmt.Errorf("set rating: %w", err)
	}

	s.logger.Info("vendor rated",
		logger.String("vendor_id", id),
		logger.Any("rating", rating),
		logger.Int("review_count", count),
	)

	return s.repo.GetByID(ctx, id)
}

func (s *VendorService) SetAvailability(ctx context.Context, id string, availability domain.Availability) (*domain.Vendor, error) {
	if !availability.Valid() {
		return nil, fmt.Errorf("%w: unknown availability %q", domain.ErrValidation, availability)
	}

	if err := s.repo.SetAvailability(ctx, id, availability); err != nil {
		return nil, fmt.Errorf("set availability: %w", err)
	}

	return s.repo.GetByID(ctx, id)
}
