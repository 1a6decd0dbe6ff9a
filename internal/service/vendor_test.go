package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
	"github.com/apper-canvas/eventflow-ether-cell/internal/filter"
	"github.com/apper-canvas/eventflow-ether-cell/internal/service/ports/mocks"
)

func vendorCreateInput() domain.CreateVendorInput {
	return domain.CreateVendorInput{
		Name:      "Maria Santos",
		Company:   "Tasty Bites",
		Email:     "maria@tastybites.example",
		Specialty: "catering",
	}
}

func TestVendorService_Create(t *testing.T) {
	repo := mocks.NewMockVendorRepo(t)
	svc := NewVendorService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	vendor, err := svc.Create(context.Background(), vendorCreateInput())

	require.NoError(t, err)
	assert.NotEmpty(t, vendor.ID)
	assert.Equal(t, domain.PriceRangeBudget, vendor.PriceRange)
	assert.Equal(t, domain.AvailabilityAvailable, vendor.Availability)
	assert.Zero(t, vendor.Rating)
	assert.Zero(t, vendor.ReviewCount)
}

func TestVendorService_Create_Validation(t *testing.T) {
	svc := NewVendorService(mocks.NewMockVendorRepo(t), newTestLogger(t))
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*domain.CreateVendorInput)
	}{
		{"missing name", func(i *domain.CreateVendorInput) { i.Name = "" }},
		{"missing company", func(i *domain.CreateVendorInput) { i.Company = "" }},
		{"missing email", func(i *domain.CreateVendorInput) { i.Email = "" }},
		{"missing specialty", func(i *domain.CreateVendorInput) { i.Specialty = "" }},
		{"bad price range", func(i *domain.CreateVendorInput) { i.PriceRange = "$$$$" }},
		{"bad availability", func(i *domain.CreateVendorInput) { i.Availability = "retired" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := vendorCreateInput()
			tc.mutate(&input)

			_, err := svc.Create(ctx, input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestVendorService_List_Filtered(t *testing.T) {
	repo := mocks.NewMockVendorRepo(t)
	svc := NewVendorService(repo, newTestLogger(t))

	vendors := []*domain.Vendor{
		{ID: "v1", Specialty: "catering", Rating: 4.8},
		{ID: "v2", Specialty: "catering", Rating: 3.2},
		{ID: "v3", Specialty: "photography", Rating: 4.9},
	}
	repo.EXPECT().List(mock.Anything).Return(vendors, nil)

	got, err := svc.List(context.Background(), filter.VendorFilter{
		Specialty: "catering",
		MinRating: 4.0,
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "v1", got[0].ID)
}

func TestVendorService_Rate_RunningMean(t *testing.T) {
	repo := mocks.NewMockVendorRepo(t)
	svc := NewVendorService(repo, newTestLogger(t))

	existing := &domain.Vendor{ID: "v1", Rating: 4.0, ReviewCount: 2}
	repo.EXPECT().GetByID(mock.Anything, "v1").Return(existing, nil).Once()
	repo.EXPECT().SetRating(mock.Anything, "v1", mock.MatchedBy(func(mean float64) bool {
		return mean > 4.33 && mean < 4.34
	}), 3).Return(nil)
	repo.EXPECT().GetByID(mock.Anything, "v1").
		Return(&domain.Vendor{ID: "v1", Rating: 4.333333333333333, ReviewCount: 3}, nil).Once()

	vendor, err := svc.Rate(context.Background(), "v1", 5.0)

	require.NoError(t, err)
	assert.Equal(t, 3, vendor.ReviewCount)
	assert.InDelta(t, 4.333, vendor.Rating, 0.001)
}

func TestVendorService_Rate_FirstReview(t *testing.T) {
	repo := mocks.NewMockVendorRepo(t)
	svc := NewVendorService(repo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "v1").
		Return(&domain.Vendor{ID: "v1"}, nil).Once()
	repo.EXPECT().SetRating(mock.Anything, "v1", 4.5, 1).Return(nil)
	repo.EXPECT().GetByID(mock.Anything, "v1").
		Return(&domain.Vendor{ID: "v1", Rating: 4.5, ReviewCount: 1}, nil).Once()

	vendor, err := svc.Rate(context.Background(), "v1", 4.5)

	require.NoError(t, err)
	assert.Equal(t, 4.5, vendor.Rating)
	assert.Equal(t, 1, vendor.ReviewCount)
}

func TestVendorService_Rate_OutOfRange(t *testing.T) {
	svc := NewVendorService(mocks.NewMockVendorRepo(t), newTestLogger(t))
	ctx := context.Background()

	_, err := svc.Rate(ctx, "v1", 5.5)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Rate(ctx, "v1", -0.1)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVendorService_Rate_NotFound(t *testing.T) {
	repo := mocks.NewMockVendorRepo(t)
	svc := NewVendorService(repo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrVendorNotFound)

	_, err := svc.Rate(context.Background(), "missing", 4.0)

	assert.ErrorIs(t, err, domain.ErrVendorNotFound)
}

func TestVendorService_SetAvailability(t *testing.T) {
	repo := mocks.NewMockVendorRepo(t)
	svc := NewVendorService(repo, newTestLogger(t))

	repo.EXPECT().SetAvailability(mock.Anything, "v1", domain.AvailabilityBusy).Return(nil)
	repo.EXPECT().GetByID(mock.Anything, "v1").
		Return(&domain.Vendor{ID: "v1", Availability: domain.AvailabilityBusy}, nil)

	vendor, err := svc.SetAvailability(context.Background(), "v1", domain.AvailabilityBusy)

	require.NoError(t, err)
	assert.Equal(t, domain.AvailabilityBusy, vendor.Availability)
}

func TestVendorService_SetAvailability_Unknown(t *testing.T) {
	svc := NewVendorService(mocks.NewMockVendorRepo(t), newTestLogger(t))

	_, err := svc.SetAvailability(context.Background(), "v1", "sabbatical")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
