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

func guestInput() domain.CreateGuestInput {
	return domain.CreateGuestInput{
		EventID: "e1",
		Name:    "Jordan Lee",
		Email:   "jordan@example.com",
	}
}

func TestGuestService_Create(t *testing.T) {
	repo := mocks.NewMockGuestRepo(t)
	svc := NewGuestService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	guest, err := svc.Create(context.Background(), guestInput())

	require.NoError(t, err)
	assert.NotEmpty(t, guest.ID)
	assert.Equal(t, domain.RSVPStatusPending, guest.RSVPStatus)
}

func TestGuestService_Create_Validation(t *testing.T) {
	svc := NewGuestService(mocks.NewMockGuestRepo(t))
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*domain.CreateGuestInput)
	}{
		{"missing event", func(i *domain.CreateGuestInput) { i.EventID = "" }},
		{"missing name", func(i *domain.CreateGuestInput) { i.Name = "" }},
		{"missing email", func(i *domain.CreateGuestInput) { i.Email = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := guestInput()
			tc.mutate(&input)

			_, err := svc.Create(ctx, input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestGuestService_List_Filtered(t *testing.T) {
	repo := mocks.NewMockGuestRepo(t)
	svc := NewGuestService(repo)

	guests := []*domain.Guest{
		{ID: "g1", EventID: "e1", Name: "Jordan Lee", RSVPStatus: domain.RSVPStatusConfirmed},
		{ID: "g2", EventID: "e1", Name: "Sam Reyes", RSVPStatus: domain.RSVPStatusPending},
	}
	repo.EXPECT().List(mock.Anything, "e1").Return(guests, nil)

	got, err := svc.List(context.Background(), filter.GuestFilter{
		EventID: "e1",
		Status:  domain.RSVPStatusConfirmed,
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "g1", got[0].ID)
}

func TestGuestService_SetRSVP(t *testing.T) {
	repo := mocks.NewMockGuestRepo(t)
	svc := NewGuestService(repo)

	repo.EXPECT().SetRSVP(mock.Anything, "g1", domain.RSVPStatusDeclined).Return(nil)
	repo.EXPECT().GetByID(mock.Anything, "g1").
		Return(&domain.Guest{ID: "g1", RSVPStatus: domain.RSVPStatusDeclined}, nil)

	guest, err := svc.SetRSVP(context.Background(), "g1", domain.RSVPStatusDeclined)

	require.NoError(t, err)
	assert.Equal(t, domain.RSVPStatusDeclined, guest.RSVPStatus)
}

func TestGuestService_SetRSVP_UnknownStatus(t *testing.T) {
	svc := NewGuestService(mocks.NewMockGuestRepo(t))

	_, err := svc.SetRSVP(context.Background(), "g1", "maybe-later")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGuestService_SetRSVP_NotFound(t *testing.T) {
	repo := mocks.NewMockGuestRepo(t)
	svc := NewGuestService(repo)

	repo.EXPECT().SetRSVP(mock.Anything, "missing", domain.RSVPStatusConfirmed).
		Return(domain.ErrGuestNotFound)

	_, err := svc.SetRSVP(context.Background(), "missing", domain.RSVPStatusConfirmed)

	assert.ErrorIs(t, err, domain.ErrGuestNotFound)
}
