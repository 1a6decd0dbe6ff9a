package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
	"github.com/apper-canvas/eventflow-ether-cell/internal/service/ports/mocks"
)

func eventInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Name:       "Summer Gala",
		Date:       time.Date(2024, 7, 20, 18, 0, 0, 0, time.UTC),
		Venue:      "Grand Hall",
		Budget:     decimal.RequireFromString("25000"),
		GuestCount: 150,
	}
}

func TestEventService_Create(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, mocks.NewMockPaymentRepo(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), eventInput())

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, domain.EventStatusPlanning, event.Status)
}

func TestEventService_Create_Validation(t *testing.T) {
	svc := NewEventService(mocks.NewMockEventRepo(t), mocks.NewMockPaymentRepo(t))
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*domain.CreateEventInput)
	}{
		{"missing name", func(i *domain.CreateEventInput) { i.Name = "" }},
		{"missing date", func(i *domain.CreateEventInput) { i.Date = time.Time{} }},
		{"negative budget", func(i *domain.CreateEventInput) { i.Budget = decimal.RequireFromString("-1") }},
		{"negative guest count", func(i *domain.CreateEventInput) { i.GuestCount = -1 }},
		{"bad status", func(i *domain.CreateEventInput) { i.Status = "archived" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := eventInput()
			tc.mutate(&input)

			_, err := svc.Create(ctx, input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_List_Search(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, mocks.NewMockPaymentRepo(t))

	events := []*domain.Event{
		{ID: "e1", Name: "Summer Gala", Venue: "Grand Hall"},
		{ID: "e2", Name: "Board Meeting", Description: "Quarterly review"},
		{ID: "e3", Name: "Wedding", Venue: "Summerfield Gardens"},
	}
	repo.EXPECT().List(mock.Anything).Return(events, nil)

	got, err := svc.List(context.Background(), "summer")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "e1", got[0].ID)
	assert.Equal(t, "e3", got[1].ID)
}

func TestEventService_List_EmptySearchReturnsAll(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, mocks.NewMockPaymentRepo(t))

	events := []*domain.Event{{ID: "e1"}, {ID: "e2"}}
	repo.EXPECT().List(mock.Anything).Return(events, nil)

	got, err := svc.List(context.Background(), "")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestEventService_Update(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, mocks.NewMockPaymentRepo(t))

	updated := &domain.Event{ID: "e1", Name: "Summer Gala", Status: domain.EventStatusConfirmed}
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(updated, nil)

	got, err := svc.Update(context.Background(), domain.UpdateEventInput{
		ID:     "e1",
		Name:   "Summer Gala",
		Date:   time.Date(2024, 7, 21, 18, 0, 0, 0, time.UTC),
		Status: domain.EventStatusConfirmed,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusConfirmed, got.Status)
}

func TestEventService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, mocks.NewMockPaymentRepo(t))

	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(domain.ErrEventNotFound)

	_, err := svc.Update(context.Background(), domain.UpdateEventInput{
		ID:     "missing",
		Name:   "Ghost",
		Status: domain.EventStatusPlanning,
	})

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Calendar(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	paymentRepo := mocks.NewMockPaymentRepo(t)
	svc := NewEventService(repo, paymentRepo)

	events := []*domain.Event{
		{ID: "e1", Name: "Summer Gala", Date: time.Date(2024, 7, 20, 18, 0, 0, 0, time.UTC)},
		{ID: "e2", Name: "Autumn Fair", Date: time.Date(2024, 9, 5, 10, 0, 0, 0, time.UTC)},
	}
	payments := []*domain.Payment{
		{ID: "p1", DueDate: time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC)},
		{ID: "p2", DueDate: time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC)},
	}
	repo.EXPECT().List(mock.Anything).Return(events, nil)
	paymentRepo.EXPECT().List(mock.Anything, "").Return(payments, nil)

	days, err := svc.Calendar(context.Background(), 2024, time.July)

	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, 5, days[0].Date.Day())
	assert.Empty(t, days[0].Events)
	require.Len(t, days[0].PaymentsDue, 1)
	assert.Equal(t, "p1", days[0].PaymentsDue[0].ID)

	assert.Equal(t, 20, days[1].Date.Day())
	require.Len(t, days[1].Events, 1)
	assert.Equal(t, "e1", days[1].Events[0].ID)
	require.Len(t, days[1].PaymentsDue, 1)
	assert.Equal(t, "p2", days[1].PaymentsDue[0].ID)
}

func TestEventService_Calendar_EmptyMonth(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	paymentRepo := mocks.NewMockPaymentRepo(t)
	svc := NewEventService(repo, paymentRepo)

	repo.EXPECT().List(mock.Anything).Return(nil, nil)
	paymentRepo.EXPECT().List(mock.Anything, "").Return(nil, nil)

	days, err := svc.Calendar(context.Background(), 2024, time.February)

	require.NoError(t, err)
	assert.Empty(t, days)
}
