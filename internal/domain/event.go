package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventStatus string

const (
	EventStatusPlanning  EventStatus = "planning"
	EventStatusConfirmed EventStatus = "confirmed"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusPlanning, EventStatusConfirmed, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}

type Event struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Venue       string          `json:"venue"`
	Status      EventStatus     `json:"status"`
	Budget      decimal.Decimal `json:"budget"`
	GuestCount  int             `json:"guest_count"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CreateEventInput struct {
	Name        string
	Description string
	Date        time.Time
	Venue       string
	Status      EventStatus
	Budget      decimal.Decimal
	GuestCount  int
}

type UpdateEventInput struct {
	ID          string
	Name        string
	Description string
	Date        time.Time
	Venue       string
	Status      EventStatus
	Budget      decimal.Decimal
	GuestCount  int
}

// CalendarDay groups what is scheduled on a single day: events taking place
// and payments falling due.
type CalendarDay struct {
	Date        time.Time  `json:"date"`
	Events      []*Event   `json:"events"`
	PaymentsDue []*Payment `json:"payments_due"`
}
