package domain

import "time"

type RSVPStatus string

const (
	RSVPStatusPending   RSVPStatus = "pending"
	RSVPStatusConfirmed RSVPStatus = "confirmed"
	RSVPStatusDeclined  RSVPStatus = "declined"
)

func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPStatusPending, RSVPStatusConfirmed, RSVPStatusDeclined:
		return true
	}
	return false
}

type Guest struct {
	ID         string     `json:"id"`
	EventID    string     `json:"event_id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	RSVPStatus RSVPStatus `json:"rsvp_status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type CreateGuestInput struct {
	EventID string
	Name    string
	Email   string
}

type UpdateGuestInput struct {
	ID      string
	EventID string
	Name    string
	Email   string
}
