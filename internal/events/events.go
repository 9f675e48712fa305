package events

import (
	"context"
)

//go:generate go run go.uber.org/mock/mockgen -source=events.go -destination=mock/publisher.go -package=mock github.com/courtbook/backend/internal/events Publisher

const (
	NameReservationCreated = "reservation.created"
	NameReservationDeleted = "reservation.deleted"
)

// ReservationCreatedEvent is emitted after a booking is persisted.
type ReservationCreatedEvent struct {
	Name         string   `json:"name"`
	BookingID    string   `json:"booking_id"`
	CourtID      string   `json:"court_id"`
	OwnerID      string   `json:"owner_id"`
	BookingDate  string   `json:"booking_date"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	Kind         string   `json:"kind"`
	Participants []string `json:"participants"`
	OccurredAt   string   `json:"occurred_at"`
}

// ReservationDeletedEvent is emitted after a booking is removed.
type ReservationDeletedEvent struct {
	Name        string `json:"name"`
	BookingID   string `json:"booking_id"`
	CourtID     string `json:"court_id"`
	OwnerID     string `json:"owner_id"`
	BookingDate string `json:"booking_date"`
	CanceledBy  string `json:"canceled_by"`
	OccurredAt  string `json:"occurred_at"`
}

// Publisher is the fire-and-forget sink the planner emits domain events to.
// Failures are logged by implementations and never fail the request.
type Publisher interface {
	ReservationCreated(ctx context.Context, event ReservationCreatedEvent) error
	ReservationDeleted(ctx context.Context, event ReservationDeletedEvent) error
}
