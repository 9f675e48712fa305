package dto

import "github.com/google/uuid"

type CreateBookingRequest struct {
	CourtID         uuid.UUID `json:"court_id" validate:"required,uuid"`
	Date            string    `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime       string    `json:"start_time" validate:"required,datetime=15:04"`
	DurationMinutes int       `json:"duration_minutes" validate:"omitempty,min=15,max=1440"`
	Kind            string    `json:"kind" validate:"required,oneof=single double training personal"`
	Participants    []string  `json:"participants" validate:"required,min=1,max=4,dive,required,max=255"`
	OwnerID         string    `json:"owner_id" validate:"omitempty,uuid"`
	Paid            bool      `json:"paid"`
	Notes           string    `json:"notes" validate:"omitempty,max=500"`
}

type UpdateBookingRequest struct {
	OwnerID         string   `json:"owner_id" validate:"omitempty,uuid"`
	Date            string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime       string   `json:"start_time" validate:"omitempty,datetime=15:04"`
	DurationMinutes int      `json:"duration_minutes" validate:"omitempty,min=15,max=1440"`
	Kind            string   `json:"kind" validate:"omitempty,oneof=single double training personal"`
	Participants    []string `json:"participants" validate:"omitempty,min=1,max=4,dive,required,max=255"`
	Paid            *bool    `json:"paid" validate:"omitempty"`
	Notes           *string  `json:"notes" validate:"omitempty,max=500"`
}

type CancelBookingRequest struct {
	BookingID string
	ActorID   string
	ActorRole string
}
