package dto

import (
	"github.com/courtbook/backend/internal/domains/bookings/repository"
	"github.com/courtbook/backend/pkg/constant"
	"github.com/courtbook/backend/pkg/helper"
)

type BookingResponse struct {
	ID              string   `json:"id"`
	CourtID         string   `json:"court_id"`
	CourtName       string   `json:"court_name,omitempty"`
	OwnerID         string   `json:"owner_id"`
	Date            string   `json:"date"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	DurationMinutes int      `json:"duration_minutes"`
	Status          string   `json:"status"`
	Paid            bool     `json:"paid"`
	Kind            string   `json:"kind"`
	Participants    []string `json:"participants"`
	Notes           string   `json:"notes,omitempty"`
	CreatedAt       string   `json:"created_at"`
}

func (b BookingResponse) FromModel(model repository.Booking) BookingResponse {
	startTime, _ := helper.PgTimeToString(model.StartTime)
	endTime, _ := helper.PgTimeToString(model.EndTime)

	participants := model.Participants
	if participants == nil {
		participants = []string{}
	}

	return BookingResponse{
		ID:              model.ID.String(),
		CourtID:         model.CourtID.String(),
		OwnerID:         model.OwnerID.String(),
		Date:            model.BookingDate.Time.Format(constant.DateFormat),
		StartTime:       startTime,
		EndTime:         endTime,
		DurationMinutes: int(model.DurationMinutes),
		Status:          model.Status,
		Paid:            helper.BoolFromPg(model.Paid),
		Kind:            model.Kind,
		Participants:    participants,
		Notes:           model.Notes.String,
		CreatedAt:       model.CreatedAt.Time.Format(constant.FullDateFormat),
	}
}

type GetBookingsResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalItems int               `json:"total_items"`
	TotalPages int               `json:"total_pages"`
}

func (g *GetBookingsResponse) FromModel(bookings []repository.Booking, totalItems, limit int) {
	g.TotalItems = totalItems
	g.TotalPages = helper.CalculateTotalPages(totalItems, limit)

	if len(bookings) == 0 {
		g.Bookings = []BookingResponse{}

		return
	}

	g.Bookings = make([]BookingResponse, len(bookings))

	for i, booking := range bookings {
		g.Bookings[i] = BookingResponse{}.FromModel(booking)
	}
}

// EnrichWithCourtNames fills CourtName on every booking from an id to name map.
func (g *GetBookingsResponse) EnrichWithCourtNames(courtNames map[string]string) {
	for i := range g.Bookings {
		if name, ok := courtNames[g.Bookings[i].CourtID]; ok {
			g.Bookings[i].CourtName = name
		}
	}
}
