package dto

import (
	"github.com/courtbook/backend/internal/domains/courts/repository"
	"github.com/courtbook/backend/pkg/constant"
	"github.com/courtbook/backend/pkg/helper"
)

type CourtResponse struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	SurfaceType            string `json:"surface_type"`
	OpenTime               string `json:"open_time"`
	CloseTime              string `json:"close_time"`
	DefaultDurationMinutes int    `json:"default_duration_minutes"`
	CreatedAt              string `json:"created_at"`
	UpdatedAt              string `json:"updated_at"`
}

func (c CourtResponse) FromModel(model repository.Court) CourtResponse {
	openTime, _ := helper.PgTimeToString(model.OpenTime)
	closeTime, _ := helper.PgTimeToString(model.CloseTime)

	return CourtResponse{
		ID:                     model.ID.String(),
		Name:                   model.Name,
		SurfaceType:            model.SurfaceType,
		OpenTime:               openTime,
		CloseTime:              closeTime,
		DefaultDurationMinutes: int(model.DefaultDurationMinutes),
		CreatedAt:              model.CreatedAt.Time.Format(constant.DateFormat),
		UpdatedAt:              model.UpdatedAt.Time.Format(constant.DateFormat),
	}
}

type RecurringBlockResponse struct {
	ID              string   `json:"id"`
	CourtID         string   `json:"court_id"`
	Position        int      `json:"position"`
	StartTime       string   `json:"start_time"`
	DurationMinutes int      `json:"duration_minutes"`
	Purpose         string   `json:"purpose"`
	Cadence         string   `json:"cadence"`
	Weekdays        []int    `json:"weekdays"`
	Note            string   `json:"note"`
	DatesNotApplied []string `json:"dates_not_applied"`
}

func (r RecurringBlockResponse) FromModel(model repository.RecurringBlock) RecurringBlockResponse {
	startTime, _ := helper.PgTimeToString(model.StartTime)

	weekdays := make([]int, len(model.Weekdays))
	for i, wd := range model.Weekdays {
		weekdays[i] = int(wd)
	}

	exceptions := make([]string, 0, len(model.DatesNotApplied))

	for _, d := range model.DatesNotApplied {
		if d.Valid {
			exceptions = append(exceptions, d.Time.Format(constant.DateFormat))
		}
	}

	return RecurringBlockResponse{
		ID:              model.ID.String(),
		CourtID:         model.CourtID.String(),
		Position:        int(model.Position),
		StartTime:       startTime,
		DurationMinutes: int(model.DurationMinutes),
		Purpose:         model.Purpose,
		Cadence:         model.Cadence,
		Weekdays:        weekdays,
		Note:            model.Note.String,
		DatesNotApplied: exceptions,
	}
}

type CourtDetailResponse struct {
	CourtResponse
	Blocks []RecurringBlockResponse `json:"blocks"`
}

func (c CourtDetailResponse) FromModel(court repository.Court, blocks []repository.RecurringBlock) CourtDetailResponse {
	res := CourtDetailResponse{
		CourtResponse: CourtResponse{}.FromModel(court),
		Blocks:        []RecurringBlockResponse{},
	}

	for _, block := range blocks {
		res.Blocks = append(res.Blocks, RecurringBlockResponse{}.FromModel(block))
	}

	return res
}

type GetCourtsResponse struct {
	Courts     []CourtResponse `json:"courts"`
	TotalItems int             `json:"total_items"`
	TotalPages int             `json:"total_pages"`
}

func (g *GetCourtsResponse) FromModel(courts []repository.Court, totalItems, limit int) {
	g.TotalItems = totalItems
	g.TotalPages = helper.CalculateTotalPages(totalItems, limit)

	if len(courts) == 0 {
		g.Courts = []CourtResponse{}

		return
	}

	g.Courts = make([]CourtResponse, len(courts))

	for i, court := range courts {
		g.Courts[i] = CourtResponse{}.FromModel(court)
	}
}
