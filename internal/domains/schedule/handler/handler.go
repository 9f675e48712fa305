package handler

import (
	"github.com/courtbook/backend/internal/delivery/http/response"
	"github.com/courtbook/backend/internal/domains/schedule/dto"
	"github.com/courtbook/backend/internal/domains/schedule/service"
	"github.com/courtbook/backend/pkg/failure"
	"github.com/courtbook/backend/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service   service.ScheduleService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.ScheduleService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - schedule - %s"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	schedule := r.Group("/schedule")

	schedule.Get("/day", h.GetDay)
	schedule.Get("/week", h.GetWeek)
}

// GetDay Schedule godoc
// @Summary Get a court's schedule for one day
// @Description Merged timeline of bookings and recurring block occurrences for a court on a date
// @Tags schedule
// @Accept json
// @Produce json
// @Param court_id query string true "Court ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.DayScheduleResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /schedule/day [get]
func (h *Handler) GetDay(ctx *fiber.Ctx) error {
	var req dto.DayScheduleRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error(identifier, "get day - query parsing error: %w", err)

		return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error(identifier, "get day - validate error: %w", err)

		return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
	}

	data, err := h.service.GetDay(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error(identifier, "get day - %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// GetWeek Schedule godoc
// @Summary Get a court's schedule for one week
// @Description Day by day timeline for the seven days starting at start_date
// @Tags schedule
// @Accept json
// @Produce json
// @Param court_id query string true "Court ID"
// @Param start_date query string true "First day of the week (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.WeekScheduleResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /schedule/week [get]
func (h *Handler) GetWeek(ctx *fiber.Ctx) error {
	var req dto.WeekScheduleRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error(identifier, "get week - query parsing error: %w", err)

		return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error(identifier, "get week - validate error: %w", err)

		return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
	}

	data, err := h.service.GetWeek(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error(identifier, "get week - %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}
