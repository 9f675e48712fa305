package handler

import (
	"context"

	"github.com/courtbook/backend/internal/delivery/http/middleware"
	"github.com/courtbook/backend/internal/delivery/http/response"
	"github.com/courtbook/backend/internal/domains/courts/dto"
	"github.com/courtbook/backend/internal/domains/courts/service"
	"github.com/courtbook/backend/pkg/constant"
	"github.com/courtbook/backend/pkg/failure"
	"github.com/courtbook/backend/pkg/gdto"
	"github.com/courtbook/backend/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service   service.CourtService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.CourtService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - court - %s"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	court := r.Group("/courts")

	court.Post("/", middleware.AdminOnly(), h.Create)
	court.Get("/", h.GetAll)
	court.Get("/:id", h.Get)
	court.Patch("/:id", middleware.AdminOnly(), h.Update)
	court.Delete("/:id", middleware.AdminOnly(), h.Delete)

	court.Post("/:id/blocks", middleware.AdminOnly(), h.AddBlock)
	court.Post("/:id/blocks/:block_id/exceptions", middleware.AdminOnly(), h.AddBlockException)
	court.Delete("/:id/blocks/:block_id/exceptions", middleware.AdminOnly(), h.RemoveBlockException)
}

// Create Court godoc
// @Summary Create new court
// @Description Create new court with optional recurring blocks
// @Tags courts
// @Accept json
// @Produce json
// @Param court body dto.CourtCreateRequest true "Court create request"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /courts/ [post]
// @Security BearerAuth
func (h *Handler) Create(ctx *fiber.Ctx) error {
	var req dto.CourtCreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "create - body parsing error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		transformErr := failure.InvalidFields(constant.BookingErrInvalidFields, err.Error())

		h.logger.Error(identifier, "create - validate error: %w", err)

		return response.WithError(ctx, transformErr)
	}

	data, err := h.service.Create(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error(identifier, "create - %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusCreated, data)
}

// Get Court godoc
// @Summary Get court by ID
// @Description Get court with its recurring blocks
// @Tags courts
// @Accept json
// @Produce json
// @Param id path string true "Court ID"
// @Success 200 {object} response.Data[dto.CourtDetailResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /courts/{id} [get]
func (h *Handler) Get(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "get - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	data, err := h.service.Get(ctx.UserContext(), id)
	if err != nil {
		h.logger.Error(identifier, "get - %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// GetAll Court godoc
// @Summary Get all courts
// @Description Get all courts
// @Tags courts
// @Accept json
// @Produce json
// @Param pagination query gdto.PaginationRequest false "Pagination request"
// @Success 200 {object} response.Data[dto.GetCourtsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /courts/ [get]
func (h *Handler) GetAll(ctx *fiber.Ctx) error {
	var req gdto.PaginationRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error(identifier, "get all - query parsing error: %w", err)

		return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error(identifier, "get all - validate error: %w", err)

		return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
	}

	data, err := h.service.GetAll(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error(identifier, "get all - %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Update Court godoc
// @Summary Update court by ID
// @Description Update court by ID
// @Tags courts
// @Accept json
// @Produce json
// @Param id path string true "Court ID"
// @Param court body dto.CourtUpdateRequest true "Court update request"
// @Success 200 {object} response.Data[string]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /courts/{id} [patch]
// @Security BearerAuth
func (h *Handler) Update(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "update - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.CourtUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "update - body parsing error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		transformErr := failure.InvalidFields(constant.BookingErrInvalidFields, err.Error())

		h.logger.Error(identifier, "update - validate error: %w", err)

		return response.WithError(ctx, transformErr)
	}

	data, err := h.service.Update(ctx.UserContext(), id, req)
	if err != nil {
		h.logger.Error(identifier, "update - %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Delete Court godoc
// @Summary Delete court by ID
// @Description Soft delete court and drop its recurring blocks
// @Tags courts
// @Accept json
// @Produce json
// @Param id path string true "Court ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /courts/{id} [delete]
// @Security BearerAuth
func (h *Handler) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "delete - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.service.Delete(ctx.UserContext(), id); err != nil {
		h.logger.Error(identifier, "delete - %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, "court deleted")
}

// AddBlock Court godoc
// @Summary Add recurring block to court
// @Description Add a weekly recurring block to a court
// @Tags courts
// @Accept json
// @Produce json
// @Param id path string true "Court ID"
// @Param block body dto.RecurringBlockRequest true "Recurring block request"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /courts/{id}/blocks [post]
// @Security BearerAuth
func (h *Handler) AddBlock(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "add block - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.RecurringBlockRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "add block - body parsing error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		transformErr := failure.InvalidFields(constant.BookingErrInvalidFields, err.Error())

		h.logger.Error(identifier, "add block - validate error: %w", err)

		return response.WithError(ctx, transformErr)
	}

	data, err := h.service.AddBlock(ctx.UserContext(), id, req)
	if err != nil {
		h.logger.Error(identifier, "add block - %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusCreated, data)
}

// AddBlockException Court godoc
// @Summary Suspend a recurring block for one date
// @Description Add a date to the block's exception list so it does not apply that day
// @Tags courts
// @Accept json
// @Produce json
// @Param id path string true "Court ID"
// @Param block_id path string true "Block ID"
// @Param exception body dto.BlockExceptionRequest true "Block exception request"
// @Success 200 {object} response.Data[string]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /courts/{id}/blocks/{block_id}/exceptions [post]
// @Security BearerAuth
func (h *Handler) AddBlockException(ctx *fiber.Ctx) error {
	return h.blockException(ctx, "add block exception", h.service.AddBlockException)
}

// RemoveBlockException Court godoc
// @Summary Reinstate a recurring block for one date
// @Description Remove a date from the block's exception list
// @Tags courts
// @Accept json
// @Produce json
// @Param id path string true "Court ID"
// @Param block_id path string true "Block ID"
// @Param exception body dto.BlockExceptionRequest true "Block exception request"
// @Success 200 {object} response.Data[string]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /courts/{id}/blocks/{block_id}/exceptions [delete]
// @Security BearerAuth
func (h *Handler) RemoveBlockException(ctx *fiber.Ctx) error {
	return h.blockException(ctx, "remove block exception", h.service.RemoveBlockException)
}

func (h *Handler) blockException(ctx *fiber.Ctx, op string, apply func(ctx context.Context, courtID, blockID string, req dto.BlockExceptionRequest) (string, error)) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, op+" - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	blockID := ctx.Params(constant.RequestParamBlockID)
	if err := h.validator.Var(blockID, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, op+" - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.BlockExceptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, op+" - body parsing error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		transformErr := failure.InvalidFields(constant.BookingErrInvalidFields, err.Error())

		h.logger.Error(identifier, op+" - validate error: %w", err)

		return response.WithError(ctx, transformErr)
	}

	data, err := apply(ctx.UserContext(), id, blockID, req)
	if err != nil {
		h.logger.Error(identifier, op+" - %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}
