package handler

import (
	"github.com/courtbook/backend/internal/delivery/http/middleware"
	"github.com/courtbook/backend/internal/delivery/http/response"
	"github.com/courtbook/backend/internal/domains/bookings/dto"
	"github.com/courtbook/backend/internal/domains/bookings/service"
	"github.com/courtbook/backend/pkg/constant"
	"github.com/courtbook/backend/pkg/failure"
	"github.com/courtbook/backend/pkg/gdto"
	"github.com/courtbook/backend/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service   service.BookingService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.BookingService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - booking - %s"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	booking := r.Group("/bookings")

	booking.Post("/", middleware.Jwt(), h.Create)
	booking.Get("/me", middleware.Jwt(), h.GetMine)
	booking.Get("/", middleware.AdminOnly(), h.GetAll)
	booking.Get("/:id", middleware.Jwt(), h.Get)
	booking.Patch("/:id", middleware.Jwt(), h.Update)
	booking.Delete("/:id", middleware.Jwt(), h.Cancel)
}

func actor(ctx *fiber.Ctx) (userID, role string, err error) {
	userID, ok := ctx.Locals(constant.JwtFieldUser).(string)
	if !ok {
		return "", "", constant.ErrInvalidContextUserType
	}

	role, ok = ctx.Locals(constant.JwtFieldLevel).(string)
	if !ok {
		return "", "", constant.ErrInvalidContextUserType
	}

	return userID, role, nil
}

// Create Booking godoc
// @Summary Create new booking
// @Description Reserve a court slot. The slot must lie within operating hours and clear of recurring blocks and existing bookings
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body dto.CreateBookingRequest true "Booking create request"
// @Success 201 {object} response.Data[string]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/ [post]
// @Security BearerAuth
func (h *Handler) Create(ctx *fiber.Ctx) error {
	userID, role, err := actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "create - %w", err)

		return response.WithError(ctx, failure.Unauthorized(err.Error()))
	}

	var req dto.CreateBookingRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "create - body parsing error: %w", err)

		return response.WithError(ctx, failure.InvalidFields(constant.BookingErrInvalidFields, err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		transformErr := failure.InvalidFields(constant.BookingErrInvalidFields, err.Error())

		h.logger.Error(identifier, "create - validate error: %w", err)

		return response.WithError(ctx, transformErr)
	}

	data, err := h.service.CreateBooking(ctx.UserContext(), req, userID, role)
	if err != nil {
		h.logger.Error(identifier, "create - %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusCreated, data)
}

// Get Booking godoc
// @Summary Get booking by ID
// @Description Get booking by ID
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/{id} [get]
// @Security BearerAuth
func (h *Handler) Get(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "get - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	data, err := h.service.GetBookingByID(ctx.UserContext(), id)
	if err != nil {
		h.logger.Error(identifier, "get - %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// GetMine Booking godoc
// @Summary Get own bookings
// @Description Get the authenticated user's bookings
// @Tags bookings
// @Accept json
// @Produce json
// @Param pagination query gdto.PaginationRequest false "Pagination request"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/me [get]
// @Security BearerAuth
func (h *Handler) GetMine(ctx *fiber.Ctx) error {
	userID, _, err := actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "get mine - %w", err)

		return response.WithError(ctx, failure.Unauthorized(err.Error()))
	}

	var req gdto.PaginationRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error(identifier, "get mine - query parsing error: %w", err)

		return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error(identifier, "get mine - validate error: %w", err)

		return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
	}

	data, err := h.service.GetUserBookings(ctx.UserContext(), userID, req)
	if err != nil {
		h.logger.Error(identifier, "get mine - %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// GetAll Booking godoc
// @Summary Get all bookings
// @Description Get all bookings across users, admin only
// @Tags bookings
// @Accept json
// @Produce json
// @Param pagination query gdto.PaginationRequest false "Pagination request"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/ [get]
// @Security BearerAuth
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

	data, err := h.service.GetAllBookings(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error(identifier, "get all - %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Update Booking godoc
// @Summary Update booking by ID
// @Description Reschedule or edit a booking. The new slot goes through the same availability and conflict checks as a create
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param booking body dto.UpdateBookingRequest true "Booking update request"
// @Success 200 {object} response.Data[string]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/{id} [patch]
// @Security BearerAuth
func (h *Handler) Update(ctx *fiber.Ctx) error {
	userID, role, err := actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "update - %w", err)

		return response.WithError(ctx, failure.Unauthorized(err.Error()))
	}

	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "update - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.UpdateBookingRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "update - body parsing error: %w", err)

		return response.WithError(ctx, failure.InvalidFields(constant.BookingErrInvalidFields, err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		transformErr := failure.InvalidFields(constant.BookingErrInvalidFields, err.Error())

		h.logger.Error(identifier, "update - validate error: %w", err)

		return response.WithError(ctx, transformErr)
	}

	data, err := h.service.UpdateBooking(ctx.UserContext(), id, req, userID, role)
	if err != nil {
		h.logger.Error(identifier, "update - %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Cancel Booking godoc
// @Summary Cancel booking by ID
// @Description Cancel a booking, freeing its slot
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/{id} [delete]
// @Security BearerAuth
func (h *Handler) Cancel(ctx *fiber.Ctx) error {
	userID, role, err := actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "cancel - %w", err)

		return response.WithError(ctx, failure.Unauthorized(err.Error()))
	}

	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "cancel - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.service.CancelBooking(ctx.UserContext(), dto.CancelBookingRequest{
		BookingID: id,
		ActorID:   userID,
		ActorRole: role,
	}); err != nil {
		h.logger.Error(identifier, "cancel - %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, "booking canceled")
}
