package handler

import (
	"errors"

	"github.com/courtbook/backend/internal/delivery/http/middleware"
	"github.com/courtbook/backend/internal/delivery/http/response"
	_ "github.com/courtbook/backend/internal/domains/user/dto" // Swagger docs
	"github.com/courtbook/backend/internal/domains/user/service"
	"github.com/courtbook/backend/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var (
	ErrEmailNil       = errors.New("email is nil")
	ErrEmailNotString = errors.New("email is not string")
)

type Handler struct {
	service   service.UserService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.UserService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	users := r.Group("/users")

	users.Get("/profile", middleware.Jwt(), h.Profile)
}

// Profile godoc
// @Summary Get user profile
// @Description Get user profile
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.UserProfileResponse]
// @Failure 500 {object} response.Error
// @Router /users/profile [get]
// @Security BearerAuth
func (h *Handler) Profile(ctx *fiber.Ctx) error {
	localEmail := ctx.Locals("email")
	if localEmail == nil {
		h.logger.Error("http - user - profile - email is nil")

		return response.WithError(ctx, ErrEmailNil)
	}

	email, ok := localEmail.(string)
	if !ok {
		h.logger.Error("http - user - profile - email is not string")

		return response.WithError(ctx, ErrEmailNotString)
	}

	data, err := h.service.Profile(ctx.UserContext(), email)
	if err != nil {
		reqID := "unknown"
		if id, ok := ctx.Locals("request_id").(string); ok {
			reqID = id
		}

		h.logger.Error("http - user - profile - request_id: " + reqID + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}
