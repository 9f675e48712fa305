package http

import (
	"github.com/courtbook/backend/config"
	_ "github.com/courtbook/backend/docs" // Swagger docs
	authHandler "github.com/courtbook/backend/internal/domains/auth/handler"
	bookingHandler "github.com/courtbook/backend/internal/domains/bookings/handler"
	courtHandler "github.com/courtbook/backend/internal/domains/courts/handler"
	scheduleHandler "github.com/courtbook/backend/internal/domains/schedule/handler"
	userHandler "github.com/courtbook/backend/internal/domains/user/handler"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/courtbook/backend/internal/delivery/http/middleware"
	"github.com/courtbook/backend/pkg/logger"
)

type Handlers struct {
	Auth     *authHandler.Handler
	User     *userHandler.Handler
	Court    *courtHandler.Handler
	Booking  *bookingHandler.Handler
	Schedule *scheduleHandler.Handler
}

// NewRouter initializes the HTTP router and registers the routes for the application.
// Swagger spec:
// @title courtbook API
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	l logger.Interface,
	handlers Handlers,
) {
	// Options
	app.Use(middleware.Logger(l))
	app.Use(middleware.Recovery(l))
	app.Use(middleware.RequestID())
	app.Use(middleware.CORS(cfg))

	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	apiV1Group := app.Group("/v1")
	{
		handlers.Auth.RegisterRoutes(apiV1Group)
		handlers.User.RegisterRoutes(apiV1Group)
		handlers.Court.RegisterRoutes(apiV1Group)
		handlers.Booking.RegisterRoutes(apiV1Group)
		handlers.Schedule.RegisterRoutes(apiV1Group)
	}

	app.Use("*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "route not found",
		})
	})
}
