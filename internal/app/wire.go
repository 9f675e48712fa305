//go:build wireinject
// +build wireinject

package app

import (
	"fmt"

	"github.com/courtbook/backend/config"
	"github.com/courtbook/backend/internal/delivery/http"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/wire"

	authHandler "github.com/courtbook/backend/internal/domains/auth/handler"
	authService "github.com/courtbook/backend/internal/domains/auth/service"

	userHandler "github.com/courtbook/backend/internal/domains/user/handler"
	userRepository "github.com/courtbook/backend/internal/domains/user/repository"
	userService "github.com/courtbook/backend/internal/domains/user/service"

	courtHandler "github.com/courtbook/backend/internal/domains/courts/handler"
	courtRepository "github.com/courtbook/backend/internal/domains/courts/repository"
	courtService "github.com/courtbook/backend/internal/domains/courts/service"

	bookingHandler "github.com/courtbook/backend/internal/domains/bookings/handler"
	bookingRepository "github.com/courtbook/backend/internal/domains/bookings/repository"
	bookingService "github.com/courtbook/backend/internal/domains/bookings/service"

	scheduleHandler "github.com/courtbook/backend/internal/domains/schedule/handler"
	scheduleService "github.com/courtbook/backend/internal/domains/schedule/service"

	"github.com/courtbook/backend/internal/events"
	"github.com/courtbook/backend/pkg/httpserver"
	"github.com/courtbook/backend/pkg/jwt"
	"github.com/courtbook/backend/pkg/logger"
	"github.com/courtbook/backend/pkg/postgres"
	"github.com/courtbook/backend/pkg/rabbitmq"
	"github.com/courtbook/backend/pkg/redis"
)

// Application represents the dependency-injected app
type Application struct {
	HTTPServer *httpserver.Server
	Logger     logger.Interface
	PG         *postgres.Postgres
	Redis      *redis.Redis
	Rabbit     *rabbitmq.Client
	JWT        *jwt.JWT
	Scheduler  bookingService.SchedulerService
}

func provideUserQuerier() userRepository.Querier {
	return userRepository.New()
}

var userDomain = wire.NewSet(
	provideUserQuerier,
	userService.New,
	userHandler.New,
)

var authDomain = wire.NewSet(
	authService.New,
	authHandler.New,
)

var courtDomain = wire.NewSet(
	courtRepository.New,
	courtService.New,
	courtHandler.New,
	wire.Bind(new(courtRepository.Querier), new(*courtRepository.Queries)),
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	bookingService.NewScheduler,
	bookingHandler.New,
	wire.Bind(new(bookingRepository.Querier), new(*bookingRepository.Queries)),
)

var scheduleDomain = wire.NewSet(
	scheduleService.New,
	scheduleHandler.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	courtDomain,
	bookingDomain,
	scheduleDomain,
)

func InitializeApp(cfg *config.Config) (*Application, error) {
	wire.Build(
		// Infrastructure providers
		provideLogger,
		providePostgres,
		providePgxIface,
		provideValidator,
		provideRedis,
		provideRedisCache,
		provideJWT,
		provideRabbit,
		provideEventPublisher,

		domains,

		wire.Struct(new(http.Handlers), "*"),

		// HTTP server
		provideRouter,
		provideHTTPServer,

		// Application
		wire.Struct(new(Application), "*"),
	)

	return &Application{}, nil
}

func provideRouter(
	cfg *config.Config,
	l logger.Interface,
	h http.Handlers,
) *fiber.App {
	app := fiber.New()

	http.NewRouter(
		app,
		cfg,
		l,
		h,
	)

	return app
}

func provideLogger(cfg *config.Config) logger.Interface {
	return logger.New(cfg.Log.Level)
}

func provideJWT(cfg *config.Config) *jwt.JWT {
	jwt.Initialize(cfg.App.Name, cfg.JWT.Secret, jwt.ParseDuration(cfg.JWT.AccessTokenExpiry), jwt.ParseDuration(cfg.JWT.RefreshTokenExpiry))
	return jwt.GetInstance()
}

func providePostgres(cfg *config.Config, l logger.Interface) (*postgres.Postgres, error) {
	dsn := postgres.ConnectionBuilder(cfg.Pg.Host, cfg.Pg.Port, cfg.Pg.User, cfg.Pg.Password, cfg.Pg.Dbname, cfg.Pg.SSLMode)
	pg, err := postgres.New(dsn, postgres.MaxPoolSize(cfg.Pg.PoolMax))
	if err != nil {
		return nil, err
	}
	return pg, nil
}

func providePgxIface(pg *postgres.Postgres) postgres.PgxIface {
	return pg.Pool
}

func provideRedis(cfg *config.Config) (*redis.Redis, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	return redis.New(addr, cfg.Redis.Password, cfg.Redis.DB)
}

func provideRedisCache(r *redis.Redis, l logger.Interface) redis.IRedisCache {
	return redis.NewRedisCache(r.Client, l)
}

func provideValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// provideRabbit returns a nil client when the broker is disabled; the
// publisher falls back to a noop and the consumer is not started.
func provideRabbit(cfg *config.Config) (*rabbitmq.Client, error) {
	if !cfg.Rabbit.Enabled {
		return nil, nil
	}

	return rabbitmq.New(cfg.Rabbit.URL, cfg.Rabbit.Queue)
}

func provideEventPublisher(client *rabbitmq.Client, l logger.Interface) events.Publisher {
	if client == nil {
		return events.NewNoopPublisher()
	}

	return events.NewAmqpPublisher(client, l)
}

func provideHTTPServer(cfg *config.Config, app *fiber.App) *httpserver.Server {
	return httpserver.New(
		httpserver.Port(cfg.HTTP.Port),
		httpserver.App(app),
	)
}
