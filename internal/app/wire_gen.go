// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"fmt"
	"github.com/courtbook/backend/config"
	"github.com/courtbook/backend/internal/delivery/http"
	"github.com/courtbook/backend/internal/domains/auth/handler"
	"github.com/courtbook/backend/internal/domains/auth/service"
	handler4 "github.com/courtbook/backend/internal/domains/bookings/handler"
	repository2 "github.com/courtbook/backend/internal/domains/bookings/repository"
	service4 "github.com/courtbook/backend/internal/domains/bookings/service"
	handler3 "github.com/courtbook/backend/internal/domains/courts/handler"
	"github.com/courtbook/backend/internal/domains/courts/repository"
	service3 "github.com/courtbook/backend/internal/domains/courts/service"
	handler5 "github.com/courtbook/backend/internal/domains/schedule/handler"
	service5 "github.com/courtbook/backend/internal/domains/schedule/service"
	handler2 "github.com/courtbook/backend/internal/domains/user/handler"
	repository3 "github.com/courtbook/backend/internal/domains/user/repository"
	service2 "github.com/courtbook/backend/internal/domains/user/service"
	"github.com/courtbook/backend/internal/events"
	"github.com/courtbook/backend/pkg/httpserver"
	"github.com/courtbook/backend/pkg/jwt"
	"github.com/courtbook/backend/pkg/logger"
	"github.com/courtbook/backend/pkg/postgres"
	"github.com/courtbook/backend/pkg/rabbitmq"
	"github.com/courtbook/backend/pkg/redis"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitializeApp(cfg *config.Config) (*Application, error) {
	loggerInterface := provideLogger(cfg)
	postgres, err := providePostgres(cfg, loggerInterface)
	if err != nil {
		return nil, err
	}
	pgxIface := providePgxIface(postgres)
	querier := provideUserQuerier()
	authService := service.New(pgxIface, querier, loggerInterface)
	validate := provideValidator()
	handlerHandler := handler.New(authService, loggerInterface, validate)
	redis, err := provideRedis(cfg)
	if err != nil {
		return nil, err
	}
	iRedisCache := provideRedisCache(redis, loggerInterface)
	userService := service2.New(pgxIface, querier, iRedisCache, cfg, loggerInterface)
	handler6 := handler2.New(userService, loggerInterface, validate)
	queries := repository.New()
	courtService := service3.New(pgxIface, queries, iRedisCache, cfg, loggerInterface)
	handler7 := handler3.New(courtService, loggerInterface, validate)
	repositoryQueries := repository2.New()
	client, err := provideRabbit(cfg)
	if err != nil {
		return nil, err
	}
	publisher := provideEventPublisher(client, loggerInterface)
	bookingService := service4.New(pgxIface, repositoryQueries, queries, publisher, iRedisCache, cfg, loggerInterface)
	handler8 := handler4.New(bookingService, loggerInterface, validate)
	scheduleService := service5.New(pgxIface, repositoryQueries, queries, iRedisCache, cfg, loggerInterface)
	handler9 := handler5.New(scheduleService, loggerInterface, validate)
	handlers := http.Handlers{
		Auth:     handlerHandler,
		User:     handler6,
		Court:    handler7,
		Booking:  handler8,
		Schedule: handler9,
	}
	app := provideRouter(cfg, loggerInterface, handlers)
	server := provideHTTPServer(cfg, app)
	jwt := provideJWT(cfg)
	schedulerService := service4.NewScheduler(pgxIface, repositoryQueries, cfg, loggerInterface)
	application := &Application{
		HTTPServer: server,
		Logger:     loggerInterface,
		PG:         postgres,
		Redis:      redis,
		Rabbit:     client,
		JWT:        jwt,
		Scheduler:  schedulerService,
	}
	return application, nil
}

// wire.go:

// Application represents the dependency-injected app
type Application struct {
	HTTPServer *httpserver.Server
	Logger     logger.Interface
	PG         *postgres.Postgres
	Redis      *redis.Redis
	Rabbit     *rabbitmq.Client
	JWT        *jwt.JWT
	Scheduler  service4.SchedulerService
}

func provideUserQuerier() repository3.Querier {
	return repository3.New()
}

var userDomain = wire.NewSet(
	provideUserQuerier, service2.New, handler2.New,
)

var authDomain = wire.NewSet(service.New, handler.New)

var courtDomain = wire.NewSet(repository.New, service3.New, handler3.New, wire.Bind(new(repository.Querier), new(*repository.Queries)))

var bookingDomain = wire.NewSet(repository2.New, service4.New, service4.NewScheduler, handler4.New, wire.Bind(new(repository2.Querier), new(*repository2.Queries)))

var scheduleDomain = wire.NewSet(service5.New, handler5.New)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	courtDomain,
	bookingDomain,
	scheduleDomain,
)

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
	return httpserver.New(httpserver.Port(cfg.HTTP.Port), httpserver.App(app))
}
