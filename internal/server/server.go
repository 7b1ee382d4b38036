// Package server assembles the stores, services and Fiber app.
package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"userblog/internal/config"
	"userblog/internal/events"
	"userblog/internal/handlers"
	"userblog/internal/metrics"
	"userblog/internal/middleware"
	"userblog/internal/repositories"
	"userblog/internal/services"
)

// Stores bundles the two record stores.
type Stores struct {
	Users repositories.UserRepository
	Posts repositories.PostRepository
}

// NewStores builds and seeds the stores selected by cfg.
func NewStores(cfg config.StoreConfig) (*Stores, error) {
	var stores Stores
	switch cfg.Driver {
	case config.StoreMemory:
		stores.Users = repositories.NewMemoryUserRepository(nil)
		stores.Posts = repositories.NewMemoryPostRepository(nil)
	case config.StoreSQLite:
		db, err := repositories.OpenSQLite(cfg.SQLiteDSN)
		if err != nil {
			return nil, err
		}
		stores.Users = repositories.NewGORMUserRepository(db, nil)
		stores.Posts = repositories.NewGORMPostRepository(db, nil)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}

	if err := repositories.SeedUsers(stores.Users); err != nil {
		return nil, err
	}
	if err := repositories.SeedPosts(stores.Posts); err != nil {
		return nil, err
	}
	return &stores, nil
}

// Server is a ready-to-listen application.
type Server struct {
	App     *fiber.App
	Bus     *events.Bus
	Metrics *metrics.Metrics

	cfg    *config.Config
	cancel context.CancelFunc
}

// New wires stores, services, the event bus and the HTTP routes. sink, when
// not nil, receives every event.
func New(cfg *config.Config, stores *Stores, sink events.Sink, logger zerolog.Logger) (*Server, error) {
	m := metrics.New()
	bus := events.NewBus(cfg.Events.BufferSize, logger)

	ctx, cancel := context.WithCancel(context.Background())
	topics := []string{events.TopicUserCreated, events.TopicPostCreated}
	if err := events.LogEvents(ctx, bus, topics...); err != nil {
		cancel()
		return nil, err
	}
	if sink != nil {
		if err := events.Forward(ctx, bus, sink, topics...); err != nil {
			cancel()
			return nil, err
		}
	}

	validate := services.NewValidator()
	common := []services.Option{
		services.WithValidator(validate),
		services.WithPublisher(bus),
		services.WithMetrics(m),
		services.WithLogger(logger),
	}
	userService := services.NewUserService(stores.Users,
		append(common, services.WithPasswordHashing(cfg.Security.HashPasswords))...)
	postService := services.NewPostService(stores.Posts, common...)

	app := fiber.New(fiber.Config{
		AppName:               "userblog",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger),
	})
	app.Use(middleware.RequestLogger(logger, m))
	app.Use(recover.New())

	handlers.NewUserHandler(userService, logger).RegisterRoutes(app)
	handlers.NewPostHandler(postService, logger).RegisterRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})
	if cfg.Metrics.Enabled {
		app.Get(cfg.Metrics.Path, adaptor.HTTPHandler(m.Handler()))
	}

	return &Server{
		App:     app,
		Bus:     bus,
		Metrics: m,
		cfg:     cfg,
		cancel:  cancel,
	}, nil
}

// Listen serves HTTP on the configured address until Shutdown.
func (s *Server) Listen() error {
	return s.App.Listen(s.cfg.Server.Addr)
}

// Shutdown stops the HTTP server and the event bus.
func (s *Server) Shutdown() error {
	var errs []error
	if err := s.App.ShutdownWithTimeout(s.cfg.Server.ShutdownTimeout); err != nil {
		errs = append(errs, fmt.Errorf("failed to shut down http server: %w", err))
	}
	s.cancel()
	if err := s.Bus.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close event bus: %w", err))
	}
	return errors.Join(errs...)
}

// errorHandler renders errors that escape the handlers, such as unknown
// routes and recovered panics, in the same {error} shape.
func errorHandler(logger zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}
		if code >= fiber.StatusInternalServerError {
			logger.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		}
		return c.Status(code).JSON(fiber.Map{"error": message})
	}
}
