package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/todolist/internal/todo/application"
	"github.com/felixgeelhaar/todolist/internal/todo/application/commands"
	"github.com/felixgeelhaar/todolist/internal/todo/application/queries"
	"github.com/felixgeelhaar/todolist/internal/todo/domain"
	"github.com/felixgeelhaar/todolist/pkg/config"
	"github.com/felixgeelhaar/todolist/pkg/observability"
)

// Container holds all application dependencies.
type Container struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *observability.InMemoryMetrics
	Health  *observability.HealthRegistry

	Store    *Store
	TodoRepo domain.Repository

	// Publishers
	EventPublisher eventbus.Publisher
	Events         *application.EventDispatcher

	// Command handlers
	CreateTodoHandler    *commands.CreateTodoHandler
	SetCompletionHandler *commands.SetCompletionHandler
	DeleteTodoHandler    *commands.DeleteTodoHandler

	// Query handlers
	ListTodosHandler *queries.ListTodosHandler
}

// NewContainer connects to the configured store and broker and wires the
// handlers.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	store, err := OpenStore(ctx, DatabaseConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	publisher, err := newPublisher(cfg, logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	c := wire(cfg, logger, store.Repo, publisher)
	c.Store = store
	c.Health.Register("store", observability.StoreHealthChecker(store.Driver.String(), store.Repo.Ping))
	if pinger, ok := publisher.(interface{ Ping(context.Context) error }); ok {
		c.Health.Register("broker", observability.BrokerHealthChecker(pinger.Ping))
	}

	logger.Info("container initialized",
		"driver", store.Driver.String(),
		"events", cfg.EventsEnabled(),
	)
	return c, nil
}

// NewContainerWithRepository wires handlers around an existing repository
// and publisher. A nil publisher drops events.
func NewContainerWithRepository(cfg *config.Config, logger *slog.Logger, repo domain.Repository, publisher eventbus.Publisher) *Container {
	if cfg == nil {
		cfg = config.Defaults()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if publisher == nil {
		publisher = eventbus.NewNoopPublisher(logger)
	}
	c := wire(cfg, logger, repo, publisher)
	c.Health.Register("store", observability.StoreHealthChecker("custom", repo.Ping))
	return c
}

func wire(cfg *config.Config, logger *slog.Logger, repo domain.Repository, publisher eventbus.Publisher) *Container {
	metrics := observability.NewInMemoryMetrics()
	events := application.NewEventDispatcher(publisher, logger, metrics)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Metrics:  metrics,
		Health:   observability.NewHealthRegistry(2 * time.Second),
		TodoRepo: repo,

		EventPublisher: publisher,
		Events:         events,

		CreateTodoHandler:    commands.NewCreateTodoHandler(repo, events, metrics),
		SetCompletionHandler: commands.NewSetCompletionHandler(repo, events, metrics),
		DeleteTodoHandler:    commands.NewDeleteTodoHandler(repo, events, metrics),
		ListTodosHandler:     queries.NewListTodosHandler(repo, cfg.DefaultPageSize, metrics),
	}
}

// newPublisher returns a breaker-guarded RabbitMQ publisher when a broker
// is configured, and a noop publisher otherwise. In development an
// unreachable broker falls back to noop.
func newPublisher(cfg *config.Config, logger *slog.Logger) (eventbus.Publisher, error) {
	if !cfg.EventsEnabled() {
		return eventbus.NewNoopPublisher(logger), nil
	}

	rabbit, err := eventbus.NewRabbitMQPublisher(eventbus.RabbitMQConfig{
		URL:      cfg.RabbitMQURL,
		Exchange: cfg.RabbitMQExchange,
	}, logger)
	if err != nil {
		if cfg.IsDevelopment() {
			logger.Warn("RabbitMQ not available, using noop publisher", "error", err)
			return eventbus.NewNoopPublisher(logger), nil
		}
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	return &guardedPublisher{
		BreakerPublisher: eventbus.NewBreakerPublisher(rabbit, eventbus.DefaultBreakerConfig(), logger),
		rabbit:           rabbit,
	}, nil
}

// guardedPublisher exposes the broker's Ping for health checks.
type guardedPublisher struct {
	*eventbus.BreakerPublisher
	rabbit *eventbus.RabbitMQPublisher
}

func (p *guardedPublisher) Ping(ctx context.Context) error {
	return p.rabbit.Ping(ctx)
}

// Close cleans up all resources.
func (c *Container) Close() {
	if c.EventPublisher != nil {
		if err := c.EventPublisher.Close(); err != nil {
			c.Logger.Warn("error closing event publisher", "error", err)
		}
	}

	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			c.Logger.Warn("error closing store", "driver", c.Store.Driver.String(), "error", err)
		} else {
			c.Logger.Info("store connection closed", "driver", c.Store.Driver.String())
		}
	}
}
