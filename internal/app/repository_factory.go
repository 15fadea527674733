package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/database/mongodb"
	_ "github.com/felixgeelhaar/todolist/internal/shared/infrastructure/database/postgres" // Register PostgreSQL driver
	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/database/redis"
	_ "github.com/felixgeelhaar/todolist/internal/shared/infrastructure/database/sqlite" // Register SQLite driver
	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/migrations"
	"github.com/felixgeelhaar/todolist/internal/todo/domain"
	"github.com/felixgeelhaar/todolist/internal/todo/infrastructure/persistence"
	"github.com/felixgeelhaar/todolist/pkg/config"
)

// Store is an open todo repository plus the handle it was built on.
type Store struct {
	Driver database.Driver
	Repo   domain.Repository
	close  func() error
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

// DatabaseConfig maps application settings onto a store config.
func DatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		Driver:     database.Driver(cfg.DatabaseDriver),
		URL:        cfg.DatabaseURL,
		Name:       cfg.DatabaseName,
		SQLitePath: cfg.SQLitePath,
	}
}

// OpenStore connects to the configured backend and returns a ready
// repository. SQL backends are migrated first.
func OpenStore(ctx context.Context, cfg database.Config, logger *slog.Logger) (*Store, error) {
	driver := cfg.ResolvedDriver()
	if !driver.IsValid() {
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	store, err := openStore(ctx, driver, cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := store.Repo.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to ping %s store: %w", driver, err)
	}
	logger.Info("connected to document store", "driver", driver.String())
	return store, nil
}

func openStore(ctx context.Context, driver database.Driver, cfg database.Config, logger *slog.Logger) (*Store, error) {
	switch driver {
	case database.DriverMongo:
		client, err := mongodb.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver: driver,
			Repo:   persistence.NewMongoTodoRepository(client.Collection(persistence.CollectionName)),
			close:  client.Close,
		}, nil

	case database.DriverPostgres, database.DriverSQLite:
		conn, err := database.NewConnection(ctx, cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("running migrations", "driver", driver.String())
		if err := migrations.Run(ctx, conn); err != nil {
			_ = conn.Close()
			return nil, err
		}
		var repo domain.Repository = persistence.NewSQLiteTodoRepository(conn)
		if driver == database.DriverPostgres {
			repo = persistence.NewPostgresTodoRepository(conn)
		}
		return &Store{Driver: driver, Repo: repo, close: conn.Close}, nil

	case database.DriverRedis:
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver: driver,
			Repo:   persistence.NewRedisTodoRepository(client.Redis(), persistence.DefaultRedisPrefix),
			close:  client.Close,
		}, nil

	case database.DriverMemory:
		return &Store{Driver: driver, Repo: persistence.NewMemoryTodoRepository()}, nil
	}

	return nil, errors.New("unreachable driver " + driver.String())
}
