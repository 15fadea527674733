package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultName is the database used when none is configured.
const DefaultName = "todoapp"

// Config holds store connection configuration.
type Config struct {
	// Driver specifies the backend to use.
	// If empty or "auto", it will be detected from the URL.
	Driver Driver

	// URL is the connection string, e.g. "mongodb://localhost:27017/todoapp".
	URL string

	// Name is the database name for MongoDB.
	Name string

	// SQLitePath is the path to the SQLite database file.
	// Defaults to ~/.todolist/data.db
	SQLitePath string

	// MaxConns is the maximum number of pooled connections (PostgreSQL only).
	MaxConns int
}

// ResolvedDriver returns the configured driver, detecting it from the URL
// when unset.
func (c Config) ResolvedDriver() Driver {
	if c.Driver == "" || c.Driver == "auto" {
		return DetectDriver(c.URL)
	}
	return c.Driver
}

// DatabaseName returns the configured database name or DefaultName.
func (c Config) DatabaseName() string {
	if c.Name == "" {
		return DefaultName
	}
	return c.Name
}

// NewConnection opens a SQL-backed document store connection.
func NewConnection(ctx context.Context, cfg Config) (Connection, error) {
	switch driver := cfg.ResolvedDriver(); driver {
	case DriverPostgres:
		if newPostgresConnection == nil {
			return nil, fmt.Errorf("postgres driver not registered")
		}
		return newPostgresConnection(ctx, cfg)
	case DriverSQLite:
		if newSQLiteConnection == nil {
			return nil, fmt.Errorf("sqlite driver not registered")
		}
		return newSQLiteConnection(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported sql driver: %s", driver)
	}
}

// DefaultSQLitePath returns the default SQLite database path.
func DefaultSQLitePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".todolist", "data.db")
}

// EnsureDirectory creates the parent directory for a file path if it doesn't exist.
func EnsureDirectory(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

// newPostgresConnection is set by the postgres package's init.
var newPostgresConnection func(ctx context.Context, cfg Config) (Connection, error)

// newSQLiteConnection is set by the sqlite package's init.
var newSQLiteConnection func(ctx context.Context, cfg Config) (Connection, error)

// RegisterPostgresDriver registers the PostgreSQL connection factory.
func RegisterPostgresDriver(fn func(ctx context.Context, cfg Config) (Connection, error)) {
	newPostgresConnection = fn
}

// RegisterSQLiteDriver registers the SQLite connection factory.
func RegisterSQLiteDriver(fn func(ctx context.Context, cfg Config) (Connection, error)) {
	newSQLiteConnection = fn
}
