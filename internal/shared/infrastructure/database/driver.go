package database

import "strings"

// Driver represents a document store backend.
type Driver string

const (
	// DriverMongo represents MongoDB, the default document store.
	DriverMongo Driver = "mongodb"
	// DriverPostgres stores documents as JSONB in PostgreSQL.
	DriverPostgres Driver = "postgres"
	// DriverSQLite stores documents as JSON in a local SQLite file.
	DriverSQLite Driver = "sqlite"
	// DriverRedis stores documents as JSON strings in Redis.
	DriverRedis Driver = "redis"
	// DriverMemory keeps documents in process memory.
	DriverMemory Driver = "memory"
)

// String returns the string representation of the driver.
func (d Driver) String() string {
	return string(d)
}

// DetectDriver parses a connection string and returns the driver type.
// Returns DriverSQLite for empty URLs to enable zero-config local mode.
func DetectDriver(url string) Driver {
	if url == "" {
		return DriverSQLite
	}

	switch {
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		return DriverMongo
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(url, "redis://"), strings.HasPrefix(url, "rediss://"):
		return DriverRedis
	case url == "memory", strings.HasPrefix(url, "memory://"):
		return DriverMemory
	}

	if strings.HasPrefix(url, "sqlite://") ||
		strings.HasPrefix(url, "file:") ||
		strings.HasSuffix(url, ".db") ||
		strings.HasSuffix(url, ".sqlite") ||
		strings.HasSuffix(url, ".sqlite3") {
		return DriverSQLite
	}

	return DriverMongo
}

// IsValid returns true if the driver is a known type.
func (d Driver) IsValid() bool {
	switch d {
	case DriverMongo, DriverPostgres, DriverSQLite, DriverRedis, DriverMemory:
		return true
	default:
		return false
	}
}

// IsSQL reports whether the driver is served by a Connection.
func (d Driver) IsSQL() bool {
	return d == DriverPostgres || d == DriverSQLite
}
