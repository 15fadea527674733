package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Default values.
const (
	DefaultDatabaseURL  = "mongodb://localhost:27017/todoapp"
	DefaultDatabaseName = "todoapp"
	DefaultHTTPAddr     = "0.0.0.0:5000"
	DefaultMCPAddr      = "0.0.0.0:8082"
	DefaultAPIURL       = "http://localhost:5000"
	DefaultPageSize     = 10
)

// ConfigFileEnv names the environment variable pointing at an optional TOML file.
const ConfigFileEnv = "TODOLIST_CONFIG"

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv    string `toml:"app_env"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	// Store
	DatabaseURL    string `toml:"database_url"`
	DatabaseDriver string `toml:"database_driver"`
	DatabaseName   string `toml:"database_name"`
	SQLitePath     string `toml:"sqlite_path"`

	// HTTP
	HTTPAddr           string        `toml:"http_addr"`
	HTTPReadTimeout    time.Duration `toml:"http_read_timeout"`
	HTTPWriteTimeout   time.Duration `toml:"http_write_timeout"`
	HTTPIdleTimeout    time.Duration `toml:"http_idle_timeout"`
	CORSAllowedOrigins []string      `toml:"cors_allowed_origins"`
	DefaultPageSize    int           `toml:"default_page_size"`

	// RabbitMQ
	RabbitMQURL      string `toml:"rabbitmq_url"`
	RabbitMQExchange string `toml:"rabbitmq_exchange"`

	// MCP
	MCPAddr      string `toml:"mcp_addr"`
	MCPAuthToken string `toml:"mcp_auth_token"`

	// Client
	APIURL string `toml:"api_url"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{
		AppEnv:             "development",
		LogLevel:           "info",
		DatabaseURL:        DefaultDatabaseURL,
		SQLitePath:         defaultSQLitePath(),
		HTTPAddr:           DefaultHTTPAddr,
		HTTPReadTimeout:    15 * time.Second,
		HTTPWriteTimeout:   15 * time.Second,
		HTTPIdleTimeout:    60 * time.Second,
		CORSAllowedOrigins: []string{"*"},
		DefaultPageSize:    DefaultPageSize,
		RabbitMQExchange:   "todolist.events",
		MCPAddr:            DefaultMCPAddr,
		APIURL:             DefaultAPIURL,
	}
}

// Load loads configuration from the file named by TODOLIST_CONFIG (if any)
// and environment variables.
func Load() (*Config, error) {
	return LoadFile(os.Getenv(ConfigFileEnv))
}

// LoadFile loads configuration with precedence defaults < TOML file < environment.
// An empty path skips the file.
func LoadFile(path string) (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := Defaults()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if cfg.DatabaseName == "" {
		cfg.DatabaseName = databaseNameFromURL(cfg.DatabaseURL)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.AppEnv = getEnv("APP_ENV", c.AppEnv)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)

	c.DatabaseURL = getEnv("DATABASE_URL", c.DatabaseURL)
	c.DatabaseDriver = getEnv("DATABASE_DRIVER", c.DatabaseDriver)
	c.DatabaseName = getEnv("DATABASE_NAME", c.DatabaseName)
	c.SQLitePath = getEnv("SQLITE_PATH", c.SQLitePath)

	c.HTTPAddr = getEnv("HTTP_ADDR", c.HTTPAddr)
	c.HTTPReadTimeout = getDurationEnv("HTTP_READ_TIMEOUT", c.HTTPReadTimeout)
	c.HTTPWriteTimeout = getDurationEnv("HTTP_WRITE_TIMEOUT", c.HTTPWriteTimeout)
	c.HTTPIdleTimeout = getDurationEnv("HTTP_IDLE_TIMEOUT", c.HTTPIdleTimeout)
	c.CORSAllowedOrigins = getListEnv("CORS_ALLOWED_ORIGINS", c.CORSAllowedOrigins)
	c.DefaultPageSize = getIntEnv("DEFAULT_PAGE_SIZE", c.DefaultPageSize)

	c.RabbitMQURL = getEnv("RABBITMQ_URL", c.RabbitMQURL)
	c.RabbitMQExchange = getEnv("RABBITMQ_EXCHANGE", c.RabbitMQExchange)

	c.MCPAddr = getEnv("MCP_ADDR", c.MCPAddr)
	c.MCPAuthToken = getEnv("MCP_AUTH_TOKEN", c.MCPAuthToken)

	c.APIURL = getEnv("TODOLIST_API_URL", c.APIURL)
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	var errs []error
	if c.DefaultPageSize <= 0 {
		errs = append(errs, fmt.Errorf("default page size must be positive, got %d", c.DefaultPageSize))
	}
	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("http address is required"))
	}
	if c.DatabaseURL == "" && c.DatabaseDriver == "" {
		errs = append(errs, errors.New("database url or driver is required"))
	}
	return errors.Join(errs...)
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// EventsEnabled reports whether a broker is configured.
func (c *Config) EventsEnabled() bool {
	return c.RabbitMQURL != ""
}

// databaseNameFromURL returns the path segment of a connection string,
// e.g. "todoapp" for mongodb://localhost:27017/todoapp.
func databaseNameFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return DefaultDatabaseName
	}
	name := strings.Trim(u.Path, "/")
	if name == "" || strings.Contains(name, "/") {
		return DefaultDatabaseName
	}
	return name
}

func defaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".todolist", "data.db")
	}
	return filepath.Join(home, ".todolist", "data.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
