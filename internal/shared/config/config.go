package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"starwars-api/internal/shared/utils"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Logging  LoggingConfig
	Seed     SeedConfig
}

type ServerConfig struct {
	Port            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	TrustProxy      bool
}

type DatabaseConfig struct {
	URL             string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	Debug          bool
}

type LoggingConfig struct {
	Level      string
	JSONFormat bool
}

type SeedConfig struct {
	Enabled bool
	File    string
}

// Load reads .env (when present) and the process environment into a validated Config
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using system environment variables")
	}

	config := &Config{
		Server:   loadServerConfig(),
		Database: loadDatabaseConfig(),
		CORS:     loadCORSConfig(),
		Seed:     loadSeedConfig(),
	}
	config.Logging = loadLoggingConfig(config.IsProduction())

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:            utils.GetEnv("PORT", "3000"),
		Environment:     utils.GetEnv("ENVIRONMENT", "development"),
		ReadTimeout:     utils.GetEnvSeconds("SERVER_READ_TIMEOUT_SECONDS", 15),
		WriteTimeout:    utils.GetEnvSeconds("SERVER_WRITE_TIMEOUT_SECONDS", 15),
		IdleTimeout:     utils.GetEnvSeconds("SERVER_IDLE_TIMEOUT_SECONDS", 60),
		ShutdownTimeout: utils.GetEnvSeconds("SERVER_SHUTDOWN_TIMEOUT_SECONDS", 10),
		TrustProxy:      utils.GetEnvBool("TRUST_PROXY", false),
	}
}

func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URL:             utils.GetEnv("DATABASE_URL", ""),
		SQLitePath:      utils.GetEnv("SQLITE_PATH", "/tmp/test.db"),
		MaxOpenConns:    utils.GetEnvInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    utils.GetEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: time.Duration(utils.GetEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 5)) * time.Minute,
	}
}

func loadCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: utils.GetEnvList("CORS_ALLOWED_ORIGINS", "*"),
		Debug:          utils.GetEnvBool("CORS_DEBUG", false),
	}
}

// loadLoggingConfig defaults to JSON output in production; LOG_FORMAT overrides it.
func loadLoggingConfig(production bool) LoggingConfig {
	format := utils.GetEnv("LOG_FORMAT", "")

	jsonFormat := production
	if format != "" {
		jsonFormat = format == "json"
	}

	return LoggingConfig{
		Level:      utils.GetEnv("LOG_LEVEL", "debug"),
		JSONFormat: jsonFormat,
	}
}

func loadSeedConfig() SeedConfig {
	return SeedConfig{
		Enabled: utils.GetEnvBool("SEED_DATA", false),
		File:    utils.GetEnv("SEED_FILE", ""),
	}
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if _, _, err := c.Database.Source(); err != nil {
		return err
	}

	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be at least 1")
	}

	if len(c.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS must list at least one origin")
	}

	return nil
}

// Source resolves the driver name and data source for the configured store.
// An unset DATABASE_URL falls back to the embedded SQLite file.
func (d DatabaseConfig) Source() (driver string, dsn string, err error) {
	url := strings.TrimSpace(d.URL)

	switch {
	case url == "":
		if d.SQLitePath == "" {
			return "", "", fmt.Errorf("SQLITE_PATH is required when DATABASE_URL is unset")
		}
		return DriverSQLite, sqliteDSN(d.SQLitePath), nil
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DriverPostgres, url, nil
	case strings.HasPrefix(url, "sqlite://"):
		// sqlite:////tmp/test.db names the absolute path /tmp/test.db
		path := strings.TrimPrefix(url, "sqlite://")
		if path == "" || path == "/" {
			return "", "", fmt.Errorf("DATABASE_URL %q has no database path", url)
		}
		if strings.HasPrefix(path, "//") {
			path = path[1:]
		} else {
			path = strings.TrimPrefix(path, "/")
		}
		return DriverSQLite, sqliteDSN(path), nil
	default:
		return "", "", fmt.Errorf("unsupported DATABASE_URL scheme: %q", url)
	}
}

func sqliteDSN(path string) string {
	return "file:" + path + "?_foreign_keys=on&_busy_timeout=5000"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) Addr() string {
	return ":" + c.Server.Port
}
