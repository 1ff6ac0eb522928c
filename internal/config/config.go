package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Journal backends
const (
	JournalBackendNone     = "none"
	JournalBackendPostgres = "postgres"
	JournalBackendDynamoDB = "dynamodb"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Gateway  GatewayConfig
	Journal  JournalConfig
	Database DatabaseConfig
	Security SecurityConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// GatewayConfig holds the E4 merchant credentials and endpoint selection
type GatewayConfig struct {
	Login    string
	Password string
	TestURL  string
	LiveURL  string
	Timeout  time.Duration
	TestMode bool
}

// JournalConfig selects where gateway results are recorded
type JournalConfig struct {
	Backend          string
	DynamoDBTable    string
	DynamoDBEndpoint string
	AWSRegion        string
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	ConnMaxLifetime time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
}

// SecurityConfig holds API authentication configuration
type SecurityConfig struct {
	APIKey string
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level string // debug, info, warn, error
}

// Load loads configuration from a .env file, if present, and environment variables
func Load() (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env is optional

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", "15s"),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", "75s"),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", "60s"),
		},
		Gateway: GatewayConfig{
			Login:    getEnv("E4_LOGIN", ""),
			Password: getEnv("E4_PASSWORD", ""),
			TestMode: getEnvAsBool("E4_TEST_MODE", true),
			TestURL:  getEnv("E4_TEST_URL", ""),
			LiveURL:  getEnv("E4_LIVE_URL", ""),
			Timeout:  getEnvAsDuration("E4_TIMEOUT", "60s"),
		},
		Journal: JournalConfig{
			Backend:          strings.ToLower(getEnv("JOURNAL_BACKEND", JournalBackendNone)),
			DynamoDBTable:    getEnv("DYNAMODB_TABLE", "e4_transactions"),
			DynamoDBEndpoint: getEnv("DYNAMODB_ENDPOINT", ""),
			AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "e4gateway"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", "5m"),
		},
		Security: SecurityConfig{
			APIKey: getEnv("API_KEY", ""),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	if c.Gateway.Login == "" {
		return fmt.Errorf("E4_LOGIN is required")
	}
	if c.Gateway.Password == "" {
		return fmt.Errorf("E4_PASSWORD is required")
	}
	if c.Gateway.Timeout <= 0 {
		return fmt.Errorf("gateway timeout must be positive, got %s", c.Gateway.Timeout)
	}

	switch c.Journal.Backend {
	case JournalBackendNone:
	case JournalBackendPostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("database host cannot be empty")
		}
		if c.Database.DBName == "" {
			return fmt.Errorf("database name cannot be empty")
		}
	case JournalBackendDynamoDB:
		if c.Journal.DynamoDBTable == "" {
			return fmt.Errorf("dynamodb table cannot be empty")
		}
	default:
		return fmt.Errorf("invalid journal backend: %s (must be none, postgres, or dynamodb)", c.Journal.Backend)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	return nil
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to parsing the default if provided value is invalid
		duration, err = time.ParseDuration(defaultValue)
		if err != nil {
			return 0
		}
	}
	return duration
}
