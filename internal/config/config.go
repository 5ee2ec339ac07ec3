package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/averycrespi/mcp-apps/pkg/types"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment variables
const (
	EnvTransport = "MCP_APPS_TRANSPORT"
	EnvHTTPAddr  = "MCP_APPS_HTTP_ADDR"
	EnvEndpoint  = "MCP_APPS_ENDPOINT"
	EnvLogLevel  = "MCP_APPS_LOG_LEVEL"
	EnvUIDir     = "MCP_APPS_UI_DIR"
	EnvMetrics   = "MCP_APPS_METRICS"
)

// Defaults
const (
	DefaultTransport = types.TransportStdio
	DefaultHTTPAddr  = ":3001"
	DefaultEndpoint  = "/mcp"
	DefaultLogLevel  = "info"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and validates the configuration from the environment and an optional .env file
func Load() (*types.Config, error) {
	cfg := FromEnv()
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv reads the configuration without validating it, so callers can apply overrides first
func FromEnv() *types.Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	return &types.Config{
		Transport: types.Transport(strings.ToLower(getEnv(EnvTransport, string(DefaultTransport)))),
		HTTPAddr:  getEnv(EnvHTTPAddr, DefaultHTTPAddr),
		Endpoint:  getEnv(EnvEndpoint, DefaultEndpoint),
		LogLevel:  strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		UIDir:     getEnv(EnvUIDir, ""),
		Metrics:   getEnvAsBool(EnvMetrics, true),
	}
}

// Validate checks a configuration, reporting every invalid field
func Validate(cfg *types.Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		slog.Warn("Invalid boolean in environment, using default", "key", key, "value", valueStr, "default", defaultValue)
		return defaultValue
	}

	return value
}
