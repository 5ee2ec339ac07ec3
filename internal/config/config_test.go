package config

import (
	"testing"

	"github.com/averycrespi/mcp-apps/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{EnvTransport, EnvHTTPAddr, EnvEndpoint, EnvLogLevel, EnvUIDir, EnvMetrics} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &types.Config{
		Transport: types.TransportStdio,
		HTTPAddr:  ":3001",
		Endpoint:  "/mcp",
		LogLevel:  "info",
		Metrics:   true,
	}, cfg)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	uiDir := t.TempDir()
	t.Setenv(EnvTransport, "HTTP")
	t.Setenv(EnvHTTPAddr, "127.0.0.1:9000")
	t.Setenv(EnvEndpoint, "/apps/mcp")
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvUIDir, uiDir)
	t.Setenv(EnvMetrics, "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, types.TransportHTTP, cfg.Transport)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, "/apps/mcp", cfg.Endpoint)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, uiDir, cfg.UIDir)
	assert.False(t, cfg.Metrics)
}

func TestLoadInvalidBoolUsesDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvMetrics, "sometimes")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Metrics)
}

func TestValidate(t *testing.T) {
	valid := func() *types.Config {
		return &types.Config{
			Transport: types.TransportHTTP,
			HTTPAddr:  ":3001",
			Endpoint:  "/mcp",
			LogLevel:  "info",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*types.Config)
		wantErr bool
	}{
		{
			name:   "Valid",
			mutate: func(*types.Config) {},
		},
		{
			name:    "Unknown transport",
			mutate:  func(c *types.Config) { c.Transport = "grpc" },
			wantErr: true,
		},
		{
			name:    "HTTP without address",
			mutate:  func(c *types.Config) { c.HTTPAddr = "" },
			wantErr: true,
		},
		{
			name: "Stdio without address",
			mutate: func(c *types.Config) {
				c.Transport = types.TransportStdio
				c.HTTPAddr = ""
			},
		},
		{
			name:    "Relative endpoint",
			mutate:  func(c *types.Config) { c.Endpoint = "mcp" },
			wantErr: true,
		},
		{
			name:    "Unknown log level",
			mutate:  func(c *types.Config) { c.LogLevel = "trace" },
			wantErr: true,
		},
		{
			name:    "Missing UI directory",
			mutate:  func(c *types.Config) { c.UIDir = "/does/not/exist" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
