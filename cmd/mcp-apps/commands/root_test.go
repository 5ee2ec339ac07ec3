package commands

import (
	"testing"

	"github.com/averycrespi/mcp-apps/internal/config"
	"github.com/averycrespi/mcp-apps/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, key := range []string{config.EnvTransport, config.EnvHTTPAddr, config.EnvEndpoint, config.EnvLogLevel, config.EnvUIDir, config.EnvMetrics} {
		t.Setenv(key, "")
	}
	t.Cleanup(func() {
		for _, name := range []string{"addr", "endpoint", "log-level", "ui-dir", "no-metrics"} {
			rootCmd.PersistentFlags().Lookup(name).Changed = false
		}
		rootCmd.Flags().Lookup("transport").Changed = false
		transport = string(config.DefaultTransport)
		httpAddr = config.DefaultHTTPAddr
		endpoint = config.DefaultEndpoint
		logLevel = config.DefaultLogLevel
		uiDir = ""
		noMetrics = false
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	resetFlags(t)

	cfg, err := loadConfig(rootCmd, "")
	require.NoError(t, err)
	assert.Equal(t, types.TransportStdio, cfg.Transport)
	assert.Equal(t, ":3001", cfg.HTTPAddr)
	assert.True(t, cfg.Metrics)
}

func TestLoadConfigFlagsOverrideEnvironment(t *testing.T) {
	resetFlags(t)
	t.Setenv(config.EnvHTTPAddr, ":4000")
	t.Setenv(config.EnvLogLevel, "warn")

	require.NoError(t, rootCmd.PersistentFlags().Set("addr", ":5000"))
	require.NoError(t, rootCmd.PersistentFlags().Set("no-metrics", "true"))

	cfg, err := loadConfig(httpCmd, types.TransportHTTP)
	require.NoError(t, err)
	assert.Equal(t, types.TransportHTTP, cfg.Transport)
	assert.Equal(t, ":5000", cfg.HTTPAddr)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Metrics)
}

func TestLoadConfigForcedTransportWins(t *testing.T) {
	resetFlags(t)
	t.Setenv(config.EnvTransport, "http")

	cfg, err := loadConfig(stdioCmd, types.TransportStdio)
	require.NoError(t, err)
	assert.Equal(t, types.TransportStdio, cfg.Transport)
}

func TestLoadConfigTransportFlag(t *testing.T) {
	resetFlags(t)
	require.NoError(t, rootCmd.Flags().Set("transport", "http"))

	cfg, err := loadConfig(rootCmd, "")
	require.NoError(t, err)
	assert.Equal(t, types.TransportHTTP, cfg.Transport)
}

func TestLoadConfigRejectsInvalidFlags(t *testing.T) {
	resetFlags(t)
	require.NoError(t, rootCmd.PersistentFlags().Set("log-level", "loud"))

	_, err := loadConfig(rootCmd, "")
	assert.Error(t, err)
}
