package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/averycrespi/mcp-apps/internal/config"
	"github.com/averycrespi/mcp-apps/internal/logging"
	"github.com/averycrespi/mcp-apps/internal/server"
	"github.com/averycrespi/mcp-apps/pkg/project"
	"github.com/averycrespi/mcp-apps/pkg/types"

	"github.com/spf13/cobra"
)

var (
	transport string
	httpAddr  string
	endpoint  string
	logLevel  string
	uiDir     string
	noMetrics bool
)

var rootCmd = &cobra.Command{
	Use:   "mcp-apps",
	Short: "MCP server for the color picker and Woody's Wild Guess apps",
	Long: `mcp-apps serves two MCP Apps, a color picker and Woody's Wild Guess,
together with tools to search and estimate LIRR capital projects.

Settings are read from MCP_APPS_* environment variables (or a .env file)
and can be overridden with flags. Use 'mcp-apps stdio' for desktop hosts
and 'mcp-apps http' to expose a streamable HTTP endpoint.`,
	Version:      project.Version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, "")
	},
}

func init() {
	rootCmd.Flags().StringVar(&transport, "transport", string(config.DefaultTransport), "Transport (stdio|http)")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&httpAddr, "addr", config.DefaultHTTPAddr, "Listen address for the HTTP transport")
	pf.StringVar(&endpoint, "endpoint", config.DefaultEndpoint, "MCP endpoint path for the HTTP transport")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "Log level (debug|info|warn|error)")
	pf.StringVar(&uiDir, "ui-dir", "", "Directory with built app HTML overriding the embedded UI")
	pf.BoolVar(&noMetrics, "no-metrics", false, "Disable tool metrics and the /metrics endpoint")

	rootCmd.AddCommand(stdioCmd)
	rootCmd.AddCommand(httpCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the environment and applies the flags the user set.
// A non-empty forced transport wins over both.
func loadConfig(cmd *cobra.Command, forced types.Transport) (*types.Config, error) {
	cfg := config.FromEnv()

	if flagChanged(cmd, "transport") {
		cfg.Transport = types.Transport(transport)
	}
	if flagChanged(cmd, "addr") {
		cfg.HTTPAddr = httpAddr
	}
	if flagChanged(cmd, "endpoint") {
		cfg.Endpoint = endpoint
	}
	if flagChanged(cmd, "log-level") {
		cfg.LogLevel = logLevel
	}
	if flagChanged(cmd, "ui-dir") {
		cfg.UIDir = uiDir
	}
	if flagChanged(cmd, "no-metrics") {
		cfg.Metrics = !noMetrics
	}
	if forced != "" {
		cfg.Transport = forced
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}

func run(cmd *cobra.Command, forced types.Transport) error {
	cfg, err := loadConfig(cmd, forced)
	if err != nil {
		return err
	}

	if _, err := logging.Setup(os.Stderr, cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := server.NewAppServer(cfg)
	switch cfg.Transport {
	case types.TransportHTTP:
		return s.ServeHTTP(ctx)
	default:
		return s.ServeStdio(ctx)
	}
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
