package commands

import (
	"github.com/averycrespi/mcp-apps/pkg/types"

	"github.com/spf13/cobra"
)

var stdioCmd = &cobra.Command{
	Use:   "stdio",
	Short: "Serve MCP over stdin/stdout",
	Long: `Serve MCP over stdin/stdout for desktop hosts.

Logs are written to stderr; stdout carries only protocol messages.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, types.TransportStdio)
	},
}

var httpCmd = &cobra.Command{
	Use:   "http",
	Short: "Serve MCP over streamable HTTP",
	Long: `Serve MCP over streamable HTTP.

Besides the MCP endpoint the server exposes /health, /healthz and,
unless disabled, /metrics.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, types.TransportHTTP)
	},
}
