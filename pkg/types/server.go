package types

import "context"

// Server defines the MCP server interface
type Server interface {
	// ServeStdio serves MCP over stdin/stdout until the host disconnects or ctx is done
	ServeStdio(ctx context.Context) error
	// ServeHTTP serves MCP over streamable HTTP until ctx is done
	ServeHTTP(ctx context.Context) error
}
