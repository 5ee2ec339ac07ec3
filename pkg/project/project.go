package project

// Project metadata reported to MCP hosts
const (
	Name    = "MCP Apps"
	Version = "1.0.0"
)
