package types

// Transport names how the MCP server talks to its host
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
)
