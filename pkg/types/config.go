package types

// Config represents the configuration for the mcp-apps server
type Config struct {
	Transport Transport `json:"transport" validate:"required,oneof=stdio http"`
	HTTPAddr  string    `json:"http_addr" validate:"required_if=Transport http"`
	Endpoint  string    `json:"endpoint" validate:"required,startswith=/"`
	LogLevel  string    `json:"log_level" validate:"required,oneof=debug info warn error"`
	UIDir     string    `json:"ui_dir,omitempty" validate:"omitempty,dir"`
	Metrics   bool      `json:"metrics"`
}
