package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/mcp-apps/internal/color"
	"github.com/averycrespi/mcp-apps/internal/resources"

	"github.com/mark3labs/mcp-go/mcp"
)

// ColorPickerTool opens the color picker app
type ColorPickerTool struct{}

// NewColorPickerTool creates a new color picker tool
func NewColorPickerTool() *ColorPickerTool {
	return &ColorPickerTool{}
}

// GetTool returns the MCP tool definition
func (t *ColorPickerTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolColorPicker,
		mcp.WithDescription("Opens an interactive color picker interface to select colors in various formats (HEX, RGB, HSL)."),
		mcp.WithTitleAnnotation("Color Picker"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("initialColor",
			mcp.Description(fmt.Sprintf("Initial color to display in hex format (e.g., '#FF5733'). Defaults to '%s'.", color.DefaultHex)),
		),
		withApp(resources.ColorPicker),
	)
	return tool
}

// Handle processes the tool request
func (t *ColorPickerTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	initialColor := mcp.ParseString(req, "initialColor", "")
	if initialColor == "" {
		initialColor = color.DefaultHex
	}

	hex, err := color.ParseHex(initialColor)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rgb, err := color.HexToRGB(hex)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Color picker initialized with color: %s\nRGB: %s\nHSL: %s",
		hex, rgb, rgb.HSL())), nil
}
