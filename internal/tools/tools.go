package tools

import (
	"encoding/json"
	"fmt"

	"github.com/averycrespi/mcp-apps/internal/resources"
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names
const (
	ToolColorPicker    = "color-picker"
	ToolWoodyEstimator = "woody-estimator"
	ToolSearchProjects = "search_projects"
	ToolGetProject     = "get_project"
	ToolEstimateCost   = "estimate_cost"
)

// withApp links a tool to the UI resource hosts should render for it
func withApp(app resources.App) mcp.ToolOption {
	return func(t *mcp.Tool) {
		t.Meta = mcp.NewMetaFromMap(map[string]any{
			"ui": map[string]any{
				"resourceUri": app.URI(),
			},
		})
	}
}

func enumValues[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// jsonResult marshals a tool result as indented JSON text
func jsonResult(v any) *mcp.CallToolResult {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err))
	}
	return mcp.NewToolResultText(string(jsonBytes))
}
