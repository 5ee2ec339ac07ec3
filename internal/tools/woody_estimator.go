package tools

import (
	"context"

	"github.com/averycrespi/mcp-apps/internal/estimate"
	"github.com/averycrespi/mcp-apps/internal/resources"

	"github.com/mark3labs/mcp-go/mcp"
)

// WoodyEstimatorTool opens the estimator app
type WoodyEstimatorTool struct {
	estimator *estimate.Estimator
}

// NewWoodyEstimatorTool creates a new estimator app tool
func NewWoodyEstimatorTool(estimator *estimate.Estimator) *WoodyEstimatorTool {
	return &WoodyEstimatorTool{
		estimator: estimator,
	}
}

// GetTool returns the MCP tool definition
func (t *WoodyEstimatorTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolWoodyEstimator,
		mcp.WithDescription("Opens Woody's Wild Guess, an interactive browser of LIRR capital projects with cost estimates."),
		mcp.WithTitleAnnotation("Woody's Wild Guess"),
		mcp.WithReadOnlyHintAnnotation(true),
		withApp(resources.WoodyEstimator),
	)
	return tool
}

// Handle processes the tool request
func (t *WoodyEstimatorTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(t.estimator.Quote()), nil
}
