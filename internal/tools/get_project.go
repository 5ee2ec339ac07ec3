package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/mcp-apps/internal/estimate"
	"github.com/averycrespi/mcp-apps/internal/projects"
	"github.com/averycrespi/mcp-apps/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetProjectTool handles project lookups by id
type GetProjectTool struct {
	catalog *projects.Catalog
	factors estimate.Factors
}

// NewGetProjectTool creates a new get project tool
func NewGetProjectTool(catalog *projects.Catalog, factors estimate.Factors) *GetProjectTool {
	return &GetProjectTool{
		catalog: catalog,
		factors: factors,
	}
}

// GetTool returns the MCP tool definition
func (t *GetProjectTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolGetProject,
		mcp.WithDescription("Get a single LIRR capital project by its id"),
		mcp.WithTitleAnnotation("Get LIRR project"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("project_id", mcp.Required(), mcp.Description("Project id from search_projects, e.g. 'mle'")),
	)
	return tool
}

// Handle processes the tool request
func (t *GetProjectTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID := mcp.ParseString(req, "project_id", "")
	if projectID == "" {
		return mcp.NewToolResultError("project_id parameter is required"), nil
	}

	toolResult := results.GetProjectToolResult{ProjectID: projectID}

	p, ok := t.catalog.Get(projectID)
	if !ok {
		toolResult.Message = fmt.Sprintf("No project found with id '%s'. "+
			"Use %s to list project ids.", projectID, ToolSearchProjects)
		return jsonResult(toolResult), nil
	}

	summary := results.NewProjectSummary(p, t.factors)
	toolResult.Project = &summary
	toolResult.Message = fmt.Sprintf("Found project '%s'.", p.Name)

	return jsonResult(toolResult), nil
}
