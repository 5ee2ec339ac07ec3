package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/mcp-apps/internal/estimate"
	"github.com/averycrespi/mcp-apps/internal/projects"
	"github.com/averycrespi/mcp-apps/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// SearchProjectsTool handles project search requests
type SearchProjectsTool struct {
	catalog *projects.Catalog
	factors estimate.Factors
}

// NewSearchProjectsTool creates a new search projects tool
func NewSearchProjectsTool(catalog *projects.Catalog, factors estimate.Factors) *SearchProjectsTool {
	return &SearchProjectsTool{
		catalog: catalog,
		factors: factors,
	}
}

// GetTool returns the MCP tool definition
func (t *SearchProjectsTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolSearchProjects,
		mcp.WithDescription("Search LIRR capital projects by free text, category and status. All filters are optional and combined."),
		mcp.WithTitleAnnotation("Search LIRR projects"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("query", mcp.Description("Case-insensitive text matched against name, description, category, location and key components")),
		mcp.WithString("category", mcp.Description("Project category"), mcp.Enum(enumValues(projects.Categories)...)),
		mcp.WithString("status", mcp.Description("Project status"), mcp.Enum(enumValues(projects.Statuses)...)),
	)
	return tool
}

// Handle processes the tool request
func (t *SearchProjectsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := results.SearchProjectsToolArgs{
		Query:    mcp.ParseString(req, "query", ""),
		Category: mcp.ParseString(req, "category", ""),
		Status:   mcp.ParseString(req, "status", ""),
	}

	var status projects.Status
	if args.Status != "" {
		parsed, err := projects.ParseStatus(args.Status)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		status = parsed
	}

	matches := t.catalog.Search(args.Query)
	if args.Category != "" {
		matches = intersect(matches, t.catalog.ByCategory(args.Category))
	}
	if status != "" {
		matches = intersect(matches, t.catalog.ByStatus(status))
	}

	toolResult := results.SearchProjectsToolResult{
		Arguments: args,
		Count:     len(matches),
		Projects:  make([]results.ProjectSummary, 0, len(matches)),
	}
	for _, p := range matches {
		toolResult.Projects = append(toolResult.Projects, results.NewProjectSummary(p, t.factors))
	}

	if len(matches) == 0 {
		toolResult.Message = "No projects found. Try a broader query or remove the category and status filters."
	} else {
		toolResult.Message = fmt.Sprintf("Found %d projects.", len(matches))
	}

	return jsonResult(toolResult), nil
}

// intersect keeps the projects of a that also appear in b, in the order of a
func intersect(a, b []projects.Project) []projects.Project {
	ids := make(map[string]struct{}, len(b))
	for _, p := range b {
		ids[p.ID] = struct{}{}
	}
	out := make([]projects.Project, 0, len(a))
	for _, p := range a {
		if _, ok := ids[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}
