package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/mcp-apps/internal/estimate"
	"github.com/averycrespi/mcp-apps/internal/projects"
	"github.com/averycrespi/mcp-apps/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// EstimateCostTool handles cost estimate requests
type EstimateCostTool struct {
	catalog   *projects.Catalog
	estimator *estimate.Estimator
}

// NewEstimateCostTool creates a new estimate cost tool
func NewEstimateCostTool(catalog *projects.Catalog, estimator *estimate.Estimator) *EstimateCostTool {
	return &EstimateCostTool{
		catalog:   catalog,
		estimator: estimator,
	}
}

// GetTool returns the MCP tool definition
func (t *EstimateCostTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolEstimateCost,
		mcp.WithDescription("Estimate the cost of an LIRR project, returning a low/base/high band and Woody's wild guess in millions of dollars. "+
			"Pass either project_id, or base_cost with an optional category."),
		mcp.WithTitleAnnotation("Estimate project cost"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("project_id", mcp.Description("Estimate an existing project using its estimated cost and category")),
		mcp.WithNumber("base_cost", mcp.Description("Base cost in millions of dollars, used when project_id is not given")),
		mcp.WithString("category", mcp.Description("Project category applied to base_cost"), mcp.Enum(enumValues(projects.Categories)...)),
		mcp.WithString("risk_level",
			mcp.Description("Risk level. Defaults to the project's derived risk, or 'medium' for a bare base_cost"),
			mcp.Enum(enumValues(estimate.RiskLevels)...),
		),
	)
	return tool
}

// Handle processes the tool request
func (t *EstimateCostTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID := mcp.ParseString(req, "project_id", "")
	riskLevel := mcp.ParseString(req, "risk_level", "")

	var (
		args   results.EstimateCostToolArgs
		result estimate.Result
		name   string
	)

	if projectID != "" {
		p, ok := t.catalog.Get(projectID)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("Project not found: %s", projectID)), nil
		}

		var level estimate.RiskLevel
		if riskLevel != "" {
			parsed, err := estimate.ParseRiskLevel(riskLevel)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			level = parsed
		} else {
			level = projects.RiskLevelFor(p)
		}

		args = results.EstimateCostToolArgs{
			ProjectID: p.ID,
			BaseCost:  p.EstimatedCost,
			Category:  string(p.Category),
			RiskLevel: level,
		}
		name = p.Name
		result = projects.Estimate(t.estimator, p, level)
	} else {
		if _, ok := req.GetArguments()["base_cost"]; !ok {
			return mcp.NewToolResultError("either project_id or base_cost parameter is required"), nil
		}

		request, err := estimate.NewRequest(
			mcp.ParseFloat64(req, "base_cost", 0),
			mcp.ParseString(req, "category", ""),
			riskLevel,
		)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		args = results.EstimateCostToolArgs{
			BaseCost:  request.BaseCost,
			Category:  request.Category,
			RiskLevel: request.RiskLevel,
		}
		result = t.estimator.EstimateRequest(request)
	}

	factors := t.estimator.Factors()
	band, _ := factors.RiskBand(args.RiskLevel)

	toolResult := results.EstimateCostToolResult{
		Arguments:          args,
		ProjectName:        name,
		CategoryMultiplier: factors.CategoryMultiplier(args.Category),
		RiskLabel:          band.Label,
		Estimate:           result,
		AverageOverrun:     factors.HistoricalOverruns.Average,
		Quote:              t.estimator.Quote(),
	}

	return jsonResult(toolResult), nil
}
