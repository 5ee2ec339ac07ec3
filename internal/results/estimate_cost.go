package results

import "github.com/averycrespi/mcp-apps/internal/estimate"

// EstimateCostToolArgs represents the resolved arguments of the estimate_cost tool
type EstimateCostToolArgs struct {
	ProjectID string             `json:"project_id,omitempty"`
	BaseCost  float64            `json:"base_cost"`
	Category  string             `json:"category"`
	RiskLevel estimate.RiskLevel `json:"risk_level"`
}

// EstimateCostToolResult represents the result of the estimate_cost tool.
// All amounts are in millions of dollars.
type EstimateCostToolResult struct {
	Arguments          EstimateCostToolArgs `json:"arguments"`
	ProjectName        string               `json:"project_name,omitempty"`
	CategoryMultiplier float64              `json:"category_multiplier"`
	RiskLabel          string               `json:"risk_label"`
	Estimate           estimate.Result      `json:"estimate"`
	AverageOverrun     float64              `json:"historical_average_overrun"`
	Quote              string               `json:"quote"`
}
