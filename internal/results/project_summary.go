package results

import (
	"github.com/averycrespi/mcp-apps/internal/estimate"
	"github.com/averycrespi/mcp-apps/internal/projects"
)

// ProjectSummary represents a project together with its derived risk
type ProjectSummary struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Category       projects.Category  `json:"category"`
	Description    string             `json:"description"`
	EstimatedCost  float64            `json:"estimated_cost"`
	ActualCost     *float64           `json:"actual_cost,omitempty"`
	StartYear      int                `json:"start_year"`
	CompletionYear string             `json:"completion_year"`
	Status         projects.Status    `json:"status"`
	Location       string             `json:"location"`
	KeyComponents  []string           `json:"key_components"`
	RiskLevel      estimate.RiskLevel `json:"risk_level"`
	RiskLabel      string             `json:"risk_label"`
}

// NewProjectSummary builds a summary using the risk bands from factors
func NewProjectSummary(p projects.Project, factors estimate.Factors) ProjectSummary {
	level := projects.RiskLevelFor(p)
	band, _ := factors.RiskBand(level)
	return ProjectSummary{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		Description:    p.Description,
		EstimatedCost:  p.EstimatedCost,
		ActualCost:     p.ActualCost,
		StartYear:      p.StartYear,
		CompletionYear: p.CompletionLabel(),
		Status:         p.Status,
		Location:       p.Location,
		KeyComponents:  p.KeyComponents,
		RiskLevel:      level,
		RiskLabel:      band.Label,
	}
}
