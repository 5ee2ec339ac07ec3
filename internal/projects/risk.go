package projects

import "github.com/averycrespi/mcp-apps/internal/estimate"

// RiskLevelFor classifies a project. The rules are checked in order:
//  1. completed with a known actual cost: low
//  2. in progress: medium
//  3. under study: veryHigh
//  4. anything else: high for Expansion and Electrification, medium otherwise
//
// A completed project without an actual cost reaches rule 4.
func RiskLevelFor(p Project) estimate.RiskLevel {
	switch {
	case p.Status == StatusCompleted && p.ActualCost != nil:
		return estimate.RiskLow
	case p.Status == StatusInProgress:
		return estimate.RiskMedium
	case p.Status == StatusUnderStudy:
		return estimate.RiskVeryHigh
	}

	switch p.Category {
	case CategoryExpansion, CategoryElectrification:
		return estimate.RiskHigh
	default:
		return estimate.RiskMedium
	}
}

// Estimate runs the estimator on the project's estimated cost and category.
// An empty riskLevel means the level from RiskLevelFor.
func Estimate(e *estimate.Estimator, p Project, riskLevel estimate.RiskLevel) estimate.Result {
	if riskLevel == "" {
		riskLevel = RiskLevelFor(p)
	}
	return e.Estimate(p.EstimatedCost, string(p.Category), riskLevel)
}
