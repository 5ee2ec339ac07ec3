package estimate

import (
	"errors"
	"fmt"
	"maps"
)

// ErrInvalidRiskLevel is returned when a risk level is not one of the four known bands
var ErrInvalidRiskLevel = errors.New("invalid risk level")

// RiskLevel selects the spread between the low and high estimates
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "veryHigh"
)

// DefaultRiskLevel is used when a caller does not name a risk level
const DefaultRiskLevel = RiskMedium

// RiskLevels lists the bands from narrowest to widest
var RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskVeryHigh}

// ParseRiskLevel returns the RiskLevel for s. An empty string yields DefaultRiskLevel.
func ParseRiskLevel(s string) (RiskLevel, error) {
	if s == "" {
		return DefaultRiskLevel, nil
	}
	level := RiskLevel(s)
	if !level.Valid() {
		return "", fmt.Errorf("%w: %q (expected one of low, medium, high, veryHigh)", ErrInvalidRiskLevel, s)
	}
	return level, nil
}

// Valid reports whether the level is one of the four known bands
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh, RiskVeryHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk level
func (r RiskLevel) String() string {
	return string(r)
}

// Confidence returns the confidence label that goes with the risk level
func (r RiskLevel) Confidence() string {
	switch r {
	case RiskLow:
		return "High Confidence"
	case RiskMedium:
		return "Moderate Confidence"
	case RiskHigh:
		return "Low Confidence"
	default:
		return "Speculative"
	}
}

// RiskBand is the multiplier range applied to an adjusted base cost
type RiskBand struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Label string  `json:"label"`
}

// HistoricalOverruns records how past projects landed against their estimates
type HistoricalOverruns struct {
	ByProject map[string]float64 `json:"by_project"`
	Average   float64            `json:"average"`
}

// Factors holds the static tables used by the estimator
type Factors struct {
	CategoryMultipliers map[string]float64    `json:"category_multipliers"`
	RiskBands           map[RiskLevel]RiskBand `json:"risk_bands"`
	HistoricalOverruns  HistoricalOverruns     `json:"historical_overruns"`
}

// DefaultCategoryMultiplier applies to categories missing from the table
const DefaultCategoryMultiplier = 1.0

var defaultFactors = Factors{
	CategoryMultipliers: map[string]float64{
		"Expansion":              1.5,
		"Rolling Stock":          1.1,
		"Power Infrastructure":   1.2,
		"Accessibility":          1.0,
		"Bridges":                1.15,
		"Signals":                1.25,
		"Electrification":        1.4,
		"Maintenance Facilities": 1.1,
		"Capacity":               1.35,
	},
	RiskBands: map[RiskLevel]RiskBand{
		RiskLow:      {Min: 0.95, Max: 1.1, Label: "Low Risk"},
		RiskMedium:   {Min: 0.9, Max: 1.25, Label: "Medium Risk"},
		RiskHigh:     {Min: 0.8, Max: 1.5, Label: "High Risk"},
		RiskVeryHigh: {Min: 0.7, Max: 2.0, Label: "Very High Risk"},
	},
	HistoricalOverruns: HistoricalOverruns{
		ByProject: map[string]float64{
			"Grand Central Madison": 1.0,
			"Main Line Expansion":   0.95,
		},
		Average: 1.15,
	},
}

// DefaultFactors returns a copy of the built-in estimation tables
func DefaultFactors() Factors {
	return defaultFactors.Clone()
}

// Clone returns a deep copy of the factors
func (f Factors) Clone() Factors {
	return Factors{
		CategoryMultipliers: maps.Clone(f.CategoryMultipliers),
		RiskBands:           maps.Clone(f.RiskBands),
		HistoricalOverruns: HistoricalOverruns{
			ByProject: maps.Clone(f.HistoricalOverruns.ByProject),
			Average:   f.HistoricalOverruns.Average,
		},
	}
}

// CategoryMultiplier returns the multiplier for category, or DefaultCategoryMultiplier when unknown
func (f Factors) CategoryMultiplier(category string) float64 {
	if m, ok := f.CategoryMultipliers[category]; ok && m > 0 {
		return m
	}
	return DefaultCategoryMultiplier
}

// RiskBand returns the band for level. The second result is false for unknown levels.
func (f Factors) RiskBand(level RiskLevel) (RiskBand, bool) {
	band, ok := f.RiskBands[level]
	return band, ok
}
