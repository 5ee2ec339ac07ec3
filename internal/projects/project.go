package projects

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidStatus is returned when a status string is not a known project status
var ErrInvalidStatus = errors.New("invalid project status")

// Category groups projects by the kind of work involved
type Category string

const (
	CategoryExpansion             Category = "Expansion"
	CategoryCapacity              Category = "Capacity"
	CategoryRollingStock          Category = "Rolling Stock"
	CategoryPowerInfrastructure   Category = "Power Infrastructure"
	CategoryAccessibility         Category = "Accessibility"
	CategoryBridges               Category = "Bridges"
	CategorySignals               Category = "Signals"
	CategoryElectrification       Category = "Electrification"
	CategoryMaintenanceFacilities Category = "Maintenance Facilities"
)

// Categories lists every known category
var Categories = []Category{
	CategoryExpansion,
	CategoryCapacity,
	CategoryRollingStock,
	CategoryPowerInfrastructure,
	CategoryAccessibility,
	CategoryBridges,
	CategorySignals,
	CategoryElectrification,
	CategoryMaintenanceFacilities,
}

// Valid reports whether the category is one of the known categories
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the display name of the category
func (c Category) String() string {
	return string(c)
}

// Status is the lifecycle stage of a project
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in-progress"
	StatusPlanned    Status = "planned"
	StatusUnderStudy Status = "under-study"
)

// Statuses lists every known status
var Statuses = []Status{StatusCompleted, StatusInProgress, StatusPlanned, StatusUnderStudy}

// ParseStatus returns the Status for s
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q (expected one of completed, in-progress, planned, under-study)", ErrInvalidStatus, s)
	}
	return status, nil
}

// Valid reports whether the status is one of the known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusPlanned, StatusUnderStudy:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}

// Project is a single capital project. Costs are in millions of dollars.
type Project struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       Category `json:"category"`
	Description    string   `json:"description"`
	EstimatedCost  float64  `json:"estimatedCost"`
	ActualCost     *float64 `json:"actualCost,omitempty"`
	StartYear      int      `json:"startYear"`
	CompletionYear *int     `json:"completionYear,omitempty"`
	Status         Status   `json:"status"`
	Location       string   `json:"location"`
	KeyComponents  []string `json:"keyComponents"`
}

// CompletionLabel returns the completion year, or "TBD" when it is not known
func (p Project) CompletionLabel() string {
	if p.CompletionYear == nil {
		return "TBD"
	}
	return strconv.Itoa(*p.CompletionYear)
}

// clone returns a copy that shares no memory with p
func (p Project) clone() Project {
	c := p
	if p.ActualCost != nil {
		v := *p.ActualCost
		c.ActualCost = &v
	}
	if p.CompletionYear != nil {
		v := *p.CompletionYear
		c.CompletionYear = &v
	}
	c.KeyComponents = append([]string(nil), p.KeyComponents...)
	return c
}
