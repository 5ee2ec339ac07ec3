package results

// SearchProjectsToolArgs represents the arguments of the search_projects tool
type SearchProjectsToolArgs struct {
	Query    string `json:"query,omitempty"`
	Category string `json:"category,omitempty"`
	Status   string `json:"status,omitempty"`
}

// SearchProjectsToolResult represents the result of the search_projects tool
type SearchProjectsToolResult struct {
	Arguments SearchProjectsToolArgs `json:"arguments"`
	Message   string                 `json:"message"`
	Count     int                    `json:"count"`
	Projects  []ProjectSummary       `json:"projects"`
}

// GetProjectToolResult represents the result of the get_project tool
type GetProjectToolResult struct {
	ProjectID string          `json:"project_id"`
	Message   string          `json:"message"`
	Project   *ProjectSummary `json:"project,omitempty"`
}
