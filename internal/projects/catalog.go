package projects

import (
	"fmt"
	"strings"
	"sync"
)

// Catalog is a read-only collection of projects. All methods return copies,
// so a Catalog is safe for concurrent use.
type Catalog struct {
	projects []Project
	byID     map[string]int
}

// NewCatalog builds a catalog from projects after checking its invariants
func NewCatalog(projects []Project) (*Catalog, error) {
	c := &Catalog{
		projects: make([]Project, len(projects)),
		byID:     make(map[string]int, len(projects)),
	}
	for i, p := range projects {
		c.projects[i] = p.clone()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	for i, p := range c.projects {
		c.byID[p.ID] = i
	}
	return c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := NewCatalog(lirrProjects)
	if err != nil {
		panic(fmt.Sprintf("projects: built-in catalog is invalid: %v", err))
	}
	return c
})

// Default returns the built-in LIRR capital program catalog
func Default() *Catalog {
	return defaultCatalog()
}

// Validate checks the catalog invariants
func (c *Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.projects))
	for _, p := range c.projects {
		if p.ID == "" {
			return fmt.Errorf("project %q has an empty id", p.Name)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("duplicate project id %q", p.ID)
		}
		seen[p.ID] = struct{}{}

		if !p.Category.Valid() {
			return fmt.Errorf("project %q has unknown category %q", p.ID, p.Category)
		}
		if !p.Status.Valid() {
			return fmt.Errorf("project %q has unknown status %q", p.ID, p.Status)
		}
		if p.EstimatedCost <= 0 {
			return fmt.Errorf("project %q has non-positive estimated cost %v", p.ID, p.EstimatedCost)
		}
		if p.CompletionYear != nil && *p.CompletionYear < p.StartYear {
			return fmt.Errorf("project %q completes in %d before it starts in %d", p.ID, *p.CompletionYear, p.StartYear)
		}
		if p.ActualCost != nil && p.Status != StatusCompleted && p.Status != StatusInProgress {
			return fmt.Errorf("project %q has an actual cost but status %q", p.ID, p.Status)
		}
		for _, component := range p.KeyComponents {
			if component == "" {
				return fmt.Errorf("project %q has an empty key component", p.ID)
			}
		}
	}
	return nil
}

// Len returns the number of projects in the catalog
func (c *Catalog) Len() int {
	return len(c.projects)
}

// All returns every project in catalog order
func (c *Catalog) All() []Project {
	return c.filter(func(Project) bool { return true })
}

// Get returns the project with the given id
func (c *Catalog) Get(id string) (Project, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Project{}, false
	}
	return c.projects[i].clone(), true
}

// Search returns the projects whose name, description, category, location or
// any key component contains query, ignoring case. An empty query matches every project.
func (c *Catalog) Search(query string) []Project {
	term := strings.ToLower(query)
	return c.filter(func(p Project) bool {
		return p.matches(term)
	})
}

// ByCategory returns the projects in category, ignoring case
func (c *Catalog) ByCategory(category string) []Project {
	return c.filter(func(p Project) bool {
		return strings.EqualFold(string(p.Category), category)
	})
}

// ByStatus returns the projects with the given status
func (c *Catalog) ByStatus(status Status) []Project {
	return c.filter(func(p Project) bool {
		return p.Status == status
	})
}

func (c *Catalog) filter(keep func(Project) bool) []Project {
	result := make([]Project, 0)
	for _, p := range c.projects {
		if keep(p) {
			result = append(result, p.clone())
		}
	}
	return result
}

// matches expects term to be lower case already
func (p Project) matches(term string) bool {
	fields := []string{p.Name, p.Description, string(p.Category), p.Location}
	fields = append(fields, p.KeyComponents...)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
