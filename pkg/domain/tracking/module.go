package tracking

import (
	"time"
)

// ValidationRule links a module to the GitHub repository whose pushes count
// as completion evidence for it.
type ValidationRule struct {
	GitHubRepo string `json:"github_repo,omitempty" yaml:"github_repo,omitempty"`
	Branch     string `json:"branch,omitempty" yaml:"branch,omitempty"`
}

// IsSet returns true if the rule names a repository.
func (r ValidationRule) IsSet() bool {
	return r.GitHubRepo != ""
}

// Module is a unit of work tracked for a project.
//
// DueDate and CompletedDate are optional: absence means "no deadline tracked"
// and "completion date unknown" respectively. A completed module without a
// completion date is excluded from on-time calculations rather than treated
// as an error.
type Module struct {
	ID            string         `json:"id" yaml:"id"`
	Title         string         `json:"title" yaml:"title"`
	Description   string         `json:"description,omitempty" yaml:"description,omitempty"`
	Status        Status         `json:"status" yaml:"status"`
	Priority      Priority       `json:"priority,omitempty" yaml:"priority,omitempty"`
	AssignedTo    string         `json:"assigned_to,omitempty" yaml:"assigned_to,omitempty"` // team member ID
	Dependencies  []string       `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	DueDate       *time.Time     `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	CompletedDate *time.Time     `json:"completed_date,omitempty" yaml:"completed_date,omitempty"`
	CreatedAt     *time.Time     `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	Validation    ValidationRule `json:"validation,omitempty" yaml:"validation,omitempty"`
}

// EffectivePriority returns the module's priority, defaulting to medium when unset.
func (m Module) EffectivePriority() Priority {
	if m.Priority == "" {
		return PriorityMedium
	}
	return m.Priority
}

// IsOverdue returns true if the module is incomplete and its due date has passed.
func (m Module) IsOverdue(now time.Time) bool {
	if m.Status.IsCompleted() || m.DueDate == nil {
		return false
	}
	return m.DueDate.Before(now)
}

// CompletedOnTime reports whether the module finished within its deadline.
// The second return value is false when either date is missing.
func (m Module) CompletedOnTime() (onTime bool, known bool) {
	if !m.Status.IsCompleted() || m.CompletedDate == nil || m.DueDate == nil {
		return false, false
	}
	return !m.CompletedDate.After(*m.DueDate), true
}

// Snapshot is the flat list of modules handed to the insight engine,
// scoped to one subject (user, team, or project).
type Snapshot struct {
	Project string   `json:"project,omitempty" yaml:"project,omitempty"`
	Modules []Module `json:"modules" yaml:"modules"`
}

// FindModule returns the module with the given ID, or nil if absent.
func (s *Snapshot) FindModule(id string) *Module {
	for i := range s.Modules {
		if s.Modules[i].ID == id {
			return &s.Modules[i]
		}
	}
	return nil
}
