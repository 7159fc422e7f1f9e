// Package insight computes project-health metrics, blocker and
// team-performance rankings, recommendations, and status narratives from a
// module snapshot. All computations are pure functions of their inputs; the
// only I/O in the pipeline is the optional external narrative call, which is
// injected by the caller.
package insight

import (
	"time"
)

// ProjectMetrics is the derived read model for one analysis call. It is
// recomputed from scratch on every invocation and never persisted.
type ProjectMetrics struct {
	TotalModules      int `json:"total_modules"`
	CompletedModules  int `json:"completed_modules"`
	InProgressModules int `json:"in_progress_modules"`
	DelayedModules    int `json:"delayed_modules"`
	OnTimeModules     int `json:"on_time_modules"`

	HealthScore int `json:"health_score"`

	Blockers        []BlockerEntry     `json:"blockers"`
	TeamPerformance []PerformanceEntry `json:"team_performance"`

	// TotalBlockers is the blocker count before truncation to the top-N
	// list above. Recommendations report this figure, not the list length.
	TotalBlockers int `json:"total_blockers"`
}

// BlockerEntry flags a module as impeding progress, either by being overdue
// or by waiting on incomplete dependencies.
type BlockerEntry struct {
	ModuleID    string `json:"module_id"`
	Title       string `json:"title"`
	Reason      string `json:"reason"`
	Priority    string `json:"priority"`
	DaysOverdue int    `json:"days_overdue,omitempty"` // zero for dependency-only blockers
	AssignedTo  string `json:"assigned_to"`
}

// PerformanceEntry summarizes one team member's delivery record.
type PerformanceEntry struct {
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	TotalAssigned  int    `json:"total_assigned"`
	Completed      int    `json:"completed"`
	Delayed        int    `json:"delayed"`
	OnTime         int    `json:"on_time"`
	CompletionRate int    `json:"completion_rate"`
}

// Report is the full analysis output: metrics plus the generated narrative
// and recommendations. The full view feeds the report renderer; Summary()
// produces the truncated shape served over JSON.
type Report struct {
	ID              string         `json:"id"`
	Project         string         `json:"project,omitempty"`
	Metrics         ProjectMetrics `json:"metrics"`
	Narrative       string         `json:"narrative"`
	NarrativeSource string         `json:"narrative_source"` // "ai" or "fallback"
	Recommendations []string       `json:"recommendations"`
	GeneratedAt     time.Time      `json:"generated_at"`
}

// Summary is the condensed report view: top-3 blockers, top-5 team entries.
type Summary struct {
	HealthScore      int                `json:"health_score"`
	TotalModules     int                `json:"total_modules"`
	CompletedModules int                `json:"completed_modules"`
	DelayedModules   int                `json:"delayed_modules"`
	Narrative        string             `json:"narrative"`
	Blockers         []BlockerEntry     `json:"blockers"`
	Recommendations  []string           `json:"recommendations"`
	TeamPerformance  []PerformanceEntry `json:"team_performance"`
}

const (
	summaryBlockerLimit     = 3
	summaryPerformanceLimit = 5
)

// Summary returns the condensed view of the report.
func (r *Report) Summary() Summary {
	blockers := r.Metrics.Blockers
	if len(blockers) > summaryBlockerLimit {
		blockers = blockers[:summaryBlockerLimit]
	}
	performance := r.Metrics.TeamPerformance
	if len(performance) > summaryPerformanceLimit {
		performance = performance[:summaryPerformanceLimit]
	}

	return Summary{
		HealthScore:      r.Metrics.HealthScore,
		TotalModules:     r.Metrics.TotalModules,
		CompletedModules: r.Metrics.CompletedModules,
		DelayedModules:   r.Metrics.DelayedModules,
		Narrative:        r.Narrative,
		Blockers:         blockers,
		Recommendations:  r.Recommendations,
		TeamPerformance:  performance,
	}
}
