package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/freshmc/pulse/pkg/domain"
	"github.com/freshmc/pulse/pkg/domain/ai"
	"github.com/freshmc/pulse/pkg/domain/insight"
	"github.com/freshmc/pulse/pkg/domain/team"
)

// InsightService runs the analysis pipeline for one subject: aggregate
// metrics, score health, rank blockers and team performance, then produce a
// narrative and recommendations.
//
// The service holds no mutable state. Concurrent GenerateReport calls are
// independent; each recomputes everything from a fresh snapshot.
type InsightService struct {
	repo     domain.WorkspaceRepository
	provider ai.Provider
	audit    domain.AuditLogger

	// now is injected for tests; defaults to time.Now.
	now func() time.Time
}

func NewInsightService(repo domain.WorkspaceRepository, provider ai.Provider, audit domain.AuditLogger) *InsightService {
	return &InsightService{
		repo:     repo,
		provider: provider,
		audit:    audit,
		now:      time.Now,
	}
}

// WithClock overrides the reference clock. Intended for tests.
func (s *InsightService) WithClock(now func() time.Time) *InsightService {
	s.now = now
	return s
}

// GenerateReport produces a full insight report answering the given
// free-text query. The only hard failure is a missing module snapshot
// (insight.ErrSubjectNotFound); a failing or unconfigured narrative provider
// degrades to the deterministic fallback.
func (s *InsightService) GenerateReport(ctx context.Context, query string) (*insight.Report, error) {
	snapshot, err := s.repo.LoadModules()
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, insight.ErrSubjectNotFound
	}

	roster, err := s.repo.LoadTeam()
	if err != nil {
		return nil, err
	}

	referenceNow := s.now()
	metrics := insight.Analyze(snapshot.Modules, roster.Members, referenceNow)
	s.resolveAssignees(&metrics, roster)

	narrative, source := s.narrative(ctx, metrics, query)

	report := &insight.Report{
		ID:              uuid.New().String(),
		Project:         snapshot.Project,
		Metrics:         metrics,
		Narrative:       narrative,
		NarrativeSource: source,
		Recommendations: insight.Recommendations(metrics),
		GeneratedAt:     referenceNow,
	}

	_ = s.audit.Log("insights.generated", "insight-service", map[string]interface{}{
		"report_id":        report.ID,
		"health_score":     metrics.HealthScore,
		"total_modules":    metrics.TotalModules,
		"blockers":         metrics.TotalBlockers,
		"narrative_source": source,
	})

	return report, nil
}

// narrative asks the external provider for a summary and falls back to the
// deterministic templates on any error. The fallback path cannot fail.
func (s *InsightService) narrative(ctx context.Context, metrics insight.ProjectMetrics, query string) (text string, source string) {
	if s.provider != nil {
		resp, err := s.provider.Complete(ctx, ai.CompletionRequest{
			Prompt: insight.BuildPrompt(metrics, query),
			System: insight.NarrativeSystemPrompt,
		})
		if err == nil && resp != nil && resp.Text != "" {
			return resp.Text, "ai"
		}
	}

	return insight.FallbackNarrative(metrics, query), "fallback"
}

// resolveAssignees swaps member IDs for display names in the blocker list.
// Unknown or empty assignees render as "Unassigned".
func (s *InsightService) resolveAssignees(metrics *insight.ProjectMetrics, roster *team.Roster) {
	for i := range metrics.Blockers {
		id := metrics.Blockers[i].AssignedTo
		if id == "" {
			metrics.Blockers[i].AssignedTo = "Unassigned"
			continue
		}
		if m := roster.FindMember(id); m != nil {
			metrics.Blockers[i].AssignedTo = m.Name
		}
	}
}
