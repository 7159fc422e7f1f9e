package application

import (
	"fmt"
	"time"

	"github.com/freshmc/pulse/pkg/domain"
	"github.com/freshmc/pulse/pkg/domain/insight"
	"github.com/freshmc/pulse/pkg/domain/validation"
)

// ValidationService applies GitHub push events to the workspace: matching
// pushes auto-complete the pusher's in-progress module and the change is
// persisted and logged.
type ValidationService struct {
	repo  domain.WorkspaceRepository
	audit domain.AuditLogger
	now   func() time.Time
}

func NewValidationService(repo domain.WorkspaceRepository, audit domain.AuditLogger) *ValidationService {
	return &ValidationService{repo: repo, audit: audit, now: time.Now}
}

// WithClock overrides the reference clock. Intended for tests.
func (s *ValidationService) WithClock(now func() time.Time) *ValidationService {
	s.now = now
	return s
}

// ProcessPush validates a push event against the workspace. A push that
// matches nothing is a normal outcome; only workspace access failures are
// errors.
func (s *ValidationService) ProcessPush(event validation.PushEvent) (*validation.Outcome, error) {
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

	outcome, err := validation.Validate(event, snapshot, roster, s.now())
	if err != nil {
		return nil, err
	}

	if !outcome.Matched {
		_ = s.audit.Log("validation.no_match", event.Pusher, map[string]interface{}{
			"repository": event.Repository,
			"reason":     outcome.Reason,
		})
		return outcome, nil
	}

	if err := s.repo.SaveModules(snapshot); err != nil {
		return nil, fmt.Errorf("save modules: %w", err)
	}

	_ = s.audit.Log("module.completed", event.Pusher, map[string]interface{}{
		"module_id":  outcome.ModuleID,
		"title":      outcome.Title,
		"repository": event.Repository,
		"branch":     event.Branch,
		"commits":    event.Commits,
		"delay":      outcome.Delay.Reason,
		"confidence": outcome.Delay.Confidence,
	})

	return outcome, nil
}
