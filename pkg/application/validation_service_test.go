package application

import (
	"errors"
	"testing"
	"time"

	"github.com/freshmc/pulse/pkg/domain/insight"
	"github.com/freshmc/pulse/pkg/domain/tracking"
	"github.com/freshmc/pulse/pkg/domain/validation"
)

func TestProcessPushCompletesAndPersists(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo, events := newTestWorkspace(t)
	seedWorkspace(t, repo, now)

	svc := NewValidationService(repo, events).WithClock(func() time.Time { return now })

	outcome, err := svc.ProcessPush(validation.PushEvent{
		Pusher:     "alice-gh",
		Repository: "pulse-api",
		Branch:     "main",
		Commits:    2,
	})
	if err != nil {
		t.Fatalf("ProcessPush() error = %v", err)
	}
	if !outcome.Matched {
		t.Fatalf("ProcessPush() unmatched: %s", outcome.Reason)
	}

	if outcome.ModuleID != "m3" {
		t.Errorf("ModuleID = %q, want m3 (Alice's in-progress module with a matching rule)", outcome.ModuleID)
	}

	saved, err := repo.LoadModules()
	if err != nil {
		t.Fatalf("LoadModules() error = %v", err)
	}
	completed := saved.FindModule(outcome.ModuleID)
	if completed == nil || completed.Status != tracking.StatusCompleted {
		t.Errorf("persisted module %q = %+v, want Completed", outcome.ModuleID, completed)
	}

	logged, err := events.LoadByAction("module.completed")
	if err != nil {
		t.Fatalf("LoadByAction() error = %v", err)
	}
	if len(logged) != 1 {
		t.Errorf("audit log = %d module.completed events, want 1", len(logged))
	}
}

func TestProcessPushNoMatchIsNotPersisted(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo, events := newTestWorkspace(t)
	seedWorkspace(t, repo, now)

	svc := NewValidationService(repo, events).WithClock(func() time.Time { return now })

	outcome, err := svc.ProcessPush(validation.PushEvent{Pusher: "stranger", Repository: "pulse-api"})
	if err != nil {
		t.Fatalf("ProcessPush() error = %v", err)
	}
	if outcome.Matched {
		t.Fatal("ProcessPush() matched for unknown pusher")
	}

	logged, err := events.LoadByAction("validation.no_match")
	if err != nil {
		t.Fatalf("LoadByAction() error = %v", err)
	}
	if len(logged) != 1 {
		t.Errorf("audit log = %d validation.no_match events, want 1", len(logged))
	}
}

func TestProcessPushMissingSnapshot(t *testing.T) {
	repo, events := newTestWorkspace(t)
	svc := NewValidationService(repo, events)

	_, err := svc.ProcessPush(validation.PushEvent{Pusher: "alice-gh", Repository: "pulse-api"})
	if !errors.Is(err, insight.ErrSubjectNotFound) {
		t.Errorf("ProcessPush() error = %v, want ErrSubjectNotFound", err)
	}
}
