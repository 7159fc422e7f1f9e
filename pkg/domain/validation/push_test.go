package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/freshmc/pulse/pkg/domain/team"
	"github.com/freshmc/pulse/pkg/domain/tracking"
)

func testRoster() *team.Roster {
	return &team.Roster{Members: []team.Member{
		{ID: "u1", Name: "Alice", GitHubUsername: "alice-gh"},
		{ID: "u2", Name: "Bob", GitHubUsername: "bob-gh"},
	}}
}

func TestValidateMatchesRule(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, 2)

	snapshot := &tracking.Snapshot{Modules: []tracking.Module{
		{ID: "m1", Title: "Other work", Status: tracking.StatusInProgress, AssignedTo: "u1",
			Validation: tracking.ValidationRule{GitHubRepo: "other-repo"}},
		{ID: "m2", Title: "API layer", Status: tracking.StatusInProgress, AssignedTo: "u1", DueDate: &due,
			Validation: tracking.ValidationRule{GitHubRepo: "Pulse-API"}},
	}}

	outcome, err := Validate(PushEvent{Pusher: "alice-gh", Repository: "pulse-api", Commits: 3}, snapshot, testRoster(), now)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if !outcome.Matched {
		t.Fatalf("Validate() not matched: %s", outcome.Reason)
	}
	if outcome.ModuleID != "m2" {
		t.Errorf("ModuleID = %q, want m2 (rule match is case-insensitive)", outcome.ModuleID)
	}
	if snapshot.Modules[1].Status != tracking.StatusCompleted {
		t.Errorf("module status = %q, want Completed", snapshot.Modules[1].Status)
	}
	if snapshot.Modules[1].CompletedDate == nil || !snapshot.Modules[1].CompletedDate.Equal(now) {
		t.Errorf("CompletedDate = %v, want %v", snapshot.Modules[1].CompletedDate, now)
	}
	if snapshot.Modules[0].Status != tracking.StatusInProgress {
		t.Errorf("non-matching module status = %q, want untouched", snapshot.Modules[0].Status)
	}
	if outcome.Delay.DelayDays != -2 {
		t.Errorf("Delay.DelayDays = %d, want -2 (two days early)", outcome.Delay.DelayDays)
	}
}

func TestValidateNoRuleFallback(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	snapshot := &tracking.Snapshot{Modules: []tracking.Module{
		{ID: "m1", Title: "Unruled work", Status: tracking.StatusInProgress, AssignedTo: "u1"},
	}}

	outcome, err := Validate(PushEvent{Pusher: "alice-gh", Repository: "any-repo"}, snapshot, testRoster(), now)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if !outcome.Matched || outcome.ModuleID != "m1" {
		t.Errorf("Validate() = %+v, want fallback match on m1", outcome)
	}
}

func TestValidateUnmatchedOutcomes(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	snapshot := &tracking.Snapshot{Modules: []tracking.Module{
		{ID: "m1", Status: tracking.StatusPending, AssignedTo: "u1"},
		{ID: "m2", Status: tracking.StatusInProgress, AssignedTo: "u2",
			Validation: tracking.ValidationRule{GitHubRepo: "other-repo"}},
	}}

	tests := []struct {
		name       string
		event      PushEvent
		wantReason string
	}{
		{"empty pusher", PushEvent{Repository: "repo"}, "no pusher username"},
		{"empty repository", PushEvent{Pusher: "alice-gh"}, "no repository name"},
		{"unknown pusher", PushEvent{Pusher: "stranger", Repository: "repo"}, "no team member"},
		{"no in-progress module", PushEvent{Pusher: "alice-gh", Repository: "repo"}, "no in-progress module"},
		{"rule mismatch", PushEvent{Pusher: "bob-gh", Repository: "unrelated"}, "no in-progress module"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := Validate(tt.event, snapshot, testRoster(), now)
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if outcome.Matched {
				t.Fatalf("Validate() matched, want unmatched")
			}
			if !strings.Contains(outcome.Reason, tt.wantReason) {
				t.Errorf("Reason = %q, want it to contain %q", outcome.Reason, tt.wantReason)
			}
		})
	}

	// Unmatched pushes never mutate the snapshot.
	if snapshot.Modules[0].Status != tracking.StatusPending || snapshot.Modules[1].Status != tracking.StatusInProgress {
		t.Error("unmatched pushes must not change module statuses")
	}
}

func TestPredictDelay(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	mkHistory := func(n int, spanDays int) []tracking.Module {
		var history []tracking.Module
		for i := 0; i < n; i++ {
			created := now.AddDate(0, 0, -30)
			completed := created.AddDate(0, 0, spanDays)
			history = append(history, tracking.Module{
				ID: "h", Status: tracking.StatusCompleted,
				CreatedAt: &created, CompletedDate: &completed,
			})
		}
		return history
	}

	dueLate := now.AddDate(0, 0, -3)
	dueExact := now

	tests := []struct {
		name           string
		module         tracking.Module
		history        []tracking.Module
		wantDelay      int
		wantReason     string
		wantConfidence string
		wantAvg        float64
	}{
		{
			name:           "late with rich history",
			module:         tracking.Module{DueDate: &dueLate, CompletedDate: &now},
			history:        mkHistory(5, 4),
			wantDelay:      3,
			wantReason:     "Completed 3 days late",
			wantConfidence: ConfidenceHigh,
			wantAvg:        4.0,
		},
		{
			name:           "on time with some history",
			module:         tracking.Module{DueDate: &dueExact, CompletedDate: &now},
			history:        mkHistory(2, 6),
			wantDelay:      0,
			wantReason:     "Completed on time",
			wantConfidence: ConfidenceMedium,
			wantAvg:        6.0,
		},
		{
			name:           "no history falls back to one week",
			module:         tracking.Module{DueDate: &dueExact, CompletedDate: &now},
			history:        nil,
			wantDelay:      0,
			wantReason:     "Completed on time",
			wantConfidence: ConfidenceLow,
			wantAvg:        7.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PredictDelay(tt.module, tt.history, now)

			if got.DelayDays != tt.wantDelay {
				t.Errorf("DelayDays = %d, want %d", got.DelayDays, tt.wantDelay)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.wantReason)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %q, want %q", got.Confidence, tt.wantConfidence)
			}
			if got.AvgCompletionDays != tt.wantAvg {
				t.Errorf("AvgCompletionDays = %v, want %v", got.AvgCompletionDays, tt.wantAvg)
			}
		})
	}
}

func TestPredictDelayNoDueDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	got := PredictDelay(tracking.Module{CompletedDate: &now}, nil, now)

	if got.Confidence != ConfidenceNone {
		t.Errorf("Confidence = %q, want %q", got.Confidence, ConfidenceNone)
	}
	if got.Reason != "No due date set" {
		t.Errorf("Reason = %q, want %q", got.Reason, "No due date set")
	}
	if got.DelayDays != 0 {
		t.Errorf("DelayDays = %d, want 0", got.DelayDays)
	}
}

func TestPredictDelayHistorySkipsModulesWithoutDates(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	due := now
	created := now.AddDate(0, 0, -10)
	completed := created.AddDate(0, 0, 3)

	history := []tracking.Module{
		{ID: "no-dates", Status: tracking.StatusCompleted},
		{ID: "dated", Status: tracking.StatusCompleted, CreatedAt: &created, CompletedDate: &completed},
	}

	got := PredictDelay(tracking.Module{DueDate: &due, CompletedDate: &now}, history, now)

	if got.DataPoints != 1 {
		t.Errorf("DataPoints = %d, want 1", got.DataPoints)
	}
	if got.AvgCompletionDays != 3.0 {
		t.Errorf("AvgCompletionDays = %v, want 3.0", got.AvgCompletionDays)
	}
}
