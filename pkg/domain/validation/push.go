// Package validation auto-completes modules from GitHub push evidence: a
// push by a team member to the repository named in a module's validation
// rule counts as completion of that module.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/freshmc/pulse/pkg/domain/team"
	"github.com/freshmc/pulse/pkg/domain/tracking"
)

// PushEvent is the distilled shape of a GitHub push webhook payload.
type PushEvent struct {
	Pusher     string // GitHub login of the pusher
	Repository string // repository name, without owner
	Branch     string
	Commits    int
}

// Outcome reports what a push event did. An unmatched push is a valid
// outcome with Matched=false and a reason, not an error.
type Outcome struct {
	Matched  bool
	Reason   string
	Member   *team.Member
	ModuleID string
	Title    string
	Delay    DelayPrediction
}

// Validate matches a push event against the snapshot and auto-completes the
// first matching module in place.
//
// Matching follows the tracker's rules: resolve the pusher to a member by
// GitHub username, then walk the member's in-progress modules. A module
// whose validation rule names the pushed repository (case-insensitive) wins;
// a module with no rule at all is accepted as a fallback so projects that
// never configured rules still get auto-completion.
func Validate(event PushEvent, snapshot *tracking.Snapshot, roster *team.Roster, now time.Time) (*Outcome, error) {
	if event.Pusher == "" {
		return &Outcome{Reason: "no pusher username in payload"}, nil
	}
	if event.Repository == "" {
		return &Outcome{Reason: "no repository name in payload"}, nil
	}

	member := roster.FindByGitHubUsername(event.Pusher)
	if member == nil {
		return &Outcome{Reason: fmt.Sprintf("no team member with GitHub username %q", event.Pusher)}, nil
	}

	module := findCandidate(snapshot, member.ID, event.Repository)
	if module == nil {
		return &Outcome{
			Member: member,
			Reason: fmt.Sprintf("no in-progress module assigned to %s matches repository %q", member.Name, event.Repository),
		}, nil
	}

	if err := complete(module, now); err != nil {
		return nil, fmt.Errorf("auto-complete module %s: %w", module.ID, err)
	}

	return &Outcome{
		Matched:  true,
		Member:   member,
		ModuleID: module.ID,
		Title:    module.Title,
		Delay:    PredictDelay(*module, memberHistory(snapshot, member.ID, module.ID), now),
	}, nil
}

// findCandidate returns the member's first in-progress module that either
// has a validation rule matching the repository or has no rule at all.
func findCandidate(snapshot *tracking.Snapshot, memberID, repo string) *tracking.Module {
	for i := range snapshot.Modules {
		m := &snapshot.Modules[i]
		if m.AssignedTo != memberID || !m.Status.IsInProgress() {
			continue
		}
		if m.Validation.IsSet() {
			if strings.EqualFold(m.Validation.GitHubRepo, repo) {
				return m
			}
			continue
		}
		return m
	}
	return nil
}

// complete drives the module through the state machine so an auto-complete
// can never perform an illegal transition, then stamps the completion date.
func complete(m *tracking.Module, now time.Time) error {
	machine, err := tracking.NewStatusMachine(string(m.Status), m.ID)
	if err != nil {
		return err
	}
	if err := machine.Transition("complete"); err != nil {
		return err
	}

	m.Status = machine.CurrentStatus()
	completed := now
	m.CompletedDate = &completed
	return nil
}

// memberHistory collects the member's previously completed modules,
// excluding the one just completed.
func memberHistory(snapshot *tracking.Snapshot, memberID, excludeID string) []tracking.Module {
	var history []tracking.Module
	for _, m := range snapshot.Modules {
		if m.ID == excludeID || m.AssignedTo != memberID {
			continue
		}
		if m.Status.IsCompleted() {
			history = append(history, m)
		}
	}
	return history
}
