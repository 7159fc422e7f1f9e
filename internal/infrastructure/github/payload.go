// Package github adapts the GitHub API surface: webhook payload parsing for
// the validation engine and commit stat syncing for team analytics.
package github

import (
	"encoding/json"
	"fmt"
	"strings"

	gh "github.com/google/go-github/v69/github"

	"github.com/freshmc/pulse/pkg/domain/validation"
)

// ParsePushPayload converts a raw GitHub push webhook payload into the
// domain push event.
func ParsePushPayload(data []byte) (validation.PushEvent, error) {
	var event gh.PushEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return validation.PushEvent{}, fmt.Errorf("parse push payload: %w", err)
	}

	return validation.PushEvent{
		Pusher:     event.GetPusher().GetName(),
		Repository: event.GetRepo().GetName(),
		Branch:     strings.TrimPrefix(event.GetRef(), "refs/heads/"),
		Commits:    len(event.Commits),
	}, nil
}
