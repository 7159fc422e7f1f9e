package github

import (
	"testing"
)

func TestParsePushPayload(t *testing.T) {
	payload := []byte(`{
		"ref": "refs/heads/main",
		"pusher": {"name": "alice-gh"},
		"repository": {"name": "pulse-api"},
		"commits": [
			{"id": "abc", "message": "fix auth"},
			{"id": "def", "message": "add tests"}
		]
	}`)

	event, err := ParsePushPayload(payload)
	if err != nil {
		t.Fatalf("ParsePushPayload() error = %v", err)
	}

	if event.Pusher != "alice-gh" {
		t.Errorf("Pusher = %q, want alice-gh", event.Pusher)
	}
	if event.Repository != "pulse-api" {
		t.Errorf("Repository = %q, want pulse-api", event.Repository)
	}
	if event.Branch != "main" {
		t.Errorf("Branch = %q, want main", event.Branch)
	}
	if event.Commits != 2 {
		t.Errorf("Commits = %d, want 2", event.Commits)
	}
}

func TestParsePushPayloadMissingFields(t *testing.T) {
	event, err := ParsePushPayload([]byte(`{}`))
	if err != nil {
		t.Fatalf("ParsePushPayload() error = %v", err)
	}

	// Missing fields come back empty; the validation engine turns them into
	// an unmatched outcome rather than an error.
	if event.Pusher != "" || event.Repository != "" || event.Commits != 0 {
		t.Errorf("ParsePushPayload({}) = %+v, want zero values", event)
	}
}

func TestParsePushPayloadInvalidJSON(t *testing.T) {
	if _, err := ParsePushPayload([]byte(`{not json`)); err == nil {
		t.Error("ParsePushPayload() with invalid JSON should fail")
	}
}
