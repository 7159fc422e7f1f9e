package storage

import (
	"testing"
)

func TestFileEventStoreAppendAndLoad(t *testing.T) {
	store := NewFileEventStore(t.TempDir())

	// Empty store reads as no events.
	events, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("LoadAll() = %d events, want 0", len(events))
	}

	if err := store.Log("insights.generated", "insight-service", map[string]interface{}{"health_score": 92}); err != nil {
		t.Fatalf("Log() error = %v", err)
	}
	if err := store.Log("module.completed", "alice-gh", nil); err != nil {
		t.Fatalf("Log() error = %v", err)
	}

	events, err = store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("LoadAll() = %d events, want 2", len(events))
	}

	first := events[0]
	if first.ID == "" {
		t.Error("event ID not assigned")
	}
	if first.Timestamp.IsZero() {
		t.Error("event timestamp not assigned")
	}
	if first.Action != "insights.generated" || first.Actor != "insight-service" {
		t.Errorf("event = %+v, want logged action and actor", first)
	}
	if got, ok := first.Metadata["health_score"].(float64); !ok || got != 92 {
		t.Errorf("metadata health_score = %v, want 92", first.Metadata["health_score"])
	}
}

func TestFileEventStoreLoadByAction(t *testing.T) {
	store := NewFileEventStore(t.TempDir())

	for _, action := range []string{"a", "b", "a", "c"} {
		if err := store.Log(action, "test", nil); err != nil {
			t.Fatalf("Log(%q) error = %v", action, err)
		}
	}

	got, err := store.LoadByAction("a")
	if err != nil {
		t.Fatalf("LoadByAction() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("LoadByAction(a) = %d events, want 2", len(got))
	}

	count, err := store.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 4 {
		t.Errorf("Count() = %d, want 4", count)
	}
}
