package storage

import (
	"strings"
	"testing"

	"github.com/freshmc/pulse/pkg/domain/tracking"
)

func TestParseSnapshot(t *testing.T) {
	data := []byte(`{
		"project": "pulse",
		"modules": [
			{
				"id": "m1",
				"title": "API layer",
				"status": "In Progress",
				"priority": "high",
				"assigned_to": "u1",
				"dependencies": ["m0"],
				"due_date": "2026-04-01T00:00:00Z"
			},
			{"id": "m2", "title": "Docs", "status": "Pending"}
		]
	}`)

	snapshot, err := ParseSnapshot(data)
	if err != nil {
		t.Fatalf("ParseSnapshot() error = %v", err)
	}

	if snapshot.Project != "pulse" || len(snapshot.Modules) != 2 {
		t.Fatalf("ParseSnapshot() = %+v, want project pulse with 2 modules", snapshot)
	}

	m := snapshot.Modules[0]
	if m.Status != tracking.StatusInProgress || m.Priority != tracking.PriorityHigh {
		t.Errorf("module = %+v, want parsed status and priority", m)
	}
	if m.DueDate == nil {
		t.Error("DueDate = nil, want parsed date")
	}
}

func TestParseSnapshotRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"not an object", `[1, 2]`, "schema"},
		{"missing modules", `{"project": "pulse"}`, "modules"},
		{"module without id", `{"modules": [{"title": "x", "status": "Pending"}]}`, "id"},
		{"empty title", `{"modules": [{"id": "m1", "title": "", "status": "Pending"}]}`, "title"},
		{"bad priority", `{"modules": [{"id": "m1", "title": "x", "status": "Pending", "priority": "urgent"}]}`, "priority"},
		{"invalid json", `{`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSnapshot([]byte(tt.data))
			if err == nil {
				t.Fatal("ParseSnapshot() succeeded, want error")
			}
			if tt.want != "" && !strings.Contains(err.Error(), tt.want) {
				t.Errorf("ParseSnapshot() error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestParseSnapshotReportsAllViolations(t *testing.T) {
	data := []byte(`{"modules": [
		{"title": "x", "status": "Pending"},
		{"id": "m2", "status": "Pending"}
	]}`)

	_, err := ParseSnapshot(data)
	if err == nil {
		t.Fatal("ParseSnapshot() succeeded, want error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "id") || !strings.Contains(msg, "title") {
		t.Errorf("ParseSnapshot() error = %q, want both violations listed", msg)
	}
}
