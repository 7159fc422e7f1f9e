package application

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSnapshotServiceImportFile(t *testing.T) {
	repo, events := newTestWorkspace(t)
	svc := NewSnapshotService(repo, events)

	path := filepath.Join(t.TempDir(), "snapshot.json")
	data := `{"project": "pulse", "modules": [{"id": "m1", "title": "API", "status": "Pending"}]}`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	snapshot, err := svc.ImportFile(path)
	if err != nil {
		t.Fatalf("ImportFile() error = %v", err)
	}
	if snapshot.Project != "pulse" || len(snapshot.Modules) != 1 {
		t.Errorf("ImportFile() = %+v, want project pulse with 1 module", snapshot)
	}

	persisted, err := svc.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if persisted == nil || len(persisted.Modules) != 1 {
		t.Errorf("List() = %+v, want persisted snapshot", persisted)
	}

	logged, err := events.LoadByAction("modules.imported")
	if err != nil {
		t.Fatalf("LoadByAction() error = %v", err)
	}
	if len(logged) != 1 {
		t.Errorf("audit log = %d modules.imported events, want 1", len(logged))
	}
}

func TestSnapshotServiceImportRejectsInvalid(t *testing.T) {
	repo, events := newTestWorkspace(t)
	svc := NewSnapshotService(repo, events)

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"modules": [{"title": "no id"}]}`), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := svc.ImportFile(path); err == nil {
		t.Error("ImportFile() with schema violations should fail")
	}

	// Nothing may be persisted on a failed import.
	persisted, err := svc.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if persisted != nil {
		t.Errorf("List() = %+v after failed import, want nil", persisted)
	}
}

func TestSnapshotServiceImportMissingFile(t *testing.T) {
	repo, events := newTestWorkspace(t)
	svc := NewSnapshotService(repo, events)

	if _, err := svc.ImportFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("ImportFile() on missing file should fail")
	}
}
