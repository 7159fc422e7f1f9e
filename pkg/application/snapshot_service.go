package application

import (
	"fmt"
	"os"

	"github.com/freshmc/pulse/pkg/domain"
	"github.com/freshmc/pulse/pkg/domain/tracking"
	"github.com/freshmc/pulse/pkg/storage"
)

// SnapshotService imports and lists module snapshots.
type SnapshotService struct {
	repo  domain.WorkspaceRepository
	audit domain.AuditLogger
}

func NewSnapshotService(repo domain.WorkspaceRepository, audit domain.AuditLogger) *SnapshotService {
	return &SnapshotService{repo: repo, audit: audit}
}

// ImportFile validates a JSON snapshot file and persists it as the
// workspace's module snapshot, replacing any previous one.
func (s *SnapshotService) ImportFile(path string) (*tracking.Snapshot, error) {
	// #nosec G304 -- Path is user-supplied by design (CLI argument)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	snapshot, err := storage.ParseSnapshot(data)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveModules(snapshot); err != nil {
		return nil, fmt.Errorf("save modules: %w", err)
	}

	_ = s.audit.Log("modules.imported", "snapshot-service", map[string]interface{}{
		"project": snapshot.Project,
		"modules": len(snapshot.Modules),
	})

	return snapshot, nil
}

// List returns the current snapshot, or nil when none exists.
func (s *SnapshotService) List() (*tracking.Snapshot, error) {
	return s.repo.LoadModules()
}
