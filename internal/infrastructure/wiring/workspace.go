// Package wiring assembles the storage, AI, and application layers for a
// workspace root.
package wiring

import (
	"github.com/freshmc/pulse/pkg/storage"
)

// Workspace bundles core infrastructure dependencies.
type Workspace struct {
	Repo   *storage.FilesystemRepository
	Events *storage.FileEventStore
}

func NewWorkspace(root string) *Workspace {
	repo := storage.NewFilesystemRepository(root)

	return &Workspace{
		Repo:   repo,
		Events: storage.NewFileEventStore(repo.BasePath()),
	}
}
