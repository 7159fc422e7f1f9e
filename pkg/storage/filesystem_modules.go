package storage

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/freshmc/pulse/pkg/domain/tracking"
)

// LoadModules returns the module snapshot, or nil when none has ever been
// imported. Callers treat nil as "subject not found".
func (r *FilesystemRepository) LoadModules() (*tracking.Snapshot, error) {
	path, err := r.ResolvePath(ModulesFile)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	data, err := r.readWithRetry(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read modules file: %w", err)
	}

	var snapshot tracking.Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal modules: %w", err)
	}

	return &snapshot, nil
}

func (r *FilesystemRepository) SaveModules(snapshot *tracking.Snapshot) error {
	path, err := r.ResolvePath(ModulesFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal modules: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
