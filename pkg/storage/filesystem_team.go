package storage

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/freshmc/pulse/pkg/domain/team"
)

func (r *FilesystemRepository) LoadTeam() (*team.Roster, error) {
	path, err := r.ResolvePath(TeamFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &team.Roster{}, nil
		}
		return nil, fmt.Errorf("failed to read team file: %w", err)
	}

	var roster team.Roster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("failed to unmarshal team roster: %w", err)
	}

	return &roster, nil
}

func (r *FilesystemRepository) SaveTeam(roster *team.Roster) error {
	path, err := r.ResolvePath(TeamFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(roster)
	if err != nil {
		return fmt.Errorf("failed to marshal team roster: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
