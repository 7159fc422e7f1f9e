package domain

import (
	"github.com/freshmc/pulse/pkg/domain/team"
	"github.com/freshmc/pulse/pkg/domain/tracking"
)

// WorkspaceRepository handles the persistence of pulse artifacts in the .pulse/ directory.
type WorkspaceRepository interface {
	// LoadModules returns the module snapshot, or nil when the workspace has
	// never been populated (the subject-not-found precondition).
	LoadModules() (*tracking.Snapshot, error)
	SaveModules(snapshot *tracking.Snapshot) error

	// LoadTeam returns the team roster. A missing roster file is an empty
	// roster, not an error.
	LoadTeam() (*team.Roster, error)
	SaveTeam(roster *team.Roster) error
}

// ReportWriter persists rendered report artifacts.
type ReportWriter interface {
	WriteReport(name string, content []byte) (string, error)
}
