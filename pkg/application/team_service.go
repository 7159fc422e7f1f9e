package application

import (
	"fmt"

	"github.com/freshmc/pulse/pkg/domain"
	"github.com/freshmc/pulse/pkg/domain/team"
)

// TeamService manages the team roster.
type TeamService struct {
	repo  domain.WorkspaceRepository
	audit domain.AuditLogger
}

func NewTeamService(repo domain.WorkspaceRepository, audit domain.AuditLogger) *TeamService {
	return &TeamService{repo: repo, audit: audit}
}

// ListMembers returns the current roster.
func (s *TeamService) ListMembers() (*team.Roster, error) {
	return s.repo.LoadTeam()
}

// AddMember adds or updates a team member.
func (s *TeamService) AddMember(m team.Member) error {
	roster, err := s.repo.LoadTeam()
	if err != nil {
		return fmt.Errorf("load team: %w", err)
	}

	if err := roster.AddMember(m); err != nil {
		return err
	}

	if err := s.repo.SaveTeam(roster); err != nil {
		return fmt.Errorf("save team: %w", err)
	}

	return s.audit.Log("team.add_member", m.ID, map[string]interface{}{
		"member": m.Name,
		"email":  m.Email,
	})
}

// RemoveMember removes a team member by ID.
func (s *TeamService) RemoveMember(id string) error {
	roster, err := s.repo.LoadTeam()
	if err != nil {
		return fmt.Errorf("load team: %w", err)
	}

	if err := roster.RemoveMember(id); err != nil {
		return err
	}

	if err := s.repo.SaveTeam(roster); err != nil {
		return fmt.Errorf("save team: %w", err)
	}

	return s.audit.Log("team.remove_member", id, map[string]interface{}{
		"member": id,
	})
}
