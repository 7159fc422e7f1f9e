package team

import "fmt"

// Role defines the access level of a team member.
type Role string

const (
	RoleManager Role = "manager"
	RoleMember  Role = "member"
)

// IsValid checks if the role is a recognized value.
func (r Role) IsValid() bool {
	switch r {
	case RoleManager, RoleMember:
		return true
	}
	return false
}

// CanViewTeamInsights returns true if the role may read cross-member analytics.
func (r Role) CanViewTeamInsights() bool {
	return r == RoleManager
}

// Member represents a team member the tracker knows about.
type Member struct {
	ID             string `yaml:"id" json:"id"`
	Name           string `yaml:"name" json:"name"`
	Email          string `yaml:"email" json:"email"`
	GitHubUsername string `yaml:"github_username,omitempty" json:"github_username,omitempty"`
	Role           Role   `yaml:"role,omitempty" json:"role,omitempty"`
}

// Roster holds the team configuration stored in .pulse/team.yaml.
type Roster struct {
	Members []Member `yaml:"members" json:"members"`
}

// FindMember returns the member with the given ID, or nil if not found.
func (t *Roster) FindMember(id string) *Member {
	for i := range t.Members {
		if t.Members[i].ID == id {
			return &t.Members[i]
		}
	}
	return nil
}

// FindByGitHubUsername returns the member with the given GitHub username,
// or nil if not found.
func (t *Roster) FindByGitHubUsername(login string) *Member {
	for i := range t.Members {
		if t.Members[i].GitHubUsername == login {
			return &t.Members[i]
		}
	}
	return nil
}

// AddMember adds a member or updates their record if the ID already exists.
func (t *Roster) AddMember(m Member) error {
	if m.ID == "" {
		return fmt.Errorf("member id cannot be empty")
	}
	if m.Name == "" {
		return fmt.Errorf("member name cannot be empty")
	}
	if m.Role != "" && !m.Role.IsValid() {
		return fmt.Errorf("invalid role: %s", m.Role)
	}
	for i := range t.Members {
		if t.Members[i].ID == m.ID {
			t.Members[i] = m
			return nil
		}
	}
	t.Members = append(t.Members, m)
	return nil
}

// RemoveMember removes a member by ID. Returns error if not found.
func (t *Roster) RemoveMember(id string) error {
	for i := range t.Members {
		if t.Members[i].ID == id {
			t.Members = append(t.Members[:i], t.Members[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("member not found: %s", id)
}
