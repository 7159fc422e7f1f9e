package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/freshmc/pulse/pkg/domain/team"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage the team roster",
}

var (
	teamJSONOutput bool
	teamAddEmail   string
	teamAddGitHub  string
	teamAddRole    string
)

var teamListCmd = &cobra.Command{
	Use:   "list",
	Short: "List team members",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		roster, err := services.Team.ListMembers()
		if err != nil {
			return MapError(fmt.Errorf("list team: %w", err))
		}

		if teamJSONOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(roster)
		}

		if len(roster.Members) == 0 {
			fmt.Println("No team members configured.")
			return nil
		}

		fmt.Printf("Team Members (%d)\n", len(roster.Members))
		for _, m := range roster.Members {
			github := m.GitHubUsername
			if github == "" {
				github = "-"
			}
			fmt.Printf("  %-12s %-20s %-24s github:%s\n", m.ID, m.Name, m.Email, github)
		}
		return nil
	},
}

var teamAddCmd = &cobra.Command{
	Use:   "add <id> <name>",
	Short: "Add or update a team member",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		member := team.Member{
			ID:             args[0],
			Name:           args[1],
			Email:          teamAddEmail,
			GitHubUsername: teamAddGitHub,
			Role:           team.Role(teamAddRole),
		}
		if err := services.Team.AddMember(member); err != nil {
			return MapError(fmt.Errorf("add member: %w", err))
		}

		fmt.Printf("Member %s added\n", member.Name)
		return nil
	},
}

var teamRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a team member",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		if err := services.Team.RemoveMember(args[0]); err != nil {
			return MapError(fmt.Errorf("remove member: %w", err))
		}

		fmt.Printf("Member %s removed\n", args[0])
		return nil
	},
}

func init() {
	teamListCmd.Flags().BoolVar(&teamJSONOutput, "json", false, "Output in JSON format")
	teamAddCmd.Flags().StringVar(&teamAddEmail, "email", "", "Member email address")
	teamAddCmd.Flags().StringVar(&teamAddGitHub, "github", "", "GitHub username used for push validation")
	teamAddCmd.Flags().StringVar(&teamAddRole, "role", "", "Role (manager, member)")
	teamCmd.AddCommand(teamListCmd)
	teamCmd.AddCommand(teamAddCmd)
	teamCmd.AddCommand(teamRemoveCmd)
	RootCmd.AddCommand(teamCmd)
}
