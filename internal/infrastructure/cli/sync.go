package cli

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/freshmc/pulse/internal/infrastructure/github"
)

var (
	syncOwner     string
	syncRepo      string
	syncToken     string
	syncSinceDays int
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull commit activity from GitHub for team cross-checks",
	Long: `Sync fetches commit counts per author from a GitHub repository so the
completion rates in team performance can be compared against actual delivery
activity. The token is read from --token or the GITHUB_TOKEN environment
variable; public repositories work without one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if syncOwner == "" || syncRepo == "" {
			return NewCLIError("repository not specified", "Pass --owner and --repo", nil)
		}

		token := syncToken
		if token == "" {
			token = os.Getenv("GITHUB_TOKEN")
		}

		since := time.Now().AddDate(0, 0, -syncSinceDays)
		sync := github.NewStatSync(cmd.Context(), token)

		counts, err := sync.CommitActivity(cmd.Context(), syncOwner, syncRepo, since)
		if err != nil {
			return err
		}

		if len(counts) == 0 {
			fmt.Printf("No commits in %s/%s in the last %d days.\n", syncOwner, syncRepo, syncSinceDays)
			return nil
		}

		logins := make([]string, 0, len(counts))
		for login := range counts {
			logins = append(logins, login)
		}
		sort.Slice(logins, func(i, j int) bool {
			if counts[logins[i]] != counts[logins[j]] {
				return counts[logins[i]] > counts[logins[j]]
			}
			return logins[i] < logins[j]
		})

		fmt.Printf("Commit activity for %s/%s (last %d days)\n", syncOwner, syncRepo, syncSinceDays)
		for _, login := range logins {
			fmt.Printf("  %-24s %d\n", login, counts[login])
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().StringVar(&syncOwner, "owner", "", "Repository owner")
	syncCmd.Flags().StringVar(&syncRepo, "repo", "", "Repository name")
	syncCmd.Flags().StringVar(&syncToken, "token", "", "GitHub token (defaults to GITHUB_TOKEN)")
	syncCmd.Flags().IntVar(&syncSinceDays, "since-days", 30, "How far back to look")
	RootCmd.AddCommand(syncCmd)
}
