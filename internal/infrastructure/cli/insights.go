package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/freshmc/pulse/pkg/application"
	"github.com/freshmc/pulse/pkg/domain/insight"
)

var (
	insightsQuery string
	insightsJSON  bool
	insightsFull  bool
)

var healthGood = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
var healthWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
var healthCrit = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Analyze the current snapshot and answer a free-text query",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		report, err := services.Insights.GenerateReport(cmd.Context(), insightsQuery)
		if err != nil {
			return MapError(fmt.Errorf("generate insights: %w", err))
		}

		if insightsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if insightsFull {
				return enc.Encode(report)
			}
			return enc.Encode(report.Summary())
		}

		if insightsFull {
			application.Render(os.Stdout, report)
			return nil
		}

		printSummary(report)
		return nil
	},
}

func printSummary(report *insight.Report) {
	s := report.Summary()

	fmt.Printf("Health Score: %s\n", healthStyle(s.HealthScore).Render(fmt.Sprintf("%d/100", s.HealthScore)))
	fmt.Printf("Modules:      %d total, %d completed, %d delayed\n",
		s.TotalModules, s.CompletedModules, s.DelayedModules)
	fmt.Println()
	fmt.Println(s.Narrative)

	if len(s.Blockers) > 0 {
		fmt.Println("\nTop Blockers")
		for _, b := range s.Blockers {
			fmt.Printf("  [%s] %s: %s (%s)\n", b.Priority, b.Title, b.Reason, b.AssignedTo)
		}
	}

	if len(s.TeamPerformance) > 0 {
		fmt.Println("\nTeam")
		for _, e := range s.TeamPerformance {
			fmt.Printf("  %-20s %3d%% (%d/%d)\n", e.Name, e.CompletionRate, e.Completed, e.TotalAssigned)
		}
	}

	fmt.Println("\nRecommendations")
	for _, rec := range s.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
}

// healthStyle maps a score to the terminal color for its band.
func healthStyle(score int) lipgloss.Style {
	switch {
	case score < 50:
		return healthCrit
	case score < 70:
		return healthWarn
	default:
		return healthGood
	}
}

func init() {
	insightsCmd.Flags().StringVarP(&insightsQuery, "query", "q", "", "Free-text question to answer (e.g. \"what is blocked?\")")
	insightsCmd.Flags().BoolVar(&insightsJSON, "json", false, "Output in JSON format")
	insightsCmd.Flags().BoolVar(&insightsFull, "full", false, "Show the untruncated report instead of the summary")
	RootCmd.AddCommand(insightsCmd)
}
