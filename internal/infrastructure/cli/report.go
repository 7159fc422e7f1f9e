package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reportQuery string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a full report and save it under .pulse/reports/",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		report, path, err := services.Reports.Generate(cmd.Context(), reportQuery)
		if err != nil {
			return MapError(fmt.Errorf("generate report: %w", err))
		}

		fmt.Printf("Report %s written to %s\n", report.ID, path)
		fmt.Printf("Health score: %d/100, narrative source: %s\n", report.Metrics.HealthScore, report.NarrativeSource)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportQuery, "query", "q", "", "Free-text question the narrative should answer")
	RootCmd.AddCommand(reportCmd)
}
