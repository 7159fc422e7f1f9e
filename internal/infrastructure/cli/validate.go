package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/freshmc/pulse/internal/infrastructure/github"
)

var validatePayload string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Apply a GitHub push payload to auto-complete matching modules",
	Long: `Validate reads a GitHub push webhook payload and checks it against the
workspace: if the pusher maps to a team member with an in-progress module
whose validation rule matches the repository, the module is marked completed
and a delay prediction is reported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if validatePayload == "" {
			return NewCLIError("no payload given", "Pass the webhook body with --payload <file>", nil)
		}

		// #nosec G304 -- Path is user-supplied by design (CLI argument)
		data, err := os.ReadFile(validatePayload)
		if err != nil {
			return fmt.Errorf("read payload: %w", err)
		}

		event, err := github.ParsePushPayload(data)
		if err != nil {
			return err
		}

		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		outcome, err := services.Validation.ProcessPush(event)
		if err != nil {
			return MapError(fmt.Errorf("process push: %w", err))
		}

		if !outcome.Matched {
			fmt.Printf("No module completed: %s\n", outcome.Reason)
			return nil
		}

		fmt.Printf("Module %s (%s) marked completed by push from %s\n",
			outcome.ModuleID, outcome.Title, event.Pusher)
		fmt.Printf("Delivery: %s (confidence: %s)\n", outcome.Delay.Reason, outcome.Delay.Confidence)
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validatePayload, "payload", "", "Path to a GitHub push webhook payload (JSON)")
	RootCmd.AddCommand(validateCmd)
}
