package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "pulse",
	Version: Version,
	Short:   "Project-health insights for tracked software work",
	Long: `Pulse turns a module snapshot and a team roster into actionable insight.
It answers three questions for any tracked project:
1. How healthy is the project right now?
2. What is blocking progress?
3. Who is delivering, and who needs help?`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}
