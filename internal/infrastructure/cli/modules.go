package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "Manage the module snapshot",
}

var modulesJSONOutput bool

var modulesImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Validate and import a module snapshot (JSON)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		snapshot, err := services.Snapshots.ImportFile(args[0])
		if err != nil {
			return MapError(fmt.Errorf("import snapshot: %w", err))
		}

		fmt.Printf("Imported %d modules", len(snapshot.Modules))
		if snapshot.Project != "" {
			fmt.Printf(" for project %s", snapshot.Project)
		}
		fmt.Println()
		return nil
	},
}

var modulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List modules in the current snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		snapshot, err := services.Snapshots.List()
		if err != nil {
			return MapError(fmt.Errorf("list modules: %w", err))
		}
		if snapshot == nil {
			fmt.Println("No snapshot imported yet.")
			return nil
		}

		if modulesJSONOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(snapshot)
		}

		fmt.Printf("Modules (%d)\n", len(snapshot.Modules))
		for _, m := range snapshot.Modules {
			due := ""
			if m.DueDate != nil {
				due = " due " + m.DueDate.Format("2006-01-02")
			}
			fmt.Printf("  %-12s %-30s %-12s %s%s\n", m.ID, m.Title, m.Status, m.EffectivePriority(), due)
		}
		return nil
	},
}

func init() {
	modulesListCmd.Flags().BoolVar(&modulesJSONOutput, "json", false, "Output in JSON format")
	modulesCmd.AddCommand(modulesImportCmd)
	modulesCmd.AddCommand(modulesListCmd)
	RootCmd.AddCommand(modulesCmd)
}
