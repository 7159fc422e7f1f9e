package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/freshmc/pulse/pkg/storage"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a pulse workspace in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolve working directory: %w", err)
		}

		repo := storage.NewFilesystemRepository(cwd)
		if repo.IsInitialized() {
			fmt.Println("Workspace already initialized.")
			return nil
		}

		if err := repo.Initialize(); err != nil {
			return fmt.Errorf("initialize workspace: %w", err)
		}

		fmt.Printf("Initialized pulse workspace in %s\n", repo.BasePath())
		fmt.Println("Next: 'pulse modules import <file>' and 'pulse team add'")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
