package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/freshmc/pulse/internal/infrastructure/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Recompute the health score whenever the workspace changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		recompute := func(reason string) {
			report, err := services.Insights.GenerateReport(ctx, "")
			if err != nil {
				fmt.Printf("[%s] %s: %v\n", time.Now().Format("15:04:05"), reason, err)
				return
			}
			m := report.Metrics
			fmt.Printf("[%s] %s: health %d/100 (%d/%d completed, %d delayed, %d blockers)\n",
				time.Now().Format("15:04:05"), reason,
				m.HealthScore, m.CompletedModules, m.TotalModules, m.DelayedModules, m.TotalBlockers)
		}

		watcher, err := watch.NewWorkspaceWatcher(500*time.Millisecond, func(ev watch.ChangeEvent) {
			recompute(fmt.Sprintf("%s %s", ev.ChangeType, ev.Path))
		})
		if err != nil {
			return err
		}
		if err := watcher.Watch(services.Workspace.Repo.BasePath()); err != nil {
			return err
		}

		fmt.Printf("Watching %s (Ctrl+C to stop)\n", services.Workspace.Repo.BasePath())
		recompute("initial")

		if err := runWatcher(ctx, watcher); err != nil {
			return err
		}
		fmt.Println("\nStopped watching.")
		return nil
	},
}

func runWatcher(ctx context.Context, watcher *watch.WorkspaceWatcher) error {
	err := watcher.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func init() {
	RootCmd.AddCommand(watchCmd)
}
