package cli

import (
	"fmt"
	"os"

	"github.com/freshmc/pulse/internal/infrastructure/wiring"
)

// loadServicesForCurrentDir wires the application services for the working
// directory. A degraded AI provider is reported on stderr but is not fatal.
func loadServicesForCurrentDir() (*wiring.AppServices, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	services, err := wiring.BuildAppServices(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	if !services.Workspace.Repo.IsInitialized() {
		return nil, NewCLIError(
			"workspace not initialized",
			"Run 'pulse init' first",
			nil,
		)
	}

	return services, nil
}
