package wiring

import (
	"fmt"

	infraai "github.com/freshmc/pulse/internal/infrastructure/ai"
	"github.com/freshmc/pulse/pkg/ai"
	"github.com/freshmc/pulse/pkg/application"
	domainai "github.com/freshmc/pulse/pkg/domain/ai"
)

// AppServices exposes the application layer services wired together with a workspace.
type AppServices struct {
	Workspace  *Workspace
	Insights   *application.InsightService
	Reports    *application.ReportService
	Validation *application.ValidationService
	Team       *application.TeamService
	Snapshots  *application.SnapshotService
	Provider   domainai.Provider
}

// BuildAppServices constructs the workbench of services and AI provider
// wiring for a workspace root. A provider that cannot be constructed is not
// fatal: the insight service degrades to the deterministic fallback
// narrative, and the construction error is surfaced alongside the services.
func BuildAppServices(root string) (*AppServices, error) {
	workspace := NewWorkspace(root)

	var provider domainai.Provider
	inner, provErr := infraai.GetDefaultProvider("gemini", "")
	if provErr != nil {
		provErr = fmt.Errorf("AI provider unavailable, using fallback narrative: %w", provErr)
	} else {
		provider = ai.NewResilientProvider(inner)
	}

	insightSvc := application.NewInsightService(workspace.Repo, provider, workspace.Events)

	services := &AppServices{
		Workspace:  workspace,
		Insights:   insightSvc,
		Reports:    application.NewReportService(insightSvc, workspace.Repo),
		Validation: application.NewValidationService(workspace.Repo, workspace.Events),
		Team:       application.NewTeamService(workspace.Repo, workspace.Events),
		Snapshots:  application.NewSnapshotService(workspace.Repo, workspace.Events),
		Provider:   provider,
	}

	return services, provErr
}
