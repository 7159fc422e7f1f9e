package insight

import (
	"time"

	"github.com/freshmc/pulse/pkg/domain/team"
	"github.com/freshmc/pulse/pkg/domain/tracking"
)

// Analyze runs the full metrics pipeline: aggregation, health scoring,
// blocker identification, and team-performance ranking. It is a pure
// function of its inputs - two calls with the same snapshot and the same
// referenceNow produce identical metrics, and the input slices are never
// mutated.
func Analyze(modules []tracking.Module, members []team.Member, referenceNow time.Time) ProjectMetrics {
	metrics := Aggregate(modules, referenceNow)
	metrics.HealthScore = HealthScore(metrics)
	metrics.Blockers, metrics.TotalBlockers = IdentifyBlockers(modules, referenceNow, DefaultBlockerLimit)
	metrics.TeamPerformance = AnalyzeTeamPerformance(modules, members)
	return metrics
}
