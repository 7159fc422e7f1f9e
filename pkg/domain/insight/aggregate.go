package insight

import (
	"time"

	"github.com/freshmc/pulse/pkg/domain/tracking"
)

// Aggregate computes the base project counts from a module snapshot.
// referenceNow is injected rather than read from the wall clock so the same
// snapshot always yields the same counts.
//
// An empty snapshot is valid: all counts are zero and downstream rates treat
// the project as maximally healthy.
func Aggregate(modules []tracking.Module, referenceNow time.Time) ProjectMetrics {
	metrics := ProjectMetrics{
		TotalModules: len(modules),
	}

	for _, m := range modules {
		if m.Status.IsCompleted() {
			metrics.CompletedModules++
		}
		if m.Status.IsInProgress() {
			metrics.InProgressModules++
		}
		if m.IsOverdue(referenceNow) {
			metrics.DelayedModules++
		}
		if onTime, known := m.CompletedOnTime(); known && onTime {
			metrics.OnTimeModules++
		}
	}

	return metrics
}
