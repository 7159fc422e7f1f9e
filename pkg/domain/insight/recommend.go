package insight

import "fmt"

// Health bands for recommendations and display.
const (
	healthCritical = 50
	healthWarning  = 70
)

// Recommendations evaluates the fixed rule set against the metrics and
// returns every matching message. The two health-band rules are mutually
// exclusive; all other rules are independent. When nothing fires, a single
// positive message is returned so the list is never empty.
func Recommendations(m ProjectMetrics) []string {
	var recs []string

	if m.HealthScore < healthCritical {
		recs = append(recs, fmt.Sprintf("Critical: project health is %d/100. Immediate intervention needed to get delivery back under control.", m.HealthScore))
	} else if m.HealthScore < healthWarning {
		recs = append(recs, fmt.Sprintf("Warning: project health is %d/100. Review delayed modules and rebalance the workload.", m.HealthScore))
	}

	if float64(m.DelayedModules) > float64(m.CompletedModules)*0.3 {
		recs = append(recs, fmt.Sprintf("High delay rate: %d modules are past their due date. Revisit deadlines or scope.", m.DelayedModules))
	}

	if m.TotalBlockers > 0 {
		recs = append(recs, fmt.Sprintf("Address %d blockers holding up progress, starting with the highest priority.", m.TotalBlockers))
	}

	struggling := 0
	for _, e := range m.TeamPerformance {
		if e.CompletionRate < 50 {
			struggling++
		}
	}
	if struggling > 0 {
		recs = append(recs, fmt.Sprintf("%d team members have completion rates below 50%% and may need support or reassignment.", struggling))
	}

	if len(recs) == 0 {
		recs = append(recs, "Project is on track. Keep up the current pace.")
	}

	return recs
}
