package insight

import (
	"fmt"
	"sort"
	"time"

	"github.com/freshmc/pulse/pkg/domain/tracking"
)

// DefaultBlockerLimit bounds the ranked blocker list.
const DefaultBlockerLimit = 5

// IdentifyBlockers scans the snapshot for modules impeding progress and
// returns the top entries ranked by (priority, days overdue), plus the total
// number of blockers found before truncation.
//
// A single module can contribute two entries: one for being overdue and one
// for waiting on incomplete dependencies. Dependency blockage is always
// escalated to high priority regardless of the module's own priority.
func IdentifyBlockers(modules []tracking.Module, referenceNow time.Time, limit int) ([]BlockerEntry, int) {
	if limit <= 0 {
		limit = DefaultBlockerLimit
	}

	var entries []BlockerEntry

	for _, m := range modules {
		if m.IsOverdue(referenceNow) {
			days := daysBetween(*m.DueDate, referenceNow)
			entries = append(entries, BlockerEntry{
				ModuleID:    m.ID,
				Title:       m.Title,
				Reason:      fmt.Sprintf("Overdue by %d days", days),
				Priority:    string(m.EffectivePriority()),
				DaysOverdue: days,
				AssignedTo:  m.AssignedTo,
			})
		}

		if len(m.Dependencies) > 0 {
			waiting := incompleteDependencies(m, modules)
			if waiting > 0 {
				entries = append(entries, BlockerEntry{
					ModuleID:   m.ID,
					Title:      m.Title,
					Reason:     fmt.Sprintf("Waiting on %d dependencies", waiting),
					Priority:   string(tracking.PriorityHigh),
					AssignedTo: m.AssignedTo,
				})
			}
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		ri := tracking.Priority(entries[i].Priority).Rank()
		rj := tracking.Priority(entries[j].Priority).Rank()
		if ri != rj {
			return ri > rj
		}
		return entries[i].DaysOverdue > entries[j].DaysOverdue
	})

	total := len(entries)
	if len(entries) > limit {
		entries = entries[:limit]
	}

	return entries, total
}

// incompleteDependencies counts how many listed dependency IDs resolve to a
// module in the same snapshot that has not completed. Dangling IDs are
// skipped: a dependency the snapshot cannot see is not evidence of blockage.
func incompleteDependencies(m tracking.Module, modules []tracking.Module) int {
	count := 0
	for _, depID := range m.Dependencies {
		for i := range modules {
			if modules[i].ID == depID && !modules[i].Status.IsCompleted() {
				count++
				break
			}
		}
	}
	return count
}

// daysBetween returns the number of whole days from a to b.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
