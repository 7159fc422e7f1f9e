package insight

import (
	"math"
	"sort"

	"github.com/freshmc/pulse/pkg/domain/team"
	"github.com/freshmc/pulse/pkg/domain/tracking"
)

// AnalyzeTeamPerformance builds one PerformanceEntry per team member with at
// least one assigned module, ranked by completion rate. Members with no
// assignments are tracked internally but filtered from the output. Modules
// assigned to IDs the roster does not know are silently skipped.
//
// Ties on completion rate keep roster order: the sort is stable so repeated
// runs over the same inputs produce identical rankings.
func AnalyzeTeamPerformance(modules []tracking.Module, members []team.Member) []PerformanceEntry {
	entries := make([]PerformanceEntry, 0, len(members))
	index := make(map[string]int, len(members))

	for _, m := range members {
		index[m.ID] = len(entries)
		entries = append(entries, PerformanceEntry{
			UserID: m.ID,
			Name:   m.Name,
			Email:  m.Email,
		})
	}

	for _, mod := range modules {
		i, ok := index[mod.AssignedTo]
		if !ok {
			continue
		}

		entries[i].TotalAssigned++

		if !mod.Status.IsCompleted() {
			continue
		}
		entries[i].Completed++

		if mod.CompletedDate == nil || mod.DueDate == nil {
			continue
		}
		if !mod.CompletedDate.After(*mod.DueDate) {
			entries[i].OnTime++
		} else {
			entries[i].Delayed++
		}
	}

	active := entries[:0:0]
	for _, e := range entries {
		if e.TotalAssigned == 0 {
			continue
		}
		e.CompletionRate = int(math.Round(float64(e.Completed) / float64(e.TotalAssigned) * 100))
		active = append(active, e)
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].CompletionRate > active[j].CompletionRate
	})

	return active
}
