package insight

import (
	"fmt"
	"strings"
)

// NarrativeSystemPrompt frames the external text-generation call.
const NarrativeSystemPrompt = `You are a project delivery assistant. Answer the user's question about project status using only the metrics provided. Be concise, concrete, and actionable. Plain text only, no markdown.`

// BuildPrompt renders the structured context block sent to the external
// text-generation call: the metrics, blockers, and team performance plus the
// user's free-text question.
func BuildPrompt(m ProjectMetrics, query string) string {
	var b strings.Builder

	b.WriteString("Project metrics:\n")
	fmt.Fprintf(&b, "- Health score: %d/100\n", m.HealthScore)
	fmt.Fprintf(&b, "- Modules: %d total, %d completed, %d in progress, %d delayed, %d on time\n",
		m.TotalModules, m.CompletedModules, m.InProgressModules, m.DelayedModules, m.OnTimeModules)

	if len(m.Blockers) > 0 {
		fmt.Fprintf(&b, "\nBlockers (%d total):\n", m.TotalBlockers)
		for _, bl := range m.Blockers {
			fmt.Fprintf(&b, "- %s [%s]: %s\n", bl.Title, bl.Priority, bl.Reason)
		}
	} else {
		b.WriteString("\nNo blockers.\n")
	}

	if len(m.TeamPerformance) > 0 {
		b.WriteString("\nTeam performance:\n")
		for _, e := range m.TeamPerformance {
			fmt.Fprintf(&b, "- %s: %d%% completion (%d/%d modules, %d on time, %d delayed)\n",
				e.Name, e.CompletionRate, e.Completed, e.TotalAssigned, e.OnTime, e.Delayed)
		}
	}

	b.WriteString("\nQuestion: ")
	if query == "" {
		b.WriteString("Give a short status summary of the project.")
	} else {
		b.WriteString(query)
	}

	return b.String()
}

// FallbackNarrative produces a deterministic status narrative when the
// external call fails or is not configured. The query is keyword-matched
// (case-insensitive substring) against fixed categories; anything that does
// not match, including the empty query, gets the generic status dump. The
// result is always non-empty.
func FallbackNarrative(m ProjectMetrics, query string) string {
	q := strings.ToLower(query)

	switch {
	case containsAny(q, "summary", "weekly"):
		return summaryNarrative(m)
	case containsAny(q, "blocker", "issue", "problem"):
		return blockerNarrative(m)
	case containsAny(q, "behind", "delayed", "late"):
		return delayNarrative(m)
	case containsAny(q, "team", "performance"):
		return teamNarrative(m)
	default:
		return genericNarrative(m)
	}
}

func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func summaryNarrative(m ProjectMetrics) string {
	return fmt.Sprintf(
		"Project summary: health score %d/100. %d of %d modules are completed, %d in progress, and %d past their due date. %s",
		m.HealthScore, m.CompletedModules, m.TotalModules, m.InProgressModules, m.DelayedModules, healthPhrase(m.HealthScore))
}

func blockerNarrative(m ProjectMetrics) string {
	if m.TotalBlockers == 0 {
		return "No blockers detected. All modules are either progressing or waiting on nothing."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d blockers are holding up progress. Top items: ", m.TotalBlockers)
	for i, bl := range m.Blockers {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s (%s)", bl.Title, bl.Reason)
	}
	b.WriteString(".")
	return b.String()
}

func delayNarrative(m ProjectMetrics) string {
	if m.DelayedModules == 0 {
		return fmt.Sprintf("Nothing is behind schedule. %d of %d modules are completed and %d delivered on time.",
			m.CompletedModules, m.TotalModules, m.OnTimeModules)
	}
	return fmt.Sprintf(
		"%d of %d modules are past their due date. %d have been completed so far, %d of those on time. Focus on the overdue items to recover the schedule.",
		m.DelayedModules, m.TotalModules, m.CompletedModules, m.OnTimeModules)
}

func teamNarrative(m ProjectMetrics) string {
	if len(m.TeamPerformance) == 0 {
		return "No team activity to report: no modules are assigned to known team members."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Team performance across %d active members: ", len(m.TeamPerformance))
	for i, e := range m.TeamPerformance {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s at %d%% completion (%d/%d)", e.Name, e.CompletionRate, e.Completed, e.TotalAssigned)
	}
	b.WriteString(".")
	return b.String()
}

func genericNarrative(m ProjectMetrics) string {
	return fmt.Sprintf(
		"Current status: health score %d/100, %d total modules, %d completed, %d in progress, %d delayed, %d blockers. %s",
		m.HealthScore, m.TotalModules, m.CompletedModules, m.InProgressModules, m.DelayedModules, m.TotalBlockers, healthPhrase(m.HealthScore))
}

func healthPhrase(score int) string {
	switch {
	case score < healthCritical:
		return "The project needs immediate attention."
	case score < healthWarning:
		return "The project needs closer monitoring."
	default:
		return "The project is on track."
	}
}
