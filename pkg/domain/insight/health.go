package insight

import "math"

// Health score weights. Completion contributes up to 40 points, on-time
// delivery up to 30, absence of delay up to 30.
const (
	completionWeight = 0.4
	onTimeWeight     = 30.0
	delayWeight      = 30.0
)

// HealthScore collapses the aggregated counts into a single 0-100 score.
//
// An empty project scores 100: there is nothing late, nothing delayed, and
// nothing to penalize a not-yet-started project for. With no completed
// modules the on-time term is 0, not 30 - zero completions is not the same
// as fully on-time delivery.
func HealthScore(m ProjectMetrics) int {
	if m.TotalModules == 0 {
		return 100
	}

	completionRate := float64(m.CompletedModules) / float64(m.TotalModules) * 100

	delayRate := float64(m.DelayedModules) / float64(max(m.TotalModules, 1))
	delayRate = clampRate(delayRate)

	onTimeRate := float64(m.OnTimeModules) / float64(max(m.CompletedModules, 1))
	onTimeRate = clampRate(onTimeRate)

	score := math.Round(completionRate*completionWeight + onTimeRate*onTimeWeight + (1-delayRate)*delayWeight)

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score)
}

// clampRate guards against inconsistent upstream counts (e.g. more delayed
// modules than total modules) pushing a rate outside [0,1].
func clampRate(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
