package validation

import (
	"fmt"
	"math"
	"time"

	"github.com/freshmc/pulse/pkg/domain/tracking"
)

// Confidence levels for delay predictions, derived from how much history
// backs the estimate.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
	ConfidenceNone   = "n/a"
)

// defaultCompletionDays is assumed when a member has no completion history.
const defaultCompletionDays = 7.0

// DelayPrediction describes how a completion landed against its deadline and
// what the member's history suggests about future work.
type DelayPrediction struct {
	DelayDays         int     `json:"delay_days"` // negative = early
	Reason            string  `json:"reason"`
	Confidence        string  `json:"confidence"`
	AvgCompletionDays float64 `json:"avg_completion_days"`
	DataPoints        int     `json:"data_points"`
}

// PredictDelay computes the actual delay of a just-completed module and an
// average completion time over the member's completion history. Confidence
// scales with the number of historical data points: >=5 high, >=2 medium,
// else low. A module without a due date yields a neutral prediction.
func PredictDelay(m tracking.Module, history []tracking.Module, now time.Time) DelayPrediction {
	if m.DueDate == nil {
		return DelayPrediction{
			Reason:     "No due date set",
			Confidence: ConfidenceNone,
		}
	}

	completed := now
	if m.CompletedDate != nil {
		completed = *m.CompletedDate
	}
	delayDays := int(completed.Sub(*m.DueDate).Hours() / 24)

	avg, points := averageCompletionDays(history)

	confidence := ConfidenceLow
	switch {
	case points >= 5:
		confidence = ConfidenceHigh
	case points >= 2:
		confidence = ConfidenceMedium
	}

	var reason string
	switch {
	case delayDays > 0:
		reason = fmt.Sprintf("Completed %d days late", delayDays)
	case delayDays == 0:
		reason = "Completed on time"
	default:
		reason = fmt.Sprintf("Completed %d days early", -delayDays)
	}

	return DelayPrediction{
		DelayDays:         delayDays,
		Reason:            reason,
		Confidence:        confidence,
		AvgCompletionDays: avg,
		DataPoints:        points,
	}
}

// averageCompletionDays averages created-to-completed spans over modules
// that carry both dates. With no usable history the tracker's historical
// default of one week is assumed.
func averageCompletionDays(history []tracking.Module) (float64, int) {
	total := 0.0
	points := 0
	for _, m := range history {
		if m.CreatedAt == nil || m.CompletedDate == nil {
			continue
		}
		total += m.CompletedDate.Sub(*m.CreatedAt).Hours() / 24
		points++
	}

	if points == 0 {
		return defaultCompletionDays, 0
	}
	return math.Round(total/float64(points)*10) / 10, points
}
