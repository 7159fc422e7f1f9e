package insight

import "errors"

// Domain errors for insight generation.
var (
	// ErrSubjectNotFound indicates the requested subject (user, team, or
	// project) has no module snapshot to analyze. This is the only hard
	// failure in the pipeline; everything else degrades to a best-effort
	// report.
	ErrSubjectNotFound = errors.New("subject not found")
)
