package tracking

// Priority is the declared urgency of a module.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank maps a priority to its sort weight: high=3, medium=2, low=1.
// Unmapped values rank 0 and sort below every recognized priority.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// IsValid checks if the priority is a recognized value.
func (p Priority) IsValid() bool {
	return p.Rank() > 0
}
