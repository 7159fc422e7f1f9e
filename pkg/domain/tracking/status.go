package tracking

// Status is the workflow state of a module. The enum is open on purpose:
// the tracker frontend has historically written free-form values, so the
// engine treats anything other than "Completed" as incomplete instead of
// rejecting unknown statuses.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusBlocked    Status = "Blocked"
	StatusCompleted  Status = "Completed"
)

// KnownStatuses returns the statuses the state machine understands.
func KnownStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusBlocked, StatusCompleted}
}

// IsKnown returns true if the status is one the state machine understands.
func (s Status) IsKnown() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusBlocked, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsCompleted returns true only for the Completed status. Every other value,
// known or not, counts as incomplete.
func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

// IsInProgress returns true if work on the module has started.
func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

// IsBlocked returns true if the module is explicitly marked blocked.
func (s Status) IsBlocked() bool {
	return s == StatusBlocked
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}
