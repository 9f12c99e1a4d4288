package types

// BugStatus represents the workflow state of a bug
type BugStatus string

const (
	BugStatusOpen       BugStatus = "open"
	BugStatusInProgress BugStatus = "in_progress"
	BugStatusResolved   BugStatus = "resolved"
	BugStatusClosed     BugStatus = "closed"
)

// DefaultBugStatus is used when the given status is not a known value
const DefaultBugStatus = BugStatusOpen

// BugStatuses returns all statuses in workflow order
func BugStatuses() []BugStatus {
	return []BugStatus{BugStatusOpen, BugStatusInProgress, BugStatusResolved, BugStatusClosed}
}

// String returns the string representation of the status
func (s BugStatus) String() string {
	return string(s)
}

// IsValid checks if the status is valid
func (s BugStatus) IsValid() bool {
	switch s {
	case BugStatusOpen, BugStatusInProgress, BugStatusResolved, BugStatusClosed:
		return true
	default:
		return false
	}
}

// IsActive returns true while somebody still has to work on the bug
func (s BugStatus) IsActive() bool {
	return s == BugStatusOpen || s == BugStatusInProgress
}

// IsDone returns true for resolved and closed bugs
func (s BugStatus) IsDone() bool {
	return s == BugStatusResolved || s == BugStatusClosed
}

// ParseBugStatus converts a string into BugStatus, falling back to DefaultBugStatus
func ParseBugStatus(s string) BugStatus {
	status := BugStatus(s)
	if !status.IsValid() {
		return DefaultBugStatus
	}
	return status
}
