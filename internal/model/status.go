package model

// ItemStatus represents the state of a single work item during a run
type ItemStatus string

const (
	// ItemStatusPending means the item is queued but not started
	ItemStatusPending ItemStatus = "Pending"

	// ItemStatusDownloading means the download is in progress
	ItemStatusDownloading ItemStatus = "Downloading"

	// ItemStatusSimulating means metadata is being extracted for a dry run
	ItemStatusSimulating ItemStatus = "Simulating"

	// ItemStatusSucceeded means the item finished successfully
	ItemStatusSucceeded ItemStatus = "Succeeded"

	// ItemStatusFailed means the item failed with an error
	ItemStatusFailed ItemStatus = "Failed"
)

// String returns the string representation of ItemStatus
func (s ItemStatus) String() string {
	return string(s)
}

// IsActive returns true if the item is being processed
func (s ItemStatus) IsActive() bool {
	return s == ItemStatusDownloading || s == ItemStatusSimulating
}

// IsFinished returns true if the item reached a terminal state
func (s ItemStatus) IsFinished() bool {
	return s == ItemStatusSucceeded || s == ItemStatusFailed
}

// CanTransition reports whether moving from s to next is allowed:
// pending -> downloading|simulating -> succeeded|failed.
func (s ItemStatus) CanTransition(next ItemStatus) bool {
	switch s {
	case ItemStatusPending:
		return next == ItemStatusDownloading || next == ItemStatusSimulating
	case ItemStatusDownloading, ItemStatusSimulating:
		return next.IsFinished()
	default:
		return false
	}
}
