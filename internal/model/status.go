package model

// Status represents the state of a single pipeline stage (download or clip)
type Status string

const (
	// StatusNotStarted means the stage has never been attempted in this session
	StatusNotStarted Status = "NotStarted"

	// StatusInProgress means an attempt is in flight
	StatusInProgress Status = "InProgress"

	// StatusSucceeded means the last attempt produced an artifact
	StatusSucceeded Status = "Succeeded"

	// StatusFailed means the last attempt failed
	StatusFailed Status = "Failed"
)

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsActive returns true if an attempt is in flight
func (s Status) IsActive() bool {
	return s == StatusInProgress
}

// IsFinished returns true if the last attempt reached a terminal state
func (s Status) IsFinished() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// CanStart reports whether a new attempt may be started from this status.
// Terminal states re-arm; only an in-flight attempt blocks.
func (s Status) CanStart() bool {
	return s != StatusInProgress
}
