package model

import (
	"path/filepath"
	"strings"
	"time"
)

// Stage is the state of one pipeline (download or clip). Transitions return
// a new value so the controller can apply them as a reducer.
type Stage struct {
	Status     Status
	Artifact   string    // path to the produced file, set only when Succeeded
	LastError  string    // last error message if any
	StartedAt  time.Time // when the current attempt started
	FinishedAt time.Time // when the current attempt finished
}

// NewStage returns a stage that has never been attempted
func NewStage() Stage {
	return Stage{Status: StatusNotStarted}
}

// Start re-arms the stage for a new attempt, discarding any previous result.
func (s Stage) Start(now time.Time) Stage {
	return Stage{
		Status:    StatusInProgress,
		StartedAt: now,
	}
}

// Succeed completes the current attempt with the produced artifact.
func (s Stage) Succeed(artifact string, now time.Time) Stage {
	s.Status = StatusSucceeded
	s.Artifact = artifact
	s.LastError = ""
	s.FinishedAt = now
	return s
}

// Fail completes the current attempt with an error.
func (s Stage) Fail(err error, now time.Time) Stage {
	s.Status = StatusFailed
	s.Artifact = ""
	s.LastError = ""
	if err != nil {
		s.LastError = err.Error()
	}
	s.FinishedAt = now
	return s
}

// File returns the artifact path when the stage succeeded.
func (s Stage) File() (string, bool) {
	if s.Status != StatusSucceeded || s.Artifact == "" {
		return "", false
	}
	return s.Artifact, true
}

// Elapsed returns how long the current attempt took, or zero while it runs
func (s Stage) Elapsed() time.Duration {
	if s.StartedAt.IsZero() || s.FinishedAt.IsZero() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

// GetDisplayName returns the artifact file name without extension, or "—"
func (s Stage) GetDisplayName() string {
	if s.Artifact == "" {
		return "—"
	}
	name := filepath.Base(s.Artifact)
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}
