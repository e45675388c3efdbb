package domain

import "time"

type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "idle"
	}
}

// Session tracks one contiguous span from first phase start until
// reset. A cycle completes exactly when its Exhale phase finishes.
type Session struct {
	StartedAt       time.Time
	CompletedCycles int
}

// Summary is the immutable record of one finalized session.
type Summary struct {
	ID            string
	StartedAt     time.Time
	EndedAt       time.Time
	Cycles        int
	TotalSeconds  int
	InhaleSeconds int
	HoldSeconds   int
	ExhaleSeconds int
}

// Status is a display snapshot of the tracker.
type Status struct {
	State            State
	Phase            Phase
	SecondsRemaining int
	CompletedCycles  int
	StartedAt        time.Time
}
