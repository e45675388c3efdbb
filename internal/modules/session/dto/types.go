package dto

import "time"

type ConfigureInput struct {
	InhaleSeconds int
	HoldSeconds   int
	ExhaleSeconds int
}

type StatusOutput struct {
	State            string
	Phase            string
	SecondsRemaining int
	CompletedCycles  int
	StartedAt        time.Time
	// Note carries the last absorbed collaborator failure, for display
	// only; the timer itself never surfaces errors.
	Note string
}

type SummaryOutput struct {
	ID            string
	StartedAt     time.Time
	EndedAt       time.Time
	Cycles        int
	TotalSeconds  int
	InhaleSeconds int
	HoldSeconds   int
	ExhaleSeconds int
}

type ResetOutput struct {
	Finalized bool
	Summary   SummaryOutput
}
