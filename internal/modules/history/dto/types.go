package dto

import "time"

type AppendInput struct {
	Timestamp time.Time
	Phase     string
	Seconds   int
}

// QueryInput filters to the last Days days, inclusive of the boundary;
// Days <= 0 means the full ledger.
type QueryInput struct {
	Days int
}

type EntryOutput struct {
	Timestamp time.Time
	Phase     string
	Seconds   int
}
