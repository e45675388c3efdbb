package domain

import "time"

// Entry is one completed phase. The ledger is append-only: insertion
// order is chronological order, and entries are never mutated.
type Entry struct {
	Timestamp time.Time
	Phase     string
	Seconds   int
}

// NewEntry truncates to whole seconds so the in-memory ledger, the
// persisted blob, and the index projection all agree on equality.
func NewEntry(at time.Time, phase string, seconds int) Entry {
	return Entry{Timestamp: at.Truncate(time.Second), Phase: phase, Seconds: seconds}
}
