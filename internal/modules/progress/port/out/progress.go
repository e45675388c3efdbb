package out

import "context"

// CounterStore persists the day-key → cycle-count map as one blob.
type CounterStore interface {
	Save(ctx context.Context, counts map[string]int) error
	Load(ctx context.Context) (map[string]int, error)
}
