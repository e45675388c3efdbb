package out

import (
	"context"

	"breathe/internal/modules/session/domain"
)

// SummaryStore is the append-only log of finalized sessions.
type SummaryStore interface {
	Append(ctx context.Context, summary domain.Summary) error
	List(ctx context.Context) ([]domain.Summary, error)
	Clear(ctx context.Context) error
}

// Notifier announces phase starts. Implementations swallow their own
// failures; a broken voice must never touch the timer.
type Notifier interface {
	PhaseStarted(ctx context.Context, spec domain.PhaseSpec)
}
