package out

import (
	"context"
	"time"

	"breathe/internal/modules/history/domain"
)

// LedgerStore persists the full ledger as one blob, write-through.
type LedgerStore interface {
	Save(ctx context.Context, entries []domain.Entry) error
	Load(ctx context.Context) ([]domain.Entry, error)
}

// EntryIndex is a rebuildable projection for fast range queries. It is
// never the source of truth; callers fall back to the ledger when it
// misbehaves.
type EntryIndex interface {
	Insert(ctx context.Context, entry domain.Entry) error
	QueryRange(ctx context.Context, from time.Time) ([]domain.Entry, error)
	Reset(ctx context.Context) error
}
