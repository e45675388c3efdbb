package service

import (
	"context"

	"breathe/internal/modules/history/domain"
	historyout "breathe/internal/modules/history/port/out"
	"breathe/internal/platform/clock"
	"breathe/internal/platform/daykey"
)

// LedgerService owns the in-memory ledger. It loads from the store once
// and writes through on every mutation; a failed or malformed load
// recovers to an empty ledger rather than surfacing an error.
type LedgerService struct {
	clock   clock.Clock
	store   historyout.LedgerStore
	entries []domain.Entry
	loaded  bool
}

func NewLedgerService(clock clock.Clock, store historyout.LedgerStore) *LedgerService {
	return &LedgerService{clock: clock, store: store}
}

func (s *LedgerService) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	entries, err := s.store.Load(ctx)
	if err != nil {
		entries = nil
	}
	s.entries = entries
	s.loaded = true
}

func (s *LedgerService) Append(ctx context.Context, entry domain.Entry) error {
	s.ensureLoaded(ctx)
	s.entries = append(s.entries, entry)
	return s.store.Save(ctx, s.entries)
}

// Query returns entries inside a rolling window of the last days days,
// boundary inclusive; days <= 0 returns everything. Order is preserved.
func (s *LedgerService) Query(ctx context.Context, days int) []domain.Entry {
	s.ensureLoaded(ctx)
	if days <= 0 {
		out := make([]domain.Entry, len(s.entries))
		copy(out, s.entries)
		return out
	}
	cutoff := daykey.Cutoff(s.clock.Now(), days)
	out := []domain.Entry{}
	for _, e := range s.entries {
		if !e.Timestamp.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

func (s *LedgerService) Clear(ctx context.Context) error {
	s.ensureLoaded(ctx)
	s.entries = nil
	return s.store.Save(ctx, nil)
}
