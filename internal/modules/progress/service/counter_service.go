package service

import (
	"context"

	"breathe/internal/modules/progress/domain"
	progressout "breathe/internal/modules/progress/port/out"
	"breathe/internal/platform/clock"
	"breathe/internal/platform/daykey"
)

// CounterService owns the per-day cycle counts. Mutations write through
// so the aggregate never lags the ledger by more than a failed save,
// which the tracker absorbs.
type CounterService struct {
	clock  clock.Clock
	store  progressout.CounterStore
	counts map[string]int
	loaded bool
}

func NewCounterService(clock clock.Clock, store progressout.CounterStore) *CounterService {
	return &CounterService{clock: clock, store: store}
}

func (s *CounterService) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	counts, err := s.store.Load(ctx)
	if err != nil || counts == nil {
		counts = map[string]int{}
	}
	s.counts = counts
	s.loaded = true
}

func (s *CounterService) RecordCycle(ctx context.Context, day string) (int, error) {
	s.ensureLoaded(ctx)
	s.counts[day]++
	return s.counts[day], s.store.Save(ctx, s.counts)
}

// Query returns day counts whose calendar day falls inside the window,
// sorted chronologically; days <= 0 returns every recorded day.
func (s *CounterService) Query(ctx context.Context, days int) []domain.DayCount {
	s.ensureLoaded(ctx)
	floor := daykey.StartOfDay(daykey.Cutoff(s.clock.Now(), days))
	out := []domain.DayCount{}
	for day, count := range s.counts {
		if days > 0 {
			date, err := daykey.Parse(day)
			if err != nil || date.Before(floor) {
				continue
			}
		}
		out = append(out, domain.DayCount{Day: day, Count: count})
	}
	domain.SortChronological(out)
	return out
}

func (s *CounterService) Clear(ctx context.Context) error {
	s.ensureLoaded(ctx)
	s.counts = map[string]int{}
	return s.store.Save(ctx, s.counts)
}
