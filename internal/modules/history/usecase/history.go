package usecase

import (
	"context"
	"time"

	"breathe/internal/modules/history/domain"
	historydto "breathe/internal/modules/history/dto"
	historyin "breathe/internal/modules/history/port/in"
	historyout "breathe/internal/modules/history/port/out"
	"breathe/internal/modules/history/service"
	"breathe/internal/platform/clock"
	"breathe/internal/platform/daykey"
)

type Interactor struct {
	svc   *service.LedgerService
	clock clock.Clock
	index historyout.EntryIndex
}

// NewInteractor wires the ledger and an optional index projection.
// Index failures never propagate: writes are fire-and-forget and reads
// fall back to the ledger itself.
func NewInteractor(svc *service.LedgerService, clock clock.Clock, index historyout.EntryIndex) historyin.Usecase {
	return &Interactor{svc: svc, clock: clock, index: index}
}

func (i *Interactor) Append(ctx context.Context, input historydto.AppendInput) error {
	entry := domain.NewEntry(input.Timestamp, input.Phase, input.Seconds)
	if err := i.svc.Append(ctx, entry); err != nil {
		return err
	}
	if i.index != nil {
		_ = i.index.Insert(ctx, entry)
	}
	return nil
}

func (i *Interactor) Query(ctx context.Context, input historydto.QueryInput) ([]historydto.EntryOutput, error) {
	if i.index != nil {
		from := time.Time{}
		if input.Days > 0 {
			from = daykey.Cutoff(i.clock.Now(), input.Days)
		}
		if entries, err := i.index.QueryRange(ctx, from); err == nil {
			return toOutputs(entries), nil
		}
	}
	return toOutputs(i.svc.Query(ctx, input.Days)), nil
}

func (i *Interactor) Clear(ctx context.Context) error {
	if err := i.svc.Clear(ctx); err != nil {
		return err
	}
	if i.index != nil {
		_ = i.index.Reset(ctx)
	}
	return nil
}

// Reindex rebuilds the projection from the ledger. Bootstrap runs it at
// startup so index queries always agree with the persisted blob.
func (i *Interactor) Reindex(ctx context.Context) error {
	if i.index == nil {
		return nil
	}
	if err := i.index.Reset(ctx); err != nil {
		return err
	}
	for _, e := range i.svc.Query(ctx, 0) {
		if err := i.index.Insert(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func toOutputs(entries []domain.Entry) []historydto.EntryOutput {
	out := make([]historydto.EntryOutput, len(entries))
	for i, e := range entries {
		out[i] = historydto.EntryOutput{Timestamp: e.Timestamp, Phase: e.Phase, Seconds: e.Seconds}
	}
	return out
}
