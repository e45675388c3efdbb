package usecase

import (
	"context"

	historydto "breathe/internal/modules/history/dto"
	historyin "breathe/internal/modules/history/port/in"
	progressdto "breathe/internal/modules/progress/dto"
	progressin "breathe/internal/modules/progress/port/in"
	"breathe/internal/modules/session/domain"
	sessiondto "breathe/internal/modules/session/dto"
	sessionin "breathe/internal/modules/session/port/in"
	sessionout "breathe/internal/modules/session/port/out"
	"breathe/internal/modules/session/service"
	"breathe/internal/platform/daykey"
)

// Interactor routes tracker events to the ledger, the progress
// aggregator, and the notifier. Everything reached from Tick absorbs
// collaborator failures: the worst a broken store can do is leave a
// note on the status line.
type Interactor struct {
	svc       *service.TrackerService
	history   historyin.Usecase
	progress  progressin.Usecase
	summaries sessionout.SummaryStore
	notifier  sessionout.Notifier
	note      string
}

func NewInteractor(
	svc *service.TrackerService,
	history historyin.Usecase,
	progress progressin.Usecase,
	summaries sessionout.SummaryStore,
	notifier sessionout.Notifier,
) sessionin.Usecase {
	return &Interactor{svc: svc, history: history, progress: progress, summaries: summaries, notifier: notifier}
}

func (i *Interactor) Configure(_ context.Context, input sessiondto.ConfigureInput) error {
	i.svc.Configure(input.InhaleSeconds, input.HoldSeconds, input.ExhaleSeconds)
	return nil
}

func (i *Interactor) Start(ctx context.Context) (sessiondto.StatusOutput, error) {
	ev, started := i.svc.Start()
	if started {
		i.announce(ctx, ev.Spec)
	}
	return i.status(), nil
}

func (i *Interactor) PauseToggle(_ context.Context) (sessiondto.StatusOutput, error) {
	i.svc.PauseToggle()
	return i.status(), nil
}

// Tick processes one second. Each completed phase lands in the ledger,
// and a completed Exhale additionally bumps today's cycle count in the
// same tick, keeping aggregate and ledger consistent.
func (i *Interactor) Tick(ctx context.Context) (sessiondto.StatusOutput, error) {
	now := i.svc.Now()
	wrote := false
	failed := false
	for _, ev := range i.svc.Tick() {
		switch ev.Kind {
		case domain.PhaseCompleted:
			wrote = true
			err := i.history.Append(ctx, historydto.AppendInput{
				Timestamp: now,
				Phase:     string(ev.Spec.Name),
				Seconds:   ev.Spec.Seconds,
			})
			if err != nil {
				i.note = "history: " + err.Error()
				failed = true
			}
			if ev.Spec.Name == domain.PhaseExhale {
				if _, err := i.progress.RecordCycle(ctx, progressdto.RecordInput{Day: daykey.Make(now)}); err != nil {
					i.note = "progress: " + err.Error()
					failed = true
				}
			}
		case domain.PhaseStarted:
			i.announce(ctx, ev.Spec)
		}
	}
	// A boundary tick whose writes all land proves the stores recovered,
	// so the stale note comes off the status line.
	if wrote && !failed {
		i.note = ""
	}
	return i.status(), nil
}

// Reset finalizes the active session into exactly one summary and
// returns the tracker to the not-started state. Idle resets are no-ops.
func (i *Interactor) Reset(ctx context.Context) (sessiondto.ResetOutput, error) {
	summary, finalized := i.svc.Finalize()
	if !finalized {
		return sessiondto.ResetOutput{}, nil
	}
	if err := i.summaries.Append(ctx, summary); err != nil {
		i.note = "summary: " + err.Error()
	}
	return sessiondto.ResetOutput{Finalized: true, Summary: toSummaryOutput(summary)}, nil
}

func (i *Interactor) Status(_ context.Context) (sessiondto.StatusOutput, error) {
	return i.status(), nil
}

func (i *Interactor) Summaries(ctx context.Context) ([]sessiondto.SummaryOutput, error) {
	summaries, err := i.summaries.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]sessiondto.SummaryOutput, len(summaries))
	for idx, s := range summaries {
		out[idx] = toSummaryOutput(s)
	}
	return out, nil
}

func (i *Interactor) ClearSummaries(ctx context.Context) error {
	return i.summaries.Clear(ctx)
}

func (i *Interactor) announce(ctx context.Context, spec domain.PhaseSpec) {
	if i.notifier != nil {
		i.notifier.PhaseStarted(ctx, spec)
	}
}

func (i *Interactor) status() sessiondto.StatusOutput {
	s := i.svc.Status()
	return sessiondto.StatusOutput{
		State:            s.State.String(),
		Phase:            string(s.Phase),
		SecondsRemaining: s.SecondsRemaining,
		CompletedCycles:  s.CompletedCycles,
		StartedAt:        s.StartedAt,
		Note:             i.note,
	}
}

func toSummaryOutput(s domain.Summary) sessiondto.SummaryOutput {
	return sessiondto.SummaryOutput{
		ID:            s.ID,
		StartedAt:     s.StartedAt,
		EndedAt:       s.EndedAt,
		Cycles:        s.Cycles,
		TotalSeconds:  s.TotalSeconds,
		InhaleSeconds: s.InhaleSeconds,
		HoldSeconds:   s.HoldSeconds,
		ExhaleSeconds: s.ExhaleSeconds,
	}
}
