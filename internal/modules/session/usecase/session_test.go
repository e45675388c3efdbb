package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	historydto "breathe/internal/modules/history/dto"
	progressdto "breathe/internal/modules/progress/dto"
	"breathe/internal/modules/session/domain"
	sessiondto "breathe/internal/modules/session/dto"
	"breathe/internal/modules/session/service"
	"breathe/internal/platform/daykey"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type fakeIDGenerator struct {
	value string
}

func (g fakeIDGenerator) New() string {
	return g.value
}

type fakeHistory struct {
	appended []historydto.AppendInput
	err      error
}

func (h *fakeHistory) Append(_ context.Context, input historydto.AppendInput) error {
	if h.err != nil {
		return h.err
	}
	h.appended = append(h.appended, input)
	return nil
}

func (h *fakeHistory) Query(context.Context, historydto.QueryInput) ([]historydto.EntryOutput, error) {
	return nil, nil
}

func (h *fakeHistory) Clear(context.Context) error { return nil }

func (h *fakeHistory) Reindex(context.Context) error { return nil }

type fakeProgress struct {
	recorded []string
	err      error
}

func (p *fakeProgress) RecordCycle(_ context.Context, input progressdto.RecordInput) (progressdto.DayCountOutput, error) {
	if p.err != nil {
		return progressdto.DayCountOutput{}, p.err
	}
	p.recorded = append(p.recorded, input.Day)
	return progressdto.DayCountOutput{Day: input.Day, Count: len(p.recorded)}, nil
}

func (p *fakeProgress) Query(context.Context, progressdto.QueryInput) ([]progressdto.DayCountOutput, error) {
	return nil, nil
}

func (p *fakeProgress) Clear(context.Context) error { return nil }

type fakeSummaryStore struct {
	summaries []domain.Summary
	appendErr error
}

func (s *fakeSummaryStore) Append(_ context.Context, summary domain.Summary) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.summaries = append(s.summaries, summary)
	return nil
}

func (s *fakeSummaryStore) List(context.Context) ([]domain.Summary, error) {
	return s.summaries, nil
}

func (s *fakeSummaryStore) Clear(context.Context) error {
	s.summaries = nil
	return nil
}

type fakeNotifier struct {
	announced []domain.Phase
}

func (n *fakeNotifier) PhaseStarted(_ context.Context, spec domain.PhaseSpec) {
	n.announced = append(n.announced, spec.Name)
}

type fixture struct {
	interactor *Interactor
	clock      *fakeClock
	history    *fakeHistory
	progress   *fakeProgress
	summaries  *fakeSummaryStore
	notifier   *fakeNotifier
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	clk := &fakeClock{now: time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)}
	history := &fakeHistory{}
	progress := &fakeProgress{}
	summaries := &fakeSummaryStore{}
	notifier := &fakeNotifier{}
	svc := service.NewTrackerService(clk, fakeIDGenerator{value: "session-1"})
	uc := NewInteractor(svc, history, progress, summaries, notifier)
	return fixture{
		interactor: uc.(*Interactor),
		clock:      clk,
		history:    history,
		progress:   progress,
		summaries:  summaries,
		notifier:   notifier,
	}
}

func (f fixture) tick(t *testing.T, ctx context.Context, n int) sessiondto.StatusOutput {
	t.Helper()
	var status sessiondto.StatusOutput
	var err error
	for i := 0; i < n; i++ {
		f.clock.now = f.clock.now.Add(time.Second)
		status, err = f.interactor.Tick(ctx)
		if err != nil {
			t.Fatalf("tick: %v", err)
		}
	}
	return status
}

func TestFullCycleRecordsLedgerAndProgress(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)

	if err := f.interactor.Configure(ctx, sessiondto.ConfigureInput{InhaleSeconds: 4, HoldSeconds: 7, ExhaleSeconds: 8}); err != nil {
		t.Fatalf("configure: %v", err)
	}
	if _, err := f.interactor.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	status := f.tick(t, ctx, 19)

	if status.CompletedCycles != 1 {
		t.Fatalf("expected 1 completed cycle after 19 seconds, got %d", status.CompletedCycles)
	}
	if status.Phase != string(domain.PhaseInhale) {
		t.Fatalf("expected wrap to inhale, got %q", status.Phase)
	}

	if len(f.history.appended) != 3 {
		t.Fatalf("expected 3 ledger entries, got %d", len(f.history.appended))
	}
	want := []struct {
		phase   string
		seconds int
	}{
		{string(domain.PhaseInhale), 4},
		{string(domain.PhaseHold), 7},
		{string(domain.PhaseExhale), 8},
	}
	for i, w := range want {
		got := f.history.appended[i]
		if got.Phase != w.phase || got.Seconds != w.seconds {
			t.Fatalf("entry %d: expected %s (%ds), got %s (%ds)", i, w.phase, w.seconds, got.Phase, got.Seconds)
		}
	}

	today := daykey.Make(f.clock.now)
	if len(f.progress.recorded) != 1 || f.progress.recorded[0] != today {
		t.Fatalf("expected one cycle recorded for %s, got %v", today, f.progress.recorded)
	}
}

func TestStartWhileRunningPreservesPosition(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)

	f.interactor.Configure(ctx, sessiondto.ConfigureInput{InhaleSeconds: 4, HoldSeconds: 7, ExhaleSeconds: 8})
	f.interactor.Start(ctx)
	f.tick(t, ctx, 5)

	status, err := f.interactor.Start(ctx)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if status.Phase != string(domain.PhaseHold) {
		t.Fatalf("expected to remain in hold, got %q", status.Phase)
	}
	if status.SecondsRemaining != 6 {
		t.Fatalf("expected 6 seconds remaining, got %d", status.SecondsRemaining)
	}
	if len(f.notifier.announced) != 2 {
		t.Fatalf("expected no extra announcement on redundant start, got %v", f.notifier.announced)
	}
}

func TestPauseFreezesRemainingTime(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)

	f.interactor.Configure(ctx, sessiondto.ConfigureInput{InhaleSeconds: 4, HoldSeconds: 7, ExhaleSeconds: 8})
	f.interactor.Start(ctx)
	f.tick(t, ctx, 2)

	status, err := f.interactor.PauseToggle(ctx)
	if err != nil {
		t.Fatalf("pause: %v", err)
	}
	if status.State != "paused" {
		t.Fatalf("expected paused state, got %q", status.State)
	}

	status = f.tick(t, ctx, 10)
	if status.SecondsRemaining != 2 {
		t.Fatalf("expected remaining frozen at 2, got %d", status.SecondsRemaining)
	}
	if len(f.history.appended) != 0 {
		t.Fatalf("expected no ledger entries while paused, got %d", len(f.history.appended))
	}

	f.interactor.PauseToggle(ctx)
	status = f.tick(t, ctx, 2)
	if status.Phase != string(domain.PhaseHold) {
		t.Fatalf("expected hold after resume, got %q", status.Phase)
	}
}

func TestResetAppendsExactlyOneSummary(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)

	f.interactor.Configure(ctx, sessiondto.ConfigureInput{InhaleSeconds: 4, HoldSeconds: 7, ExhaleSeconds: 8})
	f.interactor.Start(ctx)
	f.tick(t, ctx, 19)

	out, err := f.interactor.Reset(ctx)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if !out.Finalized {
		t.Fatal("expected reset of active session to finalize")
	}
	if out.Summary.Cycles != 1 || out.Summary.TotalSeconds != 19 {
		t.Fatalf("expected 1 cycle over 19 seconds, got %d cycles over %ds", out.Summary.Cycles, out.Summary.TotalSeconds)
	}
	if len(f.summaries.summaries) != 1 {
		t.Fatalf("expected exactly one stored summary, got %d", len(f.summaries.summaries))
	}
	if f.summaries.summaries[0].ID != "session-1" {
		t.Fatalf("unexpected summary id %q", f.summaries.summaries[0].ID)
	}

	out, err = f.interactor.Reset(ctx)
	if err != nil {
		t.Fatalf("idle reset: %v", err)
	}
	if out.Finalized {
		t.Fatal("expected idle reset to be a no-op")
	}
	if len(f.summaries.summaries) != 1 {
		t.Fatalf("expected no additional summary, got %d", len(f.summaries.summaries))
	}
}

func TestTickAbsorbsCollaboratorFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)
	f.history.err = errors.New("disk full")

	f.interactor.Configure(ctx, sessiondto.ConfigureInput{InhaleSeconds: 2, HoldSeconds: 2, ExhaleSeconds: 2})
	f.interactor.Start(ctx)

	status := f.tick(t, ctx, 2)
	if status.Note == "" {
		t.Fatal("expected failure note on status")
	}
	if status.State != "running" {
		t.Fatalf("expected session to keep running, got %q", status.State)
	}

	status = f.tick(t, ctx, 4)
	if status.CompletedCycles != 1 {
		t.Fatalf("expected cycle counting to continue, got %d", status.CompletedCycles)
	}
}

func TestNoteClearsAfterWritesRecover(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)
	f.history.err = errors.New("disk full")

	f.interactor.Configure(ctx, sessiondto.ConfigureInput{InhaleSeconds: 2, HoldSeconds: 2, ExhaleSeconds: 2})
	f.interactor.Start(ctx)

	status := f.tick(t, ctx, 2)
	if status.Note == "" {
		t.Fatal("expected failure note after failed ledger write")
	}

	// Mid-phase ticks perform no writes and must not clear the note.
	status = f.tick(t, ctx, 1)
	if status.Note == "" {
		t.Fatal("expected note to survive a tick with no writes")
	}

	f.history.err = nil
	status = f.tick(t, ctx, 1)
	if status.Note != "" {
		t.Fatalf("expected note cleared after successful boundary write, got %q", status.Note)
	}
}

func TestSummaryWriteFailureDoesNotFailReset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)
	f.summaries.appendErr = errors.New("read-only filesystem")

	f.interactor.Configure(ctx, sessiondto.ConfigureInput{InhaleSeconds: 1, HoldSeconds: 1, ExhaleSeconds: 1})
	f.interactor.Start(ctx)
	f.tick(t, ctx, 3)

	out, err := f.interactor.Reset(ctx)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if !out.Finalized {
		t.Fatal("expected reset to finalize despite store failure")
	}

	status, err := f.interactor.Status(ctx)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.Note == "" {
		t.Fatal("expected failure note on status")
	}
	if status.State != "idle" {
		t.Fatalf("expected idle after reset, got %q", status.State)
	}
}

func TestStartAnnouncesFirstPhase(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)

	f.interactor.Configure(ctx, sessiondto.ConfigureInput{InhaleSeconds: 4, HoldSeconds: 7, ExhaleSeconds: 8})
	f.interactor.Start(ctx)

	if len(f.notifier.announced) != 1 || f.notifier.announced[0] != domain.PhaseInhale {
		t.Fatalf("expected inhale announcement on start, got %v", f.notifier.announced)
	}
}
