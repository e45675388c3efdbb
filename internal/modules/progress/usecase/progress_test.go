package usecase_test

import (
	"context"
	"testing"
	"time"

	progressout "breathe/internal/modules/progress/adapter/out"
	progressdto "breathe/internal/modules/progress/dto"
	"breathe/internal/modules/progress/service"
	"breathe/internal/modules/progress/usecase"
)

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time { return f.now }

func TestRecordCycleAccumulatesAndPersists(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	clk := fixedClock{now: time.Date(2026, 8, 29, 8, 0, 0, 0, time.Local)}

	uc := usecase.NewInteractor(service.NewCounterService(clk, progressout.NewFileCounterStore(dir)))
	for i := 0; i < 3; i++ {
		out, err := uc.RecordCycle(context.Background(), progressdto.RecordInput{Day: "2026-08-29"})
		if err != nil {
			t.Fatalf("record cycle: %v", err)
		}
		if out.Count != i+1 {
			t.Fatalf("expected count %d, got %d", i+1, out.Count)
		}
	}

	reloaded := usecase.NewInteractor(service.NewCounterService(clk, progressout.NewFileCounterStore(dir)))
	counts, err := reloaded.Query(context.Background(), progressdto.QueryInput{})
	if err != nil {
		t.Fatalf("query reloaded: %v", err)
	}
	if len(counts) != 1 || counts[0].Day != "2026-08-29" || counts[0].Count != 3 {
		t.Fatalf("round trip mismatch: %+v", counts)
	}
}

func TestQuerySortsChronologicallyAndFiltersWindow(t *testing.T) {
	t.Parallel()
	clk := fixedClock{now: time.Date(2026, 8, 29, 8, 0, 0, 0, time.Local)}
	uc := usecase.NewInteractor(service.NewCounterService(clk, progressout.NewFileCounterStore(t.TempDir())))

	for _, day := range []string{"2026-08-29", "2026-08-10", "2026-08-27", "2026-08-27"} {
		if _, err := uc.RecordCycle(context.Background(), progressdto.RecordInput{Day: day}); err != nil {
			t.Fatalf("record cycle: %v", err)
		}
	}

	all, err := uc.Query(context.Background(), progressdto.QueryInput{})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	wantOrder := []string{"2026-08-10", "2026-08-27", "2026-08-29"}
	if len(all) != len(wantOrder) {
		t.Fatalf("expected %d days, got %d", len(wantOrder), len(all))
	}
	for i, day := range wantOrder {
		if all[i].Day != day {
			t.Fatalf("chronological order broken at %d: got %s want %s", i, all[i].Day, day)
		}
	}
	if all[1].Count != 2 {
		t.Fatalf("expected 2 cycles on 2026-08-27, got %d", all[1].Count)
	}

	week, err := uc.Query(context.Background(), progressdto.QueryInput{Days: 7})
	if err != nil {
		t.Fatalf("query week: %v", err)
	}
	if len(week) != 2 {
		t.Fatalf("7-day window must drop 2026-08-10, got %+v", week)
	}
}

func TestClearEmptiesCounts(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	clk := fixedClock{now: time.Date(2026, 8, 29, 8, 0, 0, 0, time.Local)}
	uc := usecase.NewInteractor(service.NewCounterService(clk, progressout.NewFileCounterStore(dir)))

	if _, err := uc.RecordCycle(context.Background(), progressdto.RecordInput{Day: "2026-08-29"}); err != nil {
		t.Fatalf("record cycle: %v", err)
	}
	if err := uc.Clear(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}

	reloaded := usecase.NewInteractor(service.NewCounterService(clk, progressout.NewFileCounterStore(dir)))
	counts, err := reloaded.Query(context.Background(), progressdto.QueryInput{})
	if err != nil {
		t.Fatalf("query after clear: %v", err)
	}
	if len(counts) != 0 {
		t.Fatalf("counts must stay empty after clear, got %+v", counts)
	}
}
