package usecase_test

import (
	"context"
	"testing"
	"time"

	historyout "breathe/internal/modules/history/adapter/out"
	historydto "breathe/internal/modules/history/dto"
	"breathe/internal/modules/history/service"
	"breathe/internal/modules/history/usecase"
)

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time { return f.now }

func TestQueryRangeBoundaryInclusiveOfExactAge(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 29, 9, 30, 0, 0, time.Local)
	clk := fixedClock{now: now}
	uc := usecase.NewInteractor(
		service.NewLedgerService(clk, historyout.NewFileLedgerStore(t.TempDir(), clk)),
		clk,
		nil,
	)

	old := historydto.AppendInput{Timestamp: now.AddDate(0, 0, -7), Phase: "Exhale", Seconds: 8}
	fresh := historydto.AppendInput{Timestamp: now, Phase: "Inhale", Seconds: 4}
	for _, in := range []historydto.AppendInput{old, fresh} {
		if err := uc.Append(context.Background(), in); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	within, err := uc.Query(context.Background(), historydto.QueryInput{Days: 7})
	if err != nil {
		t.Fatalf("query 7: %v", err)
	}
	if len(within) != 2 {
		t.Fatalf("7-day window must include the entry exactly 7 days old, got %d entries", len(within))
	}

	narrow, err := uc.Query(context.Background(), historydto.QueryInput{Days: 6})
	if err != nil {
		t.Fatalf("query 6: %v", err)
	}
	if len(narrow) != 1 || narrow[0].Phase != "Inhale" {
		t.Fatalf("6-day window must drop the 7-day-old entry, got %+v", narrow)
	}
}

func TestLedgerRoundTripThroughStore(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	now := time.Date(2026, 8, 29, 9, 30, 0, 0, time.Local)
	clk := fixedClock{now: now}

	first := usecase.NewInteractor(service.NewLedgerService(clk, historyout.NewFileLedgerStore(dir, clk)), clk, nil)
	inputs := []historydto.AppendInput{
		{Timestamp: now.Add(-19 * time.Second), Phase: "Inhale", Seconds: 4},
		{Timestamp: now.Add(-15 * time.Second), Phase: "Hold", Seconds: 7},
		{Timestamp: now.Add(-8 * time.Second), Phase: "Exhale", Seconds: 8},
	}
	for _, in := range inputs {
		if err := first.Append(context.Background(), in); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	reloaded := usecase.NewInteractor(service.NewLedgerService(clk, historyout.NewFileLedgerStore(dir, clk)), clk, nil)
	entries, err := reloaded.Query(context.Background(), historydto.QueryInput{})
	if err != nil {
		t.Fatalf("query reloaded: %v", err)
	}
	if len(entries) != len(inputs) {
		t.Fatalf("expected %d entries after reload, got %d", len(inputs), len(entries))
	}
	for i, e := range entries {
		if e.Phase != inputs[i].Phase || e.Seconds != inputs[i].Seconds {
			t.Fatalf("entry %d mismatch after reload: %+v", i, e)
		}
		if !e.Timestamp.Equal(inputs[i].Timestamp.Truncate(time.Second)) {
			t.Fatalf("entry %d timestamp drifted: got %v want %v", i, e.Timestamp, inputs[i].Timestamp)
		}
	}
}

func TestClearEmptiesLedgerAndPersists(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	clk := fixedClock{now: time.Date(2026, 8, 29, 9, 30, 0, 0, time.Local)}

	uc := usecase.NewInteractor(service.NewLedgerService(clk, historyout.NewFileLedgerStore(dir, clk)), clk, nil)
	if err := uc.Append(context.Background(), historydto.AppendInput{Timestamp: clk.now, Phase: "Exhale", Seconds: 8}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := uc.Clear(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}

	reloaded := usecase.NewInteractor(service.NewLedgerService(clk, historyout.NewFileLedgerStore(dir, clk)), clk, nil)
	entries, err := reloaded.Query(context.Background(), historydto.QueryInput{})
	if err != nil {
		t.Fatalf("query after clear: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("ledger must stay empty after clear, got %d entries", len(entries))
	}
}

func TestQueryPrefersIndexAndReindexRebuildsIt(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	now := time.Date(2026, 8, 29, 9, 30, 0, 0, time.Local)
	clk := fixedClock{now: now}
	index, err := historyout.NewSQLiteEntryIndex(dir + "/breathe.db")
	if err != nil {
		t.Fatalf("open index: %v", err)
	}

	uc := usecase.NewInteractor(service.NewLedgerService(clk, historyout.NewFileLedgerStore(dir, clk)), clk, index)
	for _, in := range []historydto.AppendInput{
		{Timestamp: now.AddDate(0, 0, -9), Phase: "Exhale", Seconds: 8},
		{Timestamp: now, Phase: "Inhale", Seconds: 4},
	} {
		if err := uc.Append(context.Background(), in); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recent, err := uc.Query(context.Background(), historydto.QueryInput{Days: 3})
	if err != nil {
		t.Fatalf("query via index: %v", err)
	}
	if len(recent) != 1 || recent[0].Phase != "Inhale" {
		t.Fatalf("index range query mismatch: %+v", recent)
	}

	if err := uc.Reindex(context.Background()); err != nil {
		t.Fatalf("reindex: %v", err)
	}
	all, err := uc.Query(context.Background(), historydto.QueryInput{})
	if err != nil {
		t.Fatalf("query all after reindex: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 entries after reindex, got %d", len(all))
	}
}
