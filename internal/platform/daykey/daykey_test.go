package daykey_test

import (
	"testing"
	"time"

	"breathe/internal/platform/daykey"
)

func TestMakeParseRoundTrip(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 8, 29, 23, 59, 59, 0, time.Local)
	key := daykey.Make(at)
	if key != "2026-08-29" {
		t.Fatalf("unexpected key %q", key)
	}
	day, err := daykey.Parse(key)
	if err != nil {
		t.Fatalf("parse key: %v", err)
	}
	if !day.Equal(daykey.StartOfDay(at)) {
		t.Fatalf("parsed key must be local midnight, got %v", day)
	}
}

func TestCutoffIncludesExactBoundary(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)
	sevenDaysAgo := now.AddDate(0, 0, -7)

	if sevenDaysAgo.Before(daykey.Cutoff(now, 7)) {
		t.Fatalf("entry exactly 7 days old must be inside a 7-day window")
	}
	if !sevenDaysAgo.Before(daykey.Cutoff(now, 6)) {
		t.Fatalf("entry exactly 7 days old must be outside a 6-day window")
	}
}
