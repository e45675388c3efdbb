package domain

import (
	"fmt"
	"time"

	"breathe/internal/platform/daykey"
)

const (
	// DefaultWindowDays is the zero-filled fallback window shown when a
	// range holds no data.
	DefaultWindowDays = 7

	// PageLines caps the history block of a document page.
	PageLines = 40
)

// FormatEntryLine renders one ledger entry for text output.
func FormatEntryLine(ts time.Time, phase string, seconds int) string {
	return fmt.Sprintf("%s - %s (%ds)", ts.Local().Format("Jan 2, 2006 3:04:05 PM"), phase, seconds)
}

// Paginate splits lines into pages of at most perPage lines. Empty
// input yields no pages.
func Paginate(lines []string, perPage int) [][]string {
	if perPage < 1 || len(lines) == 0 {
		return nil
	}
	pages := make([][]string, 0, (len(lines)+perPage-1)/perPage)
	for start := 0; start < len(lines); start += perPage {
		end := start + perPage
		if end > len(lines) {
			end = len(lines)
		}
		pages = append(pages, lines[start:end])
	}
	return pages
}

// ZeroFilledWindow builds day labels ending today with all-zero values,
// oldest first.
func ZeroFilledWindow(now time.Time, days int) ([]string, []int) {
	if days < 1 {
		days = DefaultWindowDays
	}
	labels := make([]string, days)
	values := make([]int, days)
	for i := 0; i < days; i++ {
		labels[i] = daykey.Make(now.AddDate(0, 0, i-days+1))
	}
	return labels, values
}

// ActiveStats is the live-session slice of a document.
type ActiveStats struct {
	Phase            string
	SecondsRemaining int
	CompletedCycles  int
	StartedAt        time.Time
}

// SummaryStats is the most recent finalized session in a document.
type SummaryStats struct {
	StartedAt    time.Time
	EndedAt      time.Time
	Cycles       int
	TotalSeconds int
}

// DocumentData carries everything the document composer needs.
type DocumentData struct {
	GeneratedAt  time.Time
	RangeLabel   string
	Active       *ActiveStats
	LastSummary  *SummaryStats
	HistoryPages [][]string
	ChartBlock   string
}
