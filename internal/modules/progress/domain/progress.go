package domain

import (
	"sort"

	"breathe/internal/platform/daykey"
)

// DayCount is one day's completed full cycles. A cycle counts for the
// day its Exhale phase finished on.
type DayCount struct {
	Day   string
	Count int
}

// SortChronological orders by actual date value, not lexically; keys
// that fail to parse sink to the front so they stay visible.
func SortChronological(counts []DayCount) {
	sort.SliceStable(counts, func(a, b int) bool {
		da, errA := daykey.Parse(counts[a].Day)
		db, errB := daykey.Parse(counts[b].Day)
		if errA != nil || errB != nil {
			return errA != nil && errB == nil
		}
		return da.Before(db)
	})
}
