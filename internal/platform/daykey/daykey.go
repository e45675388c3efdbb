package daykey

import "time"

// Day keys are device-local calendar dates. They sort the same
// lexically and chronologically, but callers that need ordering still
// go through Parse so a malformed key cannot reorder silently.
const Format = "2006-01-02"

func Make(t time.Time) string {
	return t.Local().Format(Format)
}

func Parse(key string) (time.Time, error) {
	return time.ParseInLocation(Format, key, time.Local)
}

// Cutoff returns the inclusive lower bound of a rolling "last N days"
// window ending at t. An entry exactly N days old is still inside.
func Cutoff(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, -days)
}

// StartOfDay returns local midnight for t's calendar day.
func StartOfDay(t time.Time) time.Time {
	d := t.Local()
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local)
}
