package dto

type RecordInput struct {
	Day string
}

// QueryInput filters to the last Days days; Days <= 0 means all days.
type QueryInput struct {
	Days int
}

type DayCountOutput struct {
	Day   string
	Count int
}
