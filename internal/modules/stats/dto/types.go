package dto

import "time"

type RecordInput struct {
	Minutes int
}

type RecordOutput struct {
	CompletionID      string
	CumulativeMinutes int
	WeeklyMinutes     int
	DailyMinutes      [7]int
	WeeklyReset       bool
	DailyReset        bool
	JournalPath       string
}

type SummaryInput struct {
	Recent int
}

type SummaryOutput struct {
	CumulativeMinutes int
	WeeklyMinutes     int
	WeeklyLastSaved   time.Time
	DailyMinutes      [7]int
	DailyLastReset    time.Time
	Recent            []CompletionOutput
}

type CompletionOutput struct {
	ID           string
	StudyMinutes int
	CompletedAt  time.Time
}
