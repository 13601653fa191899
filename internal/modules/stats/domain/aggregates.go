package domain

import "time"

const DaysPerWeek = 7

// Aggregates are the running study totals. Zero marker times mean the marker
// has never been written.
type Aggregates struct {
	CumulativeMinutes int
	WeeklyMinutes     int
	WeeklyLastSaved   time.Time
	DailyMinutes      [DaysPerWeek]int
	DailyLastReset    time.Time
}

// Resets reports which buckets were cleared by a Record call.
type Resets struct {
	Weekly bool
	Daily  bool
}

// Record adds minutes of completed study at now and applies the Monday
// rollovers. The weekly total restarts at minutes (not zero) on the first
// save of a Monday after a non-Monday save; the weekday buckets are zeroed
// on the first save of a Monday whose last reset was not a Monday.
func (a Aggregates) Record(minutes int, now time.Time) (Aggregates, Resets) {
	next := a
	resets := Resets{}

	next.CumulativeMinutes += minutes

	if !a.WeeklyLastSaved.IsZero() && mondayAfterNonMonday(now, a.WeeklyLastSaved) {
		next.WeeklyMinutes = minutes
		resets.Weekly = true
	} else {
		next.WeeklyMinutes += minutes
	}
	next.WeeklyLastSaved = now

	if now.Weekday() == time.Monday && (a.DailyLastReset.IsZero() || mondayAfterNonMonday(now, a.DailyLastReset)) {
		next.DailyMinutes = [DaysPerWeek]int{}
		next.DailyLastReset = now
		resets.Daily = true
	}
	next.DailyMinutes[now.Weekday()] += minutes

	return next, resets
}

// mondayAfterNonMonday compares weekdays in now's location so a marker
// written in another zone is judged by the user's calendar.
func mondayAfterNonMonday(now, marker time.Time) bool {
	return now.Weekday() == time.Monday && marker.In(now.Location()).Weekday() != time.Monday
}

// Completion is one finished study phase.
type Completion struct {
	ID           string
	StudyMinutes int
	CompletedAt  time.Time
}

func (c Completion) Weekday() time.Weekday {
	return c.CompletedAt.Weekday()
}
