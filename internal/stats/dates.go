package stats

import (
	"time"
)

// DateOf truncates t to midnight in its own location. All date bucketing in
// the engine goes through this so the naive-local-date convention lives in
// one place.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfWeek returns midnight of the most recent Monday on or before t
// (ISO week, Monday first).
func StartOfWeek(t time.Time) time.Time {
	// Go's weekday: Sunday=0, Monday=1, ..., Saturday=6
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	monday := t.AddDate(0, 0, -(wd - 1))
	return DateOf(monday)
}

// DaysBetween returns the number of whole calendar days from a to b,
// negative when b is before a. Hours within the day are ignored. Both dates
// are re-anchored to UTC midnight so the difference is purely calendrical:
// subtracting local midnights directly would count the 23-hour day of a DST
// spring-forward as zero days.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
