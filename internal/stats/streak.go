package stats

import (
	"sort"
	"time"
)

// Streak computes the current consecutive-study-day count from the days on
// which at least one session was logged. The streak is alive if the most
// recent study day is today or yesterday: studying yesterday but not yet
// today keeps the chain until a full day passes with no session.
//
// Input times may repeat within a day and arrive in any order; they are
// collapsed to distinct calendar days first. Days after today (sessions
// logged with a future --date) are ignored rather than counted as alive.
func Streak(studyTimes []time.Time, today time.Time) int {
	seen := make(map[time.Time]bool, len(studyTimes))
	days := make([]time.Time, 0, len(studyTimes))
	for _, t := range studyTimes {
		d := DateOf(t)
		if DaysBetween(today, d) > 0 {
			continue
		}
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	// Most recent day older than yesterday: the streak is already broken.
	if DaysBetween(days[0], today) > 1 {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if DaysBetween(days[i], days[i-1]) != 1 {
			break
		}
		streak++
	}
	return streak
}
