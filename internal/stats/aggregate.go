package stats

import (
	"math"
	"sort"
	"time"

	"github.com/karanvs/studybuddy/internal/models"
)

// DayActivity is one bar of the trailing 7-day activity chart.
type DayActivity struct {
	Day   string  `json:"day"` // weekday label, e.g. "Mon"
	Hours float64 `json:"hours"`
}

// SubjectTotal is the summed study time for one subject.
type SubjectTotal struct {
	Subject string  `json:"subject"`
	Minutes float64 `json:"minutes"`
}

// TotalHours sums every session's duration in hours, rounded to 1 decimal.
func TotalHours(sessions []models.StudySession) float64 {
	var minutes float64
	for _, s := range sessions {
		minutes += s.DurationMinutes
	}
	return round1(minutes / 60)
}

// HoursThisWeek sums sessions dated within the Monday-aligned ISO week
// containing today, Monday through Sunday inclusive. This window is distinct
// from the trailing 7-day window used by WeeklyActivity.
func HoursThisWeek(sessions []models.StudySession, today time.Time) float64 {
	monday := StartOfWeek(today)
	var minutes float64
	for _, s := range sessions {
		offset := DaysBetween(monday, s.StartedAt)
		if offset >= 0 && offset <= 6 {
			minutes += s.DurationMinutes
		}
	}
	return round1(minutes / 60)
}

// TopicsMastered counts the distinct subjects ever studied. The name follows
// the dashboard label; it claims exposure, not competency.
func TopicsMastered(sessions []models.StudySession) int {
	seen := make(map[string]bool)
	for _, s := range sessions {
		if s.Subject != "" {
			seen[s.Subject] = true
		}
	}
	return len(seen)
}

// MinutesOn sums the durations of sessions dated on the given calendar day.
func MinutesOn(sessions []models.StudySession, day time.Time) float64 {
	var minutes float64
	for _, s := range sessions {
		if SameDay(s.StartedAt, day) {
			minutes += s.DurationMinutes
		}
	}
	return minutes
}

// WeeklyActivity builds the trailing 7-day series covering today-6 through
// today, oldest first. Always exactly 7 entries; days without sessions read
// zero.
func WeeklyActivity(sessions []models.StudySession, today time.Time) []DayActivity {
	series := make([]DayActivity, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := DateOf(today).AddDate(0, 0, -offset)
		series = append(series, DayActivity{
			Day:   day.Format("Mon"),
			Hours: round1(MinutesOn(sessions, day) / 60),
		})
	}
	return series
}

// PerSubjectTotals sums minutes per subject, ordered by descending total,
// ties broken alphabetically.
func PerSubjectTotals(sessions []models.StudySession) []SubjectTotal {
	bySubject := make(map[string]float64)
	for _, s := range sessions {
		if s.Subject != "" {
			bySubject[s.Subject] += s.DurationMinutes
		}
	}

	totals := make([]SubjectTotal, 0, len(bySubject))
	for subject, minutes := range bySubject {
		totals = append(totals, SubjectTotal{Subject: subject, Minutes: minutes})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Minutes != totals[j].Minutes {
			return totals[i].Minutes > totals[j].Minutes
		}
		return totals[i].Subject < totals[j].Subject
	})
	return totals
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
