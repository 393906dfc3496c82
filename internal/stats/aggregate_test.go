package stats_test

import (
	"testing"
	"time"

	"github.com/karanvs/studybuddy/internal/models"
	"github.com/karanvs/studybuddy/internal/stats"
)

func session(subject string, minutes float64, startedAt time.Time) models.StudySession {
	return models.StudySession{
		Owner:           "maya",
		Subject:         subject,
		DurationMinutes: minutes,
		StartedAt:       startedAt,
	}
}

func TestTotalHours(t *testing.T) {
	sessions := []models.StudySession{
		session("math", 90, day(2024, 5, 10)),
		session("physics", 45, day(2024, 5, 9)),
		session("math", 0, day(2024, 5, 8)),
	}

	if got := stats.TotalHours(sessions); got != 2.3 {
		t.Errorf("TotalHours = %v, want 2.3", got)
	}

	// Summation order must not matter.
	reversed := []models.StudySession{sessions[2], sessions[1], sessions[0]}
	if got := stats.TotalHours(reversed); got != 2.3 {
		t.Errorf("TotalHours(reversed) = %v, want 2.3", got)
	}

	if got := stats.TotalHours(nil); got != 0 {
		t.Errorf("TotalHours(nil) = %v, want 0", got)
	}
}

func TestHoursThisWeekBoundaries(t *testing.T) {
	// Friday 2024-05-10; the week runs Monday 05-06 through Sunday 05-12.
	today := day(2024, 5, 10)
	sessions := []models.StudySession{
		session("math", 60, day(2024, 5, 6)),  // current Monday: included
		session("math", 60, day(2024, 5, 12)), // current Sunday: included
		session("math", 60, day(2024, 5, 5)),  // previous Sunday: excluded
		session("math", 60, day(2024, 4, 29)), // Monday a week earlier: excluded
	}

	if got := stats.HoursThisWeek(sessions, today); got != 2.0 {
		t.Errorf("HoursThisWeek = %v, want 2.0", got)
	}
}

func TestHoursThisWeekAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	// Friday 2024-03-08; the week runs Monday 03-04 through Sunday 03-10,
	// and Sunday is the 23-hour spring-forward day. The next Monday must
	// still land outside the window.
	today := time.Date(2024, 3, 8, 12, 0, 0, 0, ny)
	sessions := []models.StudySession{
		session("math", 60, time.Date(2024, 3, 10, 9, 0, 0, 0, ny)), // DST Sunday: included
		session("math", 60, time.Date(2024, 3, 11, 9, 0, 0, 0, ny)), // next Monday: excluded
		session("math", 60, time.Date(2024, 3, 4, 9, 0, 0, 0, ny)),  // current Monday: included
	}

	if got := stats.HoursThisWeek(sessions, today); got != 2.0 {
		t.Errorf("HoursThisWeek = %v, want 2.0", got)
	}
}

func TestTopicsMastered(t *testing.T) {
	sessions := []models.StudySession{
		session("math", 30, day(2024, 5, 10)),
		session("math", 30, day(2024, 5, 9)),
		session("physics", 30, day(2024, 5, 9)),
		session("", 30, day(2024, 5, 9)), // blank subject does not count
	}

	if got := stats.TopicsMastered(sessions); got != 2 {
		t.Errorf("TopicsMastered = %d, want 2", got)
	}
}

func TestWeeklyActivity(t *testing.T) {
	today := day(2024, 5, 10) // Friday
	sessions := []models.StudySession{
		session("math", 90, day(2024, 5, 10)),
		session("math", 30, time.Date(2024, 5, 10, 22, 0, 0, 0, time.Local)),
		session("physics", 60, day(2024, 5, 7)),
		session("physics", 60, day(2024, 5, 3)), // 7 days back: outside the window
	}

	series := stats.WeeklyActivity(sessions, today)

	if len(series) != 7 {
		t.Fatalf("series length = %d, want 7", len(series))
	}
	if series[0].Day != "Sat" || series[6].Day != "Fri" {
		t.Errorf("series runs %s..%s, want Sat..Fri", series[0].Day, series[6].Day)
	}
	if series[6].Hours != 2.0 {
		t.Errorf("today's hours = %v, want 2.0", series[6].Hours)
	}
	if series[3].Hours != 1.0 { // Tuesday 05-07
		t.Errorf("tuesday hours = %v, want 1.0", series[3].Hours)
	}
	if series[0].Hours != 0 {
		t.Errorf("saturday hours = %v, want 0", series[0].Hours)
	}
}

func TestWeeklyActivityEmpty(t *testing.T) {
	series := stats.WeeklyActivity(nil, day(2024, 5, 10))
	if len(series) != 7 {
		t.Fatalf("series length = %d, want 7", len(series))
	}
	for _, d := range series {
		if d.Hours != 0 {
			t.Errorf("%s hours = %v, want 0", d.Day, d.Hours)
		}
	}
}

func TestPerSubjectTotals(t *testing.T) {
	sessions := []models.StudySession{
		session("biology", 30, day(2024, 5, 10)),
		session("math", 60, day(2024, 5, 10)),
		session("algebra", 30, day(2024, 5, 9)),
		session("math", 15, day(2024, 5, 8)),
	}

	totals := stats.PerSubjectTotals(sessions)

	want := []stats.SubjectTotal{
		{Subject: "math", Minutes: 75},
		{Subject: "algebra", Minutes: 30}, // tie with biology: alphabetical
		{Subject: "biology", Minutes: 30},
	}
	if len(totals) != len(want) {
		t.Fatalf("totals length = %d, want %d", len(totals), len(want))
	}
	for i := range want {
		if totals[i] != want[i] {
			t.Errorf("totals[%d] = %+v, want %+v", i, totals[i], want[i])
		}
	}
}
