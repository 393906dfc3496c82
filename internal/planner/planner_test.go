package planner_test

import (
	"errors"
	"testing"
	"time"

	"github.com/karanvs/studybuddy/internal/models"
	"github.com/karanvs/studybuddy/internal/planner"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func task(title, dueDate string, completed bool) models.Task {
	return models.Task{Owner: "maya", Title: title, DueDate: dueDate, Completed: completed}
}

func TestParseRecordDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2024-05-10", day(2024, 5, 10), true},
		{"2024-05-10 14:30:00", time.Date(2024, 5, 10, 14, 30, 0, 0, time.Local), true},
		{"2024-05-10T14:30:00+02:00", time.Date(2024, 5, 10, 14, 30, 0, 0, time.FixedZone("", 2*3600)), true},
		{"2024-05-10 morning", day(2024, 5, 10), true}, // date prefix still usable
		{"someday", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, tt := range tests {
		got, ok := planner.ParseRecordDate(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseRecordDate(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && !got.Equal(tt.want) {
			t.Errorf("ParseRecordDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDueToday(t *testing.T) {
	today := day(2024, 5, 10)
	tasks := []models.Task{
		task("bare date", "2024-05-10", false),
		task("timestamp", "2024-05-10 09:00:00", false),
		task("completed, still due", "2024-05-10", true),
		task("tomorrow", "2024-05-11", false),
		task("malformed", "not-a-date", false),
		task("empty", "", false),
	}

	due := planner.DueToday(tasks, today)
	if len(due) != 3 {
		t.Fatalf("DueToday = %d tasks, want 3", len(due))
	}

	pending := planner.PendingDueToday(tasks, today)
	if len(pending) != 2 {
		t.Fatalf("PendingDueToday = %d tasks, want 2", len(pending))
	}
	for _, p := range pending {
		if p.Completed {
			t.Errorf("PendingDueToday returned completed task %q", p.Title)
		}
	}
}

func TestDueThisWeek(t *testing.T) {
	// Friday 2024-05-10; the week runs Monday 05-06 through Sunday 05-12.
	today := day(2024, 5, 10)
	tasks := []models.Task{
		task("monday", "2024-05-06", false),
		task("sunday", "2024-05-12", true), // completion state is irrelevant here
		task("previous sunday", "2024-05-05", false),
		task("next monday", "2024-05-13", false),
		task("malformed", "??", false),
	}

	if got := planner.DueThisWeek(tasks, today); got != 2 {
		t.Errorf("DueThisWeek = %d, want 2", got)
	}
}

func TestSuggestedSessions(t *testing.T) {
	tests := []struct {
		daysLeft   int
		difficulty int
		sessions   int
		status     planner.PlanStatus
	}{
		{10, 3, 6, planner.PlanScheduled},
		{2, 5, 2, planner.PlanScheduled},
		{1, 1, 1, planner.PlanScheduled},
		{0, 3, 0, planner.PlanDueToday},
		{-1, 3, 0, planner.PlanPassed},
	}
	for _, tt := range tests {
		sessions, status, err := planner.SuggestedSessions(tt.daysLeft, tt.difficulty)
		if err != nil {
			t.Errorf("SuggestedSessions(%d, %d) error: %v", tt.daysLeft, tt.difficulty, err)
			continue
		}
		if sessions != tt.sessions || status != tt.status {
			t.Errorf("SuggestedSessions(%d, %d) = (%d, %v), want (%d, %v)",
				tt.daysLeft, tt.difficulty, sessions, status, tt.sessions, tt.status)
		}
	}
}

func TestSuggestedSessionsRejectsBadDifficulty(t *testing.T) {
	for _, difficulty := range []int{0, 6, -1} {
		_, _, err := planner.SuggestedSessions(5, difficulty)
		if !errors.Is(err, planner.ErrPlanInput) {
			t.Errorf("difficulty %d: err = %v, want ErrPlanInput", difficulty, err)
		}
	}
}

func TestBuildRevisionPlan(t *testing.T) {
	today := day(2024, 5, 10)

	plan, err := planner.BuildRevisionPlan("calculus", day(2024, 5, 20), 4, today)
	if err != nil {
		t.Fatalf("BuildRevisionPlan: %v", err)
	}
	if plan.DaysLeft != 10 || plan.Sessions != 8 || plan.Status != planner.PlanScheduled {
		t.Errorf("plan = %+v, want 10 days left, 8 sessions, scheduled", plan)
	}

	plan, err = planner.BuildRevisionPlan("biology", day(2024, 5, 10), 2, today)
	if err != nil {
		t.Fatalf("BuildRevisionPlan: %v", err)
	}
	if plan.Status != planner.PlanDueToday {
		t.Errorf("same-day plan status = %v, want PlanDueToday", plan.Status)
	}

	plan, err = planner.BuildRevisionPlan("history", day(2024, 5, 1), 2, today)
	if err != nil {
		t.Fatalf("BuildRevisionPlan: %v", err)
	}
	if plan.Status != planner.PlanPassed {
		t.Errorf("past plan status = %v, want PlanPassed", plan.Status)
	}
}

func TestBuildStudyPlan(t *testing.T) {
	today := day(2024, 5, 10)

	plan, err := planner.BuildStudyPlan("calculus", day(2024, 5, 17), 2, today)
	if err != nil {
		t.Fatalf("BuildStudyPlan: %v", err)
	}
	if plan.RemainingDays != 7 || plan.TotalHours != 14 {
		t.Errorf("plan = %+v, want 7 remaining days and 14 total hours", plan)
	}

	if _, err := planner.BuildStudyPlan("calculus", day(2024, 5, 10), 2, today); err == nil {
		t.Error("expected error for exam today")
	}
	if _, err := planner.BuildStudyPlan("calculus", day(2024, 5, 1), 2, today); err == nil {
		t.Error("expected error for passed exam")
	}
	if _, err := planner.BuildStudyPlan("calculus", day(2024, 5, 17), 0, today); !errors.Is(err, planner.ErrPlanInput) {
		t.Errorf("zero hours err = %v, want ErrPlanInput", err)
	}
}
