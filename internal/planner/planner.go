// Package planner derives schedule views from tasks and exams: due-today and
// due-this-week filters, and the revision-session heuristic for upcoming
// exams. Everything is computed against an explicit today; nothing is stored.
package planner

import (
	"errors"
	"fmt"
	"time"

	"github.com/karanvs/studybuddy/internal/models"
	"github.com/karanvs/studybuddy/internal/stats"
)

// ErrPlanInput marks plan requests rejected before any scheduling math.
var ErrPlanInput = errors.New("invalid plan input")

// recordDateLayouts are the shapes a stored due/exam date may take. Rows that
// match none of them are excluded from every date-bucketed view rather than
// failing the whole dashboard.
var recordDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseRecordDate interprets a stored date string, which may be a bare date
// or a full timestamp.
func ParseRecordDate(value string) (time.Time, bool) {
	for _, layout := range recordDateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	// Timestamp in an unknown shape: fall back to its date prefix.
	if len(value) > 10 {
		if t, err := time.ParseInLocation("2006-01-02", value[:10], time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DueToday filters tasks to those due on today's calendar date. Completed
// tasks are kept; whether to show them is the display layer's call.
func DueToday(tasks []models.Task, today time.Time) []models.Task {
	var due []models.Task
	for _, t := range tasks {
		d, ok := ParseRecordDate(t.DueDate)
		if ok && stats.SameDay(d, today) {
			due = append(due, t)
		}
	}
	return due
}

// PendingDueToday is DueToday restricted to not-yet-completed tasks.
func PendingDueToday(tasks []models.Task, today time.Time) []models.Task {
	var due []models.Task
	for _, t := range DueToday(tasks, today) {
		if !t.Completed {
			due = append(due, t)
		}
	}
	return due
}

// DueThisWeek counts tasks due within the Monday-aligned week containing
// today, Monday through Sunday inclusive, regardless of completion state.
func DueThisWeek(tasks []models.Task, today time.Time) int {
	monday := stats.StartOfWeek(today)
	count := 0
	for _, t := range tasks {
		d, ok := ParseRecordDate(t.DueDate)
		if !ok {
			continue
		}
		offset := stats.DaysBetween(monday, d)
		if offset >= 0 && offset <= 6 {
			count++
		}
	}
	return count
}

// PlanStatus is the date-derived state of an exam relative to today. It is
// recomputed on every read; no stored field drives it.
type PlanStatus int

const (
	PlanScheduled PlanStatus = iota // exam is in the future
	PlanDueToday                    // exam is today
	PlanPassed                      // exam date has gone by
)

func (s PlanStatus) String() string {
	switch s {
	case PlanDueToday:
		return "due today"
	case PlanPassed:
		return "passed"
	default:
		return "scheduled"
	}
}

// SuggestedSessions derives the revision-session count for an exam:
// min(daysLeft, difficulty*2) focused sessions, a linear heuristic rather
// than a real optimizer. Zero or negative daysLeft yields a terminal status
// with no sessions.
func SuggestedSessions(daysLeft, difficulty int) (int, PlanStatus, error) {
	if difficulty < 1 || difficulty > 5 {
		return 0, PlanScheduled, fmt.Errorf("%w: difficulty must be between 1 and 5", ErrPlanInput)
	}
	switch {
	case daysLeft == 0:
		return 0, PlanDueToday, nil
	case daysLeft < 0:
		return 0, PlanPassed, nil
	}

	sessions := difficulty * 2
	if daysLeft < sessions {
		sessions = daysLeft
	}
	return sessions, PlanScheduled, nil
}

// RevisionPlan is the suggested revision schedule for one exam.
type RevisionPlan struct {
	Subject  string
	ExamDate time.Time
	DaysLeft int
	Sessions int
	Status   PlanStatus
}

// BuildRevisionPlan computes days left from the exam date and applies the
// session heuristic.
func BuildRevisionPlan(subject string, examDate time.Time, difficulty int, today time.Time) (RevisionPlan, error) {
	daysLeft := stats.DaysBetween(today, examDate)
	sessions, status, err := SuggestedSessions(daysLeft, difficulty)
	if err != nil {
		return RevisionPlan{}, err
	}
	return RevisionPlan{
		Subject:  subject,
		ExamDate: stats.DateOf(examDate),
		DaysLeft: daysLeft,
		Sessions: sessions,
		Status:   status,
	}, nil
}

// StudyPlan spreads a fixed daily commitment over the days remaining before
// an exam.
type StudyPlan struct {
	Subject       string
	ExamDate      time.Time
	StartDate     time.Time
	RemainingDays int
	DailyHours    int
	TotalHours    int
}

// BuildStudyPlan creates an hours-per-day plan. Exams today or already passed
// cannot be planned for.
func BuildStudyPlan(subject string, examDate time.Time, hoursPerDay int, today time.Time) (StudyPlan, error) {
	if hoursPerDay < 1 {
		return StudyPlan{}, fmt.Errorf("%w: hours per day must be at least 1", ErrPlanInput)
	}
	remaining := stats.DaysBetween(today, examDate)
	if remaining <= 0 {
		return StudyPlan{}, fmt.Errorf("the exam date for %q has already passed or is today", subject)
	}

	return StudyPlan{
		Subject:       subject,
		ExamDate:      stats.DateOf(examDate),
		StartDate:     stats.DateOf(today),
		RemainingDays: remaining,
		DailyHours:    hoursPerDay,
		TotalHours:    remaining * hoursPerDay,
	}, nil
}
