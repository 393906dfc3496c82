package stats

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/karanvs/studybuddy/internal/models"
)

// SessionSource is the slice of the record store the engine reads from.
type SessionSource interface {
	ListSessions(owner string) ([]models.StudySession, error)
}

// UserStats is the dashboard summary for one owner.
type UserStats struct {
	Streak         int     `json:"streak"`
	TotalHours     float64 `json:"total_hours"`
	HoursWeek      float64 `json:"hours_week"`
	TopicsMastered int     `json:"topics_mastered"`
	DailyGoalPct   int     `json:"daily_goal_pct"`
}

// Engine is the one canonical statistics implementation. Every call reads the
// store fresh; reads never mutate anything, so computing twice on an unchanged
// store yields identical results.
type Engine struct {
	store SessionSource
	now   func() time.Time
}

// NewEngine builds an engine over an injected store handle.
func NewEngine(store SessionSource) *Engine {
	return &Engine{store: store, now: time.Now}
}

// UserStats computes the dashboard summary. On a store failure it returns
// zeroed stats along with the error so dashboards degrade instead of crashing.
func (e *Engine) UserStats(owner string) (UserStats, error) {
	sessions, err := e.store.ListSessions(owner)
	if err != nil {
		log.Warn("stats degraded to defaults", "owner", owner, "err", err)
		return UserStats{}, err
	}

	today := e.now()
	studyTimes := make([]time.Time, 0, len(sessions))
	for _, s := range sessions {
		studyTimes = append(studyTimes, s.StartedAt)
	}

	return UserStats{
		Streak:         Streak(studyTimes, today),
		TotalHours:     TotalHours(sessions),
		HoursWeek:      HoursThisWeek(sessions, today),
		TopicsMastered: TopicsMastered(sessions),
		DailyGoalPct:   DailyGoalPercent(MinutesOn(sessions, today)),
	}, nil
}

// WeeklyActivity returns the trailing 7-day series for the owner. The series
// keeps its 7-entry shape even when the store read fails, so charts render
// empty rather than broken.
func (e *Engine) WeeklyActivity(owner string) ([]DayActivity, error) {
	sessions, err := e.store.ListSessions(owner)
	if err != nil {
		log.Warn("weekly activity degraded to defaults", "owner", owner, "err", err)
		return WeeklyActivity(nil, e.now()), err
	}
	return WeeklyActivity(sessions, e.now()), nil
}

// SubjectTotals returns per-subject study time for the owner.
func (e *Engine) SubjectTotals(owner string) ([]SubjectTotal, error) {
	sessions, err := e.store.ListSessions(owner)
	if err != nil {
		log.Warn("subject totals degraded to defaults", "owner", owner, "err", err)
		return nil, err
	}
	return PerSubjectTotals(sessions), nil
}
