// Package remind runs the background reminder loop: an hourly check that
// nudges the user when the daily goal is unmet or tasks are due today.
package remind

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gen2brain/beeep"
	"github.com/go-co-op/gocron"

	"github.com/karanvs/studybuddy/internal/models"
	"github.com/karanvs/studybuddy/internal/planner"
	"github.com/karanvs/studybuddy/internal/stats"
)

// Notifier delivers a reminder to the user.
type Notifier interface {
	Notify(title, message string) error
}

// DesktopNotifier sends desktop notifications.
type DesktopNotifier struct{}

func (DesktopNotifier) Notify(title, message string) error {
	beeep.AppName = "studybuddy"
	return beeep.Notify(title, message, "")
}

// TaskSource is the slice of the record store the reminder reads from.
type TaskSource interface {
	ListTasks(owner string) ([]models.Task, error)
}

// Reminder owns the scheduled checks for one user.
type Reminder struct {
	scheduler *gocron.Scheduler
	engine    *stats.Engine
	tasks     TaskSource
	notifier  Notifier
	owner     string
	startHour int
	endHour   int
	now       func() time.Time
}

// New builds a reminder that checks hourly within [startHour, endHour].
func New(engine *stats.Engine, tasks TaskSource, notifier Notifier, owner string, startHour, endHour int) *Reminder {
	return &Reminder{
		scheduler: gocron.NewScheduler(time.Local),
		engine:    engine,
		tasks:     tasks,
		notifier:  notifier,
		owner:     owner,
		startHour: startHour,
		endHour:   endHour,
		now:       time.Now,
	}
}

// Start begins the hourly checks without blocking.
func (r *Reminder) Start() error {
	if _, err := r.scheduler.Every(1).Hour().Do(r.Check); err != nil {
		return fmt.Errorf("failed to schedule reminder: %w", err)
	}
	r.scheduler.StartAsync()
	return nil
}

// Stop terminates the scheduled checks.
func (r *Reminder) Stop() {
	r.scheduler.Stop()
}

// Check runs one reminder pass. Exported so the CLI can force a check.
func (r *Reminder) Check() {
	now := r.now()
	hour := now.Hour()
	if hour < r.startHour || hour > r.endHour {
		log.Debug("outside reminder hours, skipping", "hour", hour)
		return
	}

	userStats, err := r.engine.UserStats(r.owner)
	if err != nil {
		log.Error("reminder stats check failed", "owner", r.owner, "err", err)
	} else if userStats.DailyGoalPct < 100 {
		msg := fmt.Sprintf("You're at %d%% of today's study goal. A short session keeps your %d-day streak alive.",
			userStats.DailyGoalPct, userStats.Streak)
		if err := r.notifier.Notify("Study goal", msg); err != nil {
			log.Error("failed to send goal reminder", "err", err)
		}
	}

	tasks, err := r.tasks.ListTasks(r.owner)
	if err != nil {
		log.Error("reminder task check failed", "owner", r.owner, "err", err)
		return
	}
	pending := planner.PendingDueToday(tasks, now)
	if len(pending) > 0 {
		msg := fmt.Sprintf("%d task(s) due today. First up: %s", len(pending), pending[0].Title)
		if err := r.notifier.Notify("Tasks due today", msg); err != nil {
			log.Error("failed to send task reminder", "err", err)
		}
	}
}
