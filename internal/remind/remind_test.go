package remind

import (
	"testing"
	"time"

	"github.com/karanvs/studybuddy/internal/models"
	"github.com/karanvs/studybuddy/internal/stats"
)

type fakeSessions struct {
	sessions []models.StudySession
}

func (f *fakeSessions) ListSessions(owner string) ([]models.StudySession, error) {
	return f.sessions, nil
}

type fakeTasks struct {
	tasks []models.Task
}

func (f *fakeTasks) ListTasks(owner string) ([]models.Task, error) {
	return f.tasks, nil
}

type recordingNotifier struct {
	titles []string
}

func (r *recordingNotifier) Notify(title, message string) error {
	r.titles = append(r.titles, title)
	return nil
}

func TestCheckNotifiesOnUnmetGoalAndDueTasks(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	notifier := &recordingNotifier{}

	engine := stats.NewEngine(&fakeSessions{})
	tasks := &fakeTasks{tasks: []models.Task{
		{Owner: "maya", Title: "Lab report", DueDate: today},
	}}

	r := New(engine, tasks, notifier, "maya", 0, 23)
	r.Check()

	if len(notifier.titles) != 2 {
		t.Fatalf("notifications = %v, want goal and task reminders", notifier.titles)
	}
}

func TestCheckSkipsOutsideWindow(t *testing.T) {
	notifier := &recordingNotifier{}

	r := New(stats.NewEngine(&fakeSessions{}), &fakeTasks{}, notifier, "maya", 9, 17)
	r.now = func() time.Time {
		return time.Date(2024, 5, 10, 3, 0, 0, 0, time.Local)
	}
	r.Check()

	if len(notifier.titles) != 0 {
		t.Errorf("notifications sent outside window: %v", notifier.titles)
	}
}

func TestCheckQuietWhenGoalMetAndNothingDue(t *testing.T) {
	notifier := &recordingNotifier{}

	sessions := &fakeSessions{sessions: []models.StudySession{
		{Owner: "maya", Subject: "math", DurationMinutes: 90, StartedAt: time.Now()},
	}}

	r := New(stats.NewEngine(sessions), &fakeTasks{}, notifier, "maya", 0, 23)
	r.Check()

	if len(notifier.titles) != 0 {
		t.Errorf("unexpected notifications: %v", notifier.titles)
	}
}
