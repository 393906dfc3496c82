package db

import (
	"fmt"
	"time"

	"github.com/karanvs/studybuddy/internal/models"
)

// InsertSession records a finished study session. Negative durations are
// rejected; zero is allowed (the reference app logs zero-length rows to
// register a new subject).
func (s *Store) InsertSession(owner, subject string, durationMinutes float64, startedAt time.Time) (*models.StudySession, error) {
	if owner == "" {
		return nil, fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}
	if durationMinutes < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}

	session := models.StudySession{
		Owner:           owner,
		Subject:         subject,
		DurationMinutes: durationMinutes,
		StartedAt:       startedAt,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// ListSessions returns all of an owner's sessions, most recent first.
func (s *Store) ListSessions(owner string) ([]models.StudySession, error) {
	var sessions []models.StudySession
	err := s.db.Where("owner = ?", owner).
		Order("started_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// DeleteSessions removes the given session rows, scoped to the owner.
func (s *Store) DeleteSessions(owner string, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.Where("owner = ? AND id IN ?", owner, ids).
		Delete(&models.StudySession{}).Error
}

// Subjects returns the distinct subjects an owner has ever logged, sorted.
func (s *Store) Subjects(owner string) ([]string, error) {
	var subjects []string
	err := s.db.Model(&models.StudySession{}).
		Where("owner = ? AND subject <> ''", owner).
		Distinct("subject").
		Order("subject ASC").
		Pluck("subject", &subjects).Error
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

// StartTimer begins tracking a session for owner. Only one timer may run at
// a time per owner.
func (s *Store) StartTimer(owner, subject string) (*models.Timer, error) {
	if owner == "" {
		return nil, fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}

	var active models.Timer
	if err := s.db.Where("owner = ?", owner).First(&active).Error; err == nil {
		return nil, fmt.Errorf("timer already running for %q since %s. Stop it first with 'studybuddy stop'",
			active.Subject, active.StartedAt.Format("15:04:05"))
	}

	timer := models.Timer{
		Owner:     owner,
		Subject:   subject,
		StartedAt: time.Now(),
	}
	if err := s.db.Create(&timer).Error; err != nil {
		return nil, err
	}
	return &timer, nil
}

// ActiveTimer returns the running timer for owner, or nil when there is none.
func (s *Store) ActiveTimer(owner string) (*models.Timer, error) {
	var timer models.Timer
	if err := s.db.Where("owner = ?", owner).First(&timer).Error; err != nil {
		return nil, nil // no running timer is not an error
	}
	return &timer, nil
}

// StopTimer ends the running timer and inserts the finished session.
func (s *Store) StopTimer(owner string) (*models.StudySession, error) {
	var timer models.Timer
	if err := s.db.Where("owner = ?", owner).First(&timer).Error; err != nil {
		return nil, fmt.Errorf("no running timer found")
	}

	minutes := time.Since(timer.StartedAt).Minutes()
	session, err := s.InsertSession(owner, timer.Subject, minutes, timer.StartedAt)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(&timer).Error; err != nil {
		return nil, err
	}
	return session, nil
}
