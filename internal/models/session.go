package models

import (
	"time"
)

// StudySession is one logged block of study time. Sessions are append-only:
// they are created on timer stop or manual entry and never updated afterwards.
type StudySession struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Owner           string    `gorm:"index;not null" json:"owner"`
	Subject         string    `json:"subject"`
	DurationMinutes float64   `json:"duration_minutes"`
	StartedAt       time.Time `gorm:"not null" json:"started_at"`
}

// Timer is the single in-progress session for an owner. Stopping a timer
// deletes the row and inserts the finished StudySession in its place.
type Timer struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Owner     string    `gorm:"uniqueIndex;not null" json:"owner"`
	Subject   string    `json:"subject"`
	StartedAt time.Time `gorm:"not null" json:"started_at"`
}
