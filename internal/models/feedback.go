package models

import (
	"time"
)

// Feedback is a user's free-form comment on the app with a 1-5 rating.
type Feedback struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Owner   string `gorm:"index;not null" json:"owner"`
	Message string `gorm:"not null" json:"message"`
	Rating  int    `json:"rating"`
}
