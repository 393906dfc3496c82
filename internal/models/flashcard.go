package models

import (
	"time"
)

// Flashcard is a question/answer pair for self-testing.
type Flashcard struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Owner    string `gorm:"index;not null" json:"owner"`
	Question string `gorm:"not null" json:"question"`
	Answer   string `gorm:"not null" json:"answer"`
}

// Summary stores the output of the external text summarizer alongside the
// input it was produced from.
type Summary struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Owner        string `gorm:"index;not null" json:"owner"`
	OriginalText string `gorm:"not null" json:"original_text"`
	SummaryText  string `gorm:"not null" json:"summary_text"`
}
