package models

import (
	"time"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task represents a study task or assignment with a deadline.
//
// DueDate is stored as text and may hold either a bare date ("2006-01-02") or
// a full timestamp, depending on how it was entered. Date-bucketed views parse
// it defensively and skip rows they cannot interpret.
type Task struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Owner     string `gorm:"index;not null" json:"owner"`
	Title     string `gorm:"not null" json:"title"`
	Subject   string `json:"subject"`
	DueDate   string `json:"due_date"`
	DueTime   string `json:"due_time"` // free text, not validated
	Priority  string `gorm:"default:medium" json:"priority"`
	Completed bool   `gorm:"default:false" json:"completed"`
}

// Exam is the planner's simpler variant of a deadline: read-only after
// creation, no completion flag. Days left is always computed, never stored.
type Exam struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Owner      string `gorm:"index;not null" json:"owner"`
	Subject    string `gorm:"not null" json:"subject"`
	ExamDate   string `gorm:"not null" json:"exam_date"`
	Notes      string `json:"notes"`
	Difficulty int    `json:"difficulty"` // 1..5, validated on insert
}
