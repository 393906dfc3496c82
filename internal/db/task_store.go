package db

import (
	"fmt"
	"strings"

	"github.com/karanvs/studybuddy/internal/models"
)

// CreateTaskRequest holds the data needed to create a new task.
type CreateTaskRequest struct {
	Owner    string
	Title    string
	Subject  string
	DueDate  string // "2006-01-02", validated by the caller's parser
	DueTime  string // free text
	Priority string // "low/medium/high" or "1/2/3", empty defaults to medium
}

// CreateTask creates a new task for an owner.
func (s *Store) CreateTask(req CreateTaskRequest) (*models.Task, error) {
	if req.Owner == "" {
		return nil, fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	task := models.Task{
		Owner:    req.Owner,
		Title:    strings.TrimSpace(req.Title),
		Subject:  req.Subject,
		DueDate:  req.DueDate,
		DueTime:  req.DueTime,
		Priority: ParsePriority(req.Priority),
	}
	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ParsePriority normalizes a priority string, defaulting to medium.
func ParsePriority(priority string) string {
	switch strings.ToLower(strings.TrimSpace(priority)) {
	case "low", "1":
		return models.PriorityLow
	case "high", "3":
		return models.PriorityHigh
	default:
		return models.PriorityMedium
	}
}

// ListTasks returns all of an owner's tasks, soonest deadline first.
func (s *Store) ListTasks(owner string) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.Where("owner = ?", owner).
		Order("due_date ASC, id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// SetTaskCompleted toggles the completion flag on a task.
func (s *Store) SetTaskCompleted(taskID uint, completed bool) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, taskID).Error; err != nil {
		return nil, fmt.Errorf("task #%d not found", taskID)
	}

	task.Completed = completed
	if err := s.db.Save(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes a task by id.
func (s *Store) DeleteTask(taskID uint) error {
	result := s.db.Delete(&models.Task{}, taskID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("task #%d not found", taskID)
	}
	return nil
}
