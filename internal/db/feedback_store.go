package db

import (
	"fmt"
	"strings"

	"github.com/karanvs/studybuddy/internal/models"
)

// SaveFeedback stores a feedback entry. Rating must be between 1 and 5.
func (s *Store) SaveFeedback(owner, message string, rating int) (*models.Feedback, error) {
	if owner == "" {
		return nil, fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: feedback message is required", ErrInvalidInput)
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5, got %d", ErrInvalidInput, rating)
	}

	fb := models.Feedback{
		Owner:   owner,
		Message: strings.TrimSpace(message),
		Rating:  rating,
	}
	if err := s.db.Create(&fb).Error; err != nil {
		return nil, err
	}
	return &fb, nil
}

// ListFeedback returns all feedback entries across owners, newest first.
func (s *Store) ListFeedback() ([]models.Feedback, error) {
	var entries []models.Feedback
	err := s.db.Order("created_at DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
