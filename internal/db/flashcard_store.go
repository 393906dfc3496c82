package db

import (
	"fmt"
	"strings"

	"github.com/karanvs/studybuddy/internal/models"
)

// CreateFlashcard stores a question/answer pair.
func (s *Store) CreateFlashcard(owner, question, answer string) (*models.Flashcard, error) {
	if owner == "" {
		return nil, fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}
	if strings.TrimSpace(question) == "" || strings.TrimSpace(answer) == "" {
		return nil, fmt.Errorf("%w: question and answer are required", ErrInvalidInput)
	}

	card := models.Flashcard{
		Owner:    owner,
		Question: strings.TrimSpace(question),
		Answer:   strings.TrimSpace(answer),
	}
	if err := s.db.Create(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// ListFlashcards returns all of an owner's cards, oldest first.
func (s *Store) ListFlashcards(owner string) ([]models.Flashcard, error) {
	var cards []models.Flashcard
	err := s.db.Where("owner = ?", owner).
		Order("id ASC").
		Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// DeleteFlashcards removes the given cards, scoped to the owner.
func (s *Store) DeleteFlashcards(owner string, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.Where("owner = ? AND id IN ?", owner, ids).
		Delete(&models.Flashcard{}).Error
}

// SaveSummary stores the summarizer's output with its input text.
func (s *Store) SaveSummary(owner, originalText, summaryText string) (*models.Summary, error) {
	if owner == "" {
		return nil, fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}

	summary := models.Summary{
		Owner:        owner,
		OriginalText: originalText,
		SummaryText:  summaryText,
	}
	if err := s.db.Create(&summary).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}

// ListSummaries returns all of an owner's saved summaries, newest first.
func (s *Store) ListSummaries(owner string) ([]models.Summary, error) {
	var summaries []models.Summary
	err := s.db.Where("owner = ?", owner).
		Order("created_at DESC, id DESC").
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
