package db

import (
	"fmt"
	"strings"

	"github.com/karanvs/studybuddy/internal/models"
)

// CreateExam records an upcoming exam. Difficulty must be 1..5; the planner
// relies on that range and never re-validates it.
func (s *Store) CreateExam(owner, subject, examDate, notes string, difficulty int) (*models.Exam, error) {
	if owner == "" {
		return nil, fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}
	if strings.TrimSpace(subject) == "" {
		return nil, fmt.Errorf("%w: subject is required", ErrInvalidInput)
	}
	if difficulty < 1 || difficulty > 5 {
		return nil, fmt.Errorf("%w: difficulty must be between 1 and 5", ErrInvalidInput)
	}

	exam := models.Exam{
		Owner:      owner,
		Subject:    strings.TrimSpace(subject),
		ExamDate:   examDate,
		Notes:      notes,
		Difficulty: difficulty,
	}
	if err := s.db.Create(&exam).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

// ListExams returns all of an owner's exams, soonest first.
func (s *Store) ListExams(owner string) ([]models.Exam, error) {
	var exams []models.Exam
	err := s.db.Where("owner = ?", owner).
		Order("exam_date ASC, id ASC").
		Find(&exams).Error
	if err != nil {
		return nil, err
	}
	return exams, nil
}

// DeleteExam removes an exam, scoped to the owner.
func (s *Store) DeleteExam(owner string, examID uint) error {
	result := s.db.Where("owner = ?", owner).Delete(&models.Exam{}, examID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("exam #%d not found", examID)
	}
	return nil
}
