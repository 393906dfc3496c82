package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/karanvs/studybuddy/internal/models"
)

// RunTimerTUI shows the live session timer. It returns true when the user
// chose to stop the session (the caller then stops the timer in the store).
func RunTimerTUI(timer *models.Timer, baseMinutes float64) (bool, error) {
	model := NewTimerModel(timer, baseMinutes)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	if m, ok := finalModel.(TimerModel); ok {
		return m.Stopping(), nil
	}
	return false, nil
}

// RunReviewTUI runs a flashcard review session and returns the self-graded
// result counts.
func RunReviewTUI(cards []models.Flashcard) (correct, missed int, cancelled bool, err error) {
	model := NewReviewModel(cards)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return 0, 0, false, err
	}

	if m, ok := finalModel.(ReviewModel); ok {
		correct, missed, cancelled = m.Results()
	}
	return correct, missed, cancelled, nil
}
