package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/karanvs/studybuddy/internal/models"
)

// ReviewModel is the TUI model for a flashcard review session: one card at a
// time, reveal the answer, self-grade, move on.
type ReviewModel struct {
	width  int
	height int

	cards    []models.Flashcard
	index    int
	revealed bool
	correct  int
	missed   int

	done      bool
	cancelled bool
}

// NewReviewModel creates a review session over the given cards.
func NewReviewModel(cards []models.Flashcard) ReviewModel {
	return ReviewModel{cards: cards}
}

// Results returns the self-graded counts after the session.
func (m ReviewModel) Results() (correct, missed int, cancelled bool) {
	return m.correct, m.missed, m.cancelled
}

func (m ReviewModel) Init() tea.Cmd {
	return nil
}

func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			return m, tea.Quit

		case " ", "enter":
			if m.done {
				return m, tea.Quit
			}
			if !m.revealed {
				m.revealed = true
			}
			return m, nil

		case "y", "Y":
			if m.revealed && !m.done {
				m.correct++
				m = m.advance()
			}
			return m, nil

		case "n", "N":
			if m.revealed && !m.done {
				m.missed++
				m = m.advance()
			}
			return m, nil
		}
	}

	return m, nil
}

func (m ReviewModel) advance() ReviewModel {
	m.index++
	m.revealed = false
	if m.index >= len(m.cards) {
		m.done = true
	}
	return m
}

func (m ReviewModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	width := min(m.width-4, 64)

	if m.done {
		return m.renderSummary(width)
	}

	card := m.cards[m.index]

	counter := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Align(lipgloss.Center).
		Width(width).
		Render(fmt.Sprintf("Card %d of %d", m.index+1, len(m.cards)))

	question := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width).
		Render(card.Question)

	var answer, help string
	if m.revealed {
		answer = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentBright)).
			Align(lipgloss.Center).
			Width(width).
			Render(card.Answer)
		help = "y got it  •  n missed it  •  q quit"
	} else {
		answer = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Italic(true).
			Align(lipgloss.Center).
			Width(width).
			Render("· · ·")
		help = "space reveal answer  •  q quit"
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, counter, "", question, "", answer))

	helpBar := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Render(help)

	content := lipgloss.JoinVertical(lipgloss.Center, panel, "", helpBar)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m ReviewModel) renderSummary(width int) string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width).
		Render("Review complete")

	score := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Align(lipgloss.Center).
		Width(width).
		Render(fmt.Sprintf("%d correct  •  %d missed", m.correct, m.missed))

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", score))

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Render("enter close")

	content := lipgloss.JoinVertical(lipgloss.Center, panel, "", help)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
