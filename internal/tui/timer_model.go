package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/karanvs/studybuddy/internal/models"
	"github.com/karanvs/studybuddy/internal/stats"
)

// TimerModel is the TUI model for a running study session.
type TimerModel struct {
	width  int
	height int
	timer  *models.Timer

	// minutes already logged today before this session started, so the goal
	// bar reflects the whole day
	baseMinutes float64
	elapsed     time.Duration
	goalBar     progress.Model

	// animation state
	pulse int

	// exit state
	stopping bool // user pressed S: stop and log the session
	leaving  bool // user pressed ESC/Q: leave the timer running
}

// timerTickMsg is sent every second to update the clock.
type timerTickMsg struct{}

// pulseTickMsg drives the header animation.
type pulseTickMsg struct{}

// NewTimerModel creates a timer model for a running session.
func NewTimerModel(timer *models.Timer, baseMinutes float64) TimerModel {
	bar := progress.New(
		progress.WithGradient(ColorAccentMain, ColorAccentBright),
		progress.WithoutPercentage(),
	)
	return TimerModel{
		timer:       timer,
		baseMinutes: baseMinutes,
		elapsed:     time.Since(timer.StartedAt),
		goalBar:     bar,
	}
}

// Stopping reports whether the user chose to stop and log the session.
func (m TimerModel) Stopping() bool {
	return m.stopping
}

func (m TimerModel) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(time.Second, func(time.Time) tea.Msg { return timerTickMsg{} }),
		tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg { return pulseTickMsg{} }),
	)
}

func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		m.elapsed = time.Since(m.timer.StartedAt)
		if !m.stopping && !m.leaving {
			return m, tea.Tick(time.Second, func(time.Time) tea.Msg { return timerTickMsg{} })
		}
		return m, nil

	case pulseTickMsg:
		m.pulse = (m.pulse + 1) % 2
		if !m.stopping && !m.leaving {
			return m, tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg { return pulseTickMsg{} })
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.goalBar.Width = min(msg.Width-10, 48)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S":
			m.stopping = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.leaving = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	width := min(m.width-4, 56)

	headerChars := []string{"○", "●"}
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width).
		Render(fmt.Sprintf("%s  STUDYING  %s", headerChars[m.pulse], headerChars[m.pulse]))

	subject := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width).
		Render(m.timer.Subject)

	clock := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width).
		Render(formatClock(m.elapsed))

	todayMinutes := m.baseMinutes + m.elapsed.Minutes()
	goalPct := stats.DailyGoalPercent(todayMinutes)
	goalLabel := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Align(lipgloss.Center).
		Width(width).
		Render(fmt.Sprintf("Daily goal: %d%%", goalPct))
	goalBar := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width).
		Render(m.goalBar.ViewAs(float64(goalPct) / 100))

	started := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(width).
		Render(fmt.Sprintf("Started at %s", m.timer.StartedAt.Format("15:04:05")))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			header, "", subject, "", clock, "", goalLabel, goalBar, "", started))

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Render("s stop and log  •  q leave running")

	content := lipgloss.JoinVertical(lipgloss.Center, card, "", help)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func formatClock(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d : %02d : %02d", h, m, s)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
