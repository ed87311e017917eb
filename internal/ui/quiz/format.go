package quiz

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"studytutor/internal/session"
)

const (
	colorHeader   = lipgloss.Color("33")
	colorMuted    = lipgloss.Color("242")
	colorFeedback = lipgloss.Color("178")
)

// stylize applies optional color styling.
func (m Model) stylize(text string, color lipgloss.Color) string {
	if m.noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// formatProgress renders the position and running tally.
func formatProgress(index int, score session.Score) string {
	return "Question " + strconv.Itoa(index+1) + " of " + strconv.Itoa(score.Total) +
		" | Correct: " + strconv.Itoa(score.Correct) +
		" Wrong: " + strconv.Itoa(score.Wrong)
}

// formatScore renders the final tally.
func formatScore(score session.Score) string {
	return "Correct: " + strconv.Itoa(score.Correct) +
		"  Wrong: " + strconv.Itoa(score.Wrong) +
		"  Total: " + strconv.Itoa(score.Total)
}
