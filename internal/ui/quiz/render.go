package quiz

import (
	"github.com/charmbracelet/lipgloss"

	"studytutor/internal/session"
)

// View renders the quiz screen for the current phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.phase == phaseSummary {
		return m.viewSummary()
	}
	return m.viewQuestion()
}

func (m Model) viewQuestion() string {
	question, ok := m.sess.CurrentQuestion()
	if !ok {
		return ""
	}
	score := m.sess.Score()

	header := m.stylize(m.sess.Deck().Title, colorHeader)
	progress := m.stylize(formatProgress(m.sess.CurrentIndex(), score), colorMuted)
	prompt := question.Prompt

	lines := []string{header, progress, "", prompt, "", m.input.View()}
	for _, line := range m.feedback {
		lines = append(lines, m.stylize(line, colorFeedback))
	}
	if m.phase == phaseGrading {
		lines = append(lines, m.stylize("Grading...", colorMuted))
	}
	lines = append(lines, "", m.stylize("enter submit | ctrl+s skip | esc quit", colorMuted))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewSummary() string {
	score := m.sess.Score()
	lines := []string{
		m.stylize("All questions attempted.", colorHeader),
		"",
		formatScore(score),
	}
	for _, line := range m.feedback {
		lines = append(lines, m.stylize(line, colorFeedback))
	}
	lines = append(lines, "", m.stylize("r restart | any other key quit", colorMuted))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// feedbackLines converts an outcome into display lines.
func feedbackLines(outcome session.Outcome) []string {
	var lines []string
	switch outcome.Step {
	case session.StepAdvance:
		lines = append(lines, "Correct!")
	case session.StepShowHint:
		lines = append(lines, "Not quite. Try again.")
		if outcome.Hint != "" {
			lines = append(lines, "Hint: "+outcome.Hint)
		}
		if outcome.Advice != "" {
			lines = append(lines, "Advice: "+outcome.Advice)
		}
	case session.StepFailOut:
		lines = append(lines, "Max attempts reached, marked as wrong.")
		if outcome.RevealedAnswer != "" {
			lines = append(lines, "Answer: "+outcome.RevealedAnswer)
		}
	}
	if outcome.Degraded {
		lines = append(lines, "Grader unreachable; matched answers only.")
	}
	return lines
}
