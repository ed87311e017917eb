package quiz

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"studytutor/internal/session"
)

// phase tracks what the quiz UI is currently doing.
type phase int

const (
	phaseAnswering phase = iota
	phaseGrading
	phaseSummary
)

// Model renders an interactive quiz session using Bubble Tea.
type Model struct {
	sess     *session.Session
	input    textinput.Model
	phase    phase
	feedback []string
	width    int
	noColor  bool
	quitting bool
}

// Options configures the quiz UI model.
type Options struct {
	NoColor bool
}

// NewModel constructs a quiz UI model over a session.
func NewModel(sess *session.Session, opts Options) Model {
	input := textinput.New()
	input.Placeholder = "Your answer"
	input.Focus()
	input.CharLimit = 512
	m := Model{
		sess:    sess,
		input:   input,
		noColor: opts.NoColor,
	}
	if sess.IsComplete() {
		m.phase = phaseSummary
	}
	return m
}

// Init focuses the answer input.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// submitMsg carries the result of an answer submission or skip.
type submitMsg struct {
	outcome session.Outcome
	err     error
}

// submitCmd evaluates one answer off the UI loop so a slow grading call
// never freezes rendering. The grading phase blocks further input, keeping
// session access serialized.
func submitCmd(sess *session.Session, answer string) tea.Cmd {
	return func() tea.Msg {
		outcome, err := sess.Submit(context.Background(), answer)
		return submitMsg{outcome: outcome, err: err}
	}
}

func skipCmd(sess *session.Session) tea.Cmd {
	return func() tea.Msg {
		outcome, err := sess.Skip()
		return submitMsg{outcome: outcome, err: err}
	}
}

// Update consumes key presses and submission results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(typed)
	case submitMsg:
		return m.applySubmit(typed)
	}
	if m.phase == phaseAnswering {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Type == tea.KeyCtrlC || key.Type == tea.KeyEsc {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.phase {
	case phaseSummary:
		switch key.String() {
		case "r":
			m.sess.Restart()
			m.phase = phaseAnswering
			m.feedback = nil
			m.input.SetValue("")
			return m, textinput.Blink
		default:
			m.quitting = true
			return m, tea.Quit
		}
	case phaseGrading:
		return m, nil
	}

	switch key.Type {
	case tea.KeyEnter:
		m.phase = phaseGrading
		return m, submitCmd(m.sess, m.input.Value())
	case tea.KeyCtrlS:
		m.phase = phaseGrading
		return m, skipCmd(m.sess)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m Model) applySubmit(msg submitMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, session.ErrEmptyAnswer) {
		m.phase = phaseAnswering
		m.feedback = []string{"Please enter an answer."}
		return m, nil
	}
	if msg.err != nil {
		m.phase = phaseAnswering
		m.feedback = []string{msg.err.Error()}
		return m, nil
	}

	m.feedback = feedbackLines(msg.outcome)
	m.input.SetValue("")
	if msg.outcome.Final != nil {
		m.phase = phaseSummary
		return m, nil
	}
	m.phase = phaseAnswering
	return m, textinput.Blink
}

// Quitting reports whether the learner asked to leave.
func (m Model) Quitting() bool { return m.quitting }
