package quiz

import (
	tea "github.com/charmbracelet/bubbletea"

	"studytutor/internal/session"
)

// Run drives a session through the interactive quiz UI until the learner
// finishes or quits.
func Run(sess *session.Session, opts Options) error {
	sess.Start()
	program := tea.NewProgram(NewModel(sess, opts))
	_, err := program.Run()
	return err
}
