package cli

import (
	"fmt"
	"io"

	"studytutor/internal/session"
)

// warnObserver surfaces degraded-grading signals on stderr and ignores the
// rest of the session lifecycle; the active UI renders that.
type warnObserver struct {
	session.NopObserver
	stderr io.Writer
}

func (o *warnObserver) OnEvaluationDegraded(questionID string, cause error) {
	fmt.Fprintf(o.stderr, "warning: grading degraded for %s: %v\n", questionID, cause)
}
