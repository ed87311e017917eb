package session

import "studytutor/internal/evaluate"

// Step is the attempt policy's decision for what happens after a verdict.
type Step int

const (
	// StepAdvance resolves the current question as correct and moves on.
	StepAdvance Step = iota
	// StepShowHint keeps the learner on the current question.
	StepShowHint
	// StepFailOut resolves the current question as wrong and moves on.
	StepFailOut
)

// String returns the step label.
func (s Step) String() string {
	switch s {
	case StepAdvance:
		return "advance"
	case StepShowHint:
		return "show_hint"
	case StepFailOut:
		return "fail_out"
	default:
		return "unknown"
	}
}

// QuestionOutcome records how one question was resolved.
type QuestionOutcome struct {
	QuestionID   string
	Correct      bool
	AttemptsUsed int
	Skipped      bool
}

// Score is the running tally of resolved questions.
type Score struct {
	Correct int
	Wrong   int
	Total   int
}

// Remaining returns how many questions are unresolved.
func (s Score) Remaining() int {
	return s.Total - s.Correct - s.Wrong
}

// Outcome is the observable result of one submission, consumed by the
// presentation layer.
type Outcome struct {
	Step    Step
	Verdict evaluate.Verdict
	// Hint is the question's static hint, surfaced at most once per
	// question.
	Hint string
	// Advice is grader guidance for this attempt, when any.
	Advice string
	// RevealedAnswer is one acceptable answer, set on fail-out when the
	// deck policy allows it.
	RevealedAnswer string
	// Degraded reports that the grading capability failed during this
	// attempt and the deterministic verdict stood.
	Degraded bool
	// Resolved is set when the question reached a terminal outcome.
	Resolved *QuestionOutcome
	// Final is set when this submission completed the deck.
	Final *Score
}
