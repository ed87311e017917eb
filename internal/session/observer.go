package session

import "studytutor/internal/deck"

// Observer receives session lifecycle events for UI or logging. It also
// satisfies evaluate.DegradeObserver so one implementation can watch both
// the session and its evaluator.
type Observer interface {
	// OnSessionStart signals a new pass over a deck.
	OnSessionStart(sessionID, deckTitle string, totalQuestions int)
	// OnQuestionShown signals that a question became current.
	OnQuestionShown(index int, question deck.Question)
	// OnSubmitResult delivers the outcome of one submission.
	OnSubmitResult(index int, question deck.Question, outcome Outcome)
	// OnEvaluationDegraded signals a failed grading-capability call.
	OnEvaluationDegraded(questionID string, cause error)
	// OnSessionComplete signals the final score.
	OnSessionComplete(score Score)
}

// NopObserver ignores all events.
type NopObserver struct{}

func (NopObserver) OnSessionStart(string, string, int)                {}
func (NopObserver) OnQuestionShown(int, deck.Question)                {}
func (NopObserver) OnSubmitResult(int, deck.Question, Outcome)        {}
func (NopObserver) OnEvaluationDegraded(string, error)                {}
func (NopObserver) OnSessionComplete(Score)                           {}
