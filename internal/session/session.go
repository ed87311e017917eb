package session

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"studytutor/internal/deck"
	"studytutor/internal/evaluate"
)

// ErrSessionComplete indicates Submit or Skip was called after the deck
// finished. This is a calling-layer bug, not a learner-facing condition.
var ErrSessionComplete = errors.New("session already complete")

// ErrEmptyAnswer indicates a blank submission. No attempt is consumed.
var ErrEmptyAnswer = errors.New("empty answer")

// Session is one learner's pass through a deck. It holds a read-only
// reference to the deck and owns all mutable per-run state. A Session is not
// safe for concurrent use; callers submit one answer at a time.
type Session struct {
	id        string
	deck      *deck.Deck
	evaluator *evaluate.Evaluator
	observer  Observer

	cursor    int
	attempts  int
	hintShown bool
	correct   int
	wrong     int
	history   []QuestionOutcome
}

// New creates a session over a validated deck. A nil observer is replaced
// with NopObserver; the observer is also wired into the evaluator's degraded
// signal unless the evaluator already has one.
func New(d *deck.Deck, evaluator *evaluate.Evaluator, observer Observer) *Session {
	if observer == nil {
		observer = NopObserver{}
	}
	if evaluator.Observer == nil {
		evaluator.Observer = observer
	}
	return &Session{
		id:        uuid.NewString(),
		deck:      d,
		evaluator: evaluator,
		observer:  observer,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Deck returns the deck this session runs over.
func (s *Session) Deck() *deck.Deck { return s.deck }

// Start emits the session start event and shows the first question.
func (s *Session) Start() {
	s.observer.OnSessionStart(s.id, s.deck.Title, len(s.deck.Questions))
	if !s.IsComplete() {
		s.observer.OnQuestionShown(s.cursor, s.deck.Questions[s.cursor])
	}
}

// IsComplete reports whether the cursor passed the last question.
func (s *Session) IsComplete() bool {
	return s.cursor >= len(s.deck.Questions)
}

// CurrentQuestion returns the active question, or false when complete.
func (s *Session) CurrentQuestion() (deck.Question, bool) {
	if s.IsComplete() {
		return deck.Question{}, false
	}
	return s.deck.Questions[s.cursor], true
}

// CurrentIndex returns the zero-based cursor position.
func (s *Session) CurrentIndex() int { return s.cursor }

// Attempts returns the attempts consumed on the current question.
func (s *Session) Attempts() int { return s.attempts }

// Score returns the running tally.
func (s *Session) Score() Score {
	return Score{Correct: s.correct, Wrong: s.wrong, Total: len(s.deck.Questions)}
}

// History returns a copy of the per-question outcomes so far.
func (s *Session) History() []QuestionOutcome {
	history := make([]QuestionOutcome, len(s.history))
	copy(history, s.history)
	return history
}

// Submit evaluates one answer for the current question and applies the
// attempt policy. It is the sole mutation entry point during a run.
func (s *Session) Submit(ctx context.Context, answer string) (Outcome, error) {
	if s.IsComplete() {
		return Outcome{}, ErrSessionComplete
	}
	if strings.TrimSpace(answer) == "" {
		return Outcome{}, ErrEmptyAnswer
	}

	index := s.cursor
	question := s.deck.Questions[index]
	s.attempts++

	result := s.evaluator.Evaluate(ctx, question, answer)
	step := NextStep(result.Verdict, s.attempts, s.deck.Policy.MaxAttempts)

	outcome := Outcome{
		Step:     step,
		Verdict:  result.Verdict,
		Advice:   result.Advice,
		Degraded: result.Source == evaluate.SourceFallback,
	}

	switch step {
	case StepShowHint:
		if !s.hintShown && question.Hint != "" {
			outcome.Hint = question.Hint
		}
		s.hintShown = true
	case StepAdvance:
		s.resolve(&outcome, question, true, false)
	case StepFailOut:
		if s.deck.Policy.RevealAnswerOnFailout {
			outcome.RevealedAnswer = question.AcceptableAnswers[0]
		}
		s.resolve(&outcome, question, false, false)
	}

	s.observer.OnSubmitResult(index, question, outcome)
	s.afterResolve(outcome)
	return outcome, nil
}

// Skip resolves the current question as wrong without evaluating an answer.
// Attempts already made are recorded; the answer is not revealed.
func (s *Session) Skip() (Outcome, error) {
	if s.IsComplete() {
		return Outcome{}, ErrSessionComplete
	}
	index := s.cursor
	question := s.deck.Questions[index]
	outcome := Outcome{Step: StepFailOut, Verdict: evaluate.VerdictIncorrect}
	s.resolve(&outcome, question, false, true)
	s.observer.OnSubmitResult(index, question, outcome)
	s.afterResolve(outcome)
	return outcome, nil
}

// Restart returns the session to a fresh pass over the same deck.
func (s *Session) Restart() {
	s.cursor = 0
	s.attempts = 0
	s.hintShown = false
	s.correct = 0
	s.wrong = 0
	s.history = nil
	s.Start()
}

// resolve records a terminal outcome for the current question and advances
// the cursor. Counters change by exactly one per resolved question.
func (s *Session) resolve(outcome *Outcome, question deck.Question, correct, skipped bool) {
	resolved := QuestionOutcome{
		QuestionID:   question.ID,
		Correct:      correct,
		AttemptsUsed: s.attempts,
		Skipped:      skipped,
	}
	s.history = append(s.history, resolved)
	if correct {
		s.correct++
	} else {
		s.wrong++
	}
	s.cursor++
	s.attempts = 0
	s.hintShown = false
	outcome.Resolved = &resolved

	if s.IsComplete() {
		final := s.Score()
		outcome.Final = &final
	}
}

// afterResolve emits follow-up events once the outcome is delivered.
func (s *Session) afterResolve(outcome Outcome) {
	if outcome.Final != nil {
		s.observer.OnSessionComplete(*outcome.Final)
		return
	}
	if outcome.Resolved != nil {
		s.observer.OnQuestionShown(s.cursor, s.deck.Questions[s.cursor])
	}
}
