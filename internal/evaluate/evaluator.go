package evaluate

import (
	"context"
	"time"

	"studytutor/internal/deck"
	"studytutor/internal/grader"
)

// Verdict is the binary correctness decision for one submitted answer.
type Verdict int

const (
	VerdictIncorrect Verdict = iota
	VerdictCorrect
)

// String returns the verdict label.
func (v Verdict) String() string {
	if v == VerdictCorrect {
		return "correct"
	}
	return "incorrect"
}

// Source records which path produced a verdict.
type Source int

const (
	// SourceMatch means the deterministic normalized match decided.
	SourceMatch Source = iota
	// SourceGrader means the grading capability decided.
	SourceGrader
	// SourceFallback means the grading capability failed and the
	// deterministic-only verdict stood.
	SourceFallback
	// SourceNone means no grading capability was configured.
	SourceNone
)

// Result is the outcome of evaluating one answer. Advice is learner-facing
// guidance from the grader and never affects the verdict.
type Result struct {
	Verdict Verdict
	Advice  string
	Source  Source
}

// DegradeObserver receives a signal each time the grading capability is
// unreachable, times out, or returns an unparseable response. The signal is
// for observability only; the evaluator has already fallen back.
type DegradeObserver interface {
	OnEvaluationDegraded(questionID string, cause error)
}

// Evaluator decides correctness for submitted answers. The deterministic
// match is authoritative; a configured Grader can only add leniency. The
// zero Timeout falls back to grader.DefaultTimeout.
type Evaluator struct {
	Config   Config
	Grader   grader.Grader
	Timeout  time.Duration
	Observer DegradeObserver
}

// Evaluate decides the verdict for raw against question. It never returns an
// error: grading failures degrade to the deterministic verdict.
func (e *Evaluator) Evaluate(ctx context.Context, question deck.Question, raw string) Result {
	if e.Config.Matches(raw, question.AcceptableAnswers) {
		return Result{Verdict: VerdictCorrect, Source: SourceMatch}
	}
	if e.Grader == nil {
		return Result{Verdict: VerdictIncorrect, Source: SourceNone}
	}

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = grader.DefaultTimeout
	}
	gradeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	graded, err := e.Grader.Grade(gradeCtx, grader.Request{
		Prompt:            question.Prompt,
		Rubric:            question.Rubric,
		AcceptableAnswers: question.AcceptableAnswers,
		LearnerAnswer:     raw,
	})
	if err != nil {
		if e.Observer != nil {
			e.Observer.OnEvaluationDegraded(question.ID, err)
		}
		return Result{Verdict: VerdictIncorrect, Source: SourceFallback}
	}

	verdict := VerdictIncorrect
	if graded.Correct {
		verdict = VerdictCorrect
	}
	return Result{Verdict: verdict, Advice: graded.Hint, Source: SourceGrader}
}
