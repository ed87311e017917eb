package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"studytutor/internal/session"
	"studytutor/internal/ui/quiz"
)

// scriptAnswers points the run command at a scripted answer stream and pins
// the grading backend off so ambient environment cannot reach the network.
func scriptAnswers(t *testing.T, answers ...string) {
	t.Helper()
	t.Setenv(envProvider, "")
	previous := runInput
	runInput = strings.NewReader(strings.Join(answers, "\n") + "\n")
	t.Cleanup(func() { runInput = previous })
}

// TestRunPlainSessionCompletes verifies a scripted full pass over a deck.
func TestRunPlainSessionCompletes(t *testing.T) {
	path := writeDeckFile(t, validDeckYAML)
	scriptAnswers(t, "Paris", "four")

	var stdout, stderr bytes.Buffer
	code := Run([]string{"run", "--deck", path, "--ui", "plain"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ok exit, got %d, stderr:\n%s", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "Question 1 of 2: Capital of France?") {
		t.Fatalf("expected first question:\n%s", out)
	}
	if !strings.Contains(out, "All questions attempted.") {
		t.Fatalf("expected completion message:\n%s", out)
	}
	if !strings.Contains(out, "Correct: 2  Wrong: 0") {
		t.Fatalf("expected final score:\n%s", out)
	}
}

// TestRunPlainHintThenFailOut verifies hint and fail-out rendering.
func TestRunPlainHintThenFailOut(t *testing.T) {
	path := writeDeckFile(t, validDeckYAML)
	scriptAnswers(t, "London", "Rome", "four")

	var stdout, stderr bytes.Buffer
	code := Run([]string{"run", "--deck", path, "--ui", "plain"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ok exit, got %d, stderr:\n%s", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "Hint: City of light.") {
		t.Fatalf("expected hint:\n%s", out)
	}
	if !strings.Contains(out, "Max attempts reached") {
		t.Fatalf("expected fail-out message:\n%s", out)
	}
	if !strings.Contains(out, "Correct: 1  Wrong: 1") {
		t.Fatalf("expected final score:\n%s", out)
	}
}

// TestRunPlainSkipAndQuit verifies the plain-mode commands.
func TestRunPlainSkipAndQuit(t *testing.T) {
	path := writeDeckFile(t, validDeckYAML)
	scriptAnswers(t, "/skip", "/quit")

	var stdout, stderr bytes.Buffer
	code := Run([]string{"run", "--deck", path, "--ui", "plain"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ok exit, got %d", code)
	}
	out := stdout.String()
	if !strings.Contains(out, "Skipped, marked as wrong.") {
		t.Fatalf("expected skip message:\n%s", out)
	}
	if !strings.Contains(out, "Leaving session.") {
		t.Fatalf("expected quit message:\n%s", out)
	}
}

// TestRunCaseSensitiveFlag verifies --case-sensitive reaches the evaluator.
func TestRunCaseSensitiveFlag(t *testing.T) {
	path := writeDeckFile(t, `meta:
  title: "Case"
  policy:
    max_attempts: 1
questions:
  - id: q1
    prompt: "Keyword?"
    acceptable_answers: ["def"]
`)
	scriptAnswers(t, "DEF")

	var stdout, stderr bytes.Buffer
	code := Run([]string{"run", "--deck", path, "--ui", "plain", "--case-sensitive"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ok exit, got %d", code)
	}
	if !strings.Contains(stdout.String(), "Correct: 0  Wrong: 1") {
		t.Fatalf("expected case-sensitive miss:\n%s", stdout.String())
	}
}

// TestRunRejectsInvalidDeck verifies run refuses a deck that fails
// validation before any question is shown.
func TestRunRejectsInvalidDeck(t *testing.T) {
	path := writeDeckFile(t, `meta:
  title: "Empty"
questions: []
`)
	t.Setenv(envProvider, "")
	var stdout, stderr bytes.Buffer
	code := Run([]string{"run", "--deck", path, "--ui", "plain"}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
	if strings.Contains(stdout.String(), "Question") {
		t.Fatalf("no question should be shown for an invalid deck:\n%s", stdout.String())
	}
}

// TestRunRejectsUnknownProvider verifies grader configuration errors stop
// the run.
func TestRunRejectsUnknownProvider(t *testing.T) {
	path := writeDeckFile(t, validDeckYAML)
	var stdout, stderr bytes.Buffer
	code := Run([]string{"run", "--deck", path, "--ui", "plain", "--provider", "smoke-signals", "--model", "m"}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
	if !strings.Contains(stderr.String(), "unsupported provider") {
		t.Fatalf("expected provider error:\n%s", stderr.String())
	}
}

// TestRunRejectsInvalidUIMode verifies the ui flag is validated.
func TestRunRejectsInvalidUIMode(t *testing.T) {
	path := writeDeckFile(t, validDeckYAML)
	t.Setenv(envProvider, "")
	var stdout, stderr bytes.Buffer
	code := Run([]string{"run", "--deck", path, "--ui", "holographic"}, &stdout, &stderr)
	if code != ExitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
}

// TestRunLiveModeUsesQuizUI verifies a TTY routes to the Bubble Tea front
// end.
func TestRunLiveModeUsesQuizUI(t *testing.T) {
	path := writeDeckFile(t, validDeckYAML)
	t.Setenv(envProvider, "")

	previousTerminal := isTerminal
	isTerminal = func(io.Writer) bool { return true }
	t.Cleanup(func() { isTerminal = previousTerminal })

	var launched *session.Session
	previousLive := runLiveQuiz
	runLiveQuiz = func(sess *session.Session, opts quiz.Options) error {
		launched = sess
		return nil
	}
	t.Cleanup(func() { runLiveQuiz = previousLive })

	var stdout, stderr bytes.Buffer
	code := Run([]string{"run", "--deck", path, "--ui", "live"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ok exit, got %d, stderr:\n%s", code, stderr.String())
	}
	if launched == nil {
		t.Fatalf("expected live quiz to be launched")
	}
	if launched.Deck().Title != "Smoke" {
		t.Fatalf("unexpected deck: %q", launched.Deck().Title)
	}
}
