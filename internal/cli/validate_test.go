package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDeckFile(t *testing.T, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.yaml")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	return path
}

const validDeckYAML = `meta:
  title: "Smoke"
  policy:
    max_attempts: 2
questions:
  - id: q1
    prompt: "Capital of France?"
    acceptable_answers: ["Paris"]
    hint: "City of light."
  - id: q2
    prompt: "Two plus two?"
    acceptable_answers: ["4", "four"]
`

// TestValidateAcceptsGoodDeck verifies the happy path output.
func TestValidateAcceptsGoodDeck(t *testing.T) {
	path := writeDeckFile(t, validDeckYAML)
	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "--deck", path}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ok exit, got %d, stderr:\n%s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Deck OK: Smoke (2 questions)") {
		t.Fatalf("unexpected output:\n%s", stdout.String())
	}
}

// TestValidateReportsInvalidField verifies failures name the field.
func TestValidateReportsInvalidField(t *testing.T) {
	path := writeDeckFile(t, `meta:
  title: "Broken"
  policy:
    max_attempts: 0
questions:
  - id: q1
    prompt: "Anything?"
    acceptable_answers: []
`)
	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "--deck", path}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
	if !strings.Contains(stderr.String(), "max_attempts") {
		t.Fatalf("expected max_attempts in error:\n%s", stderr.String())
	}
	if !strings.Contains(stderr.String(), "questions[0].acceptable_answers") {
		t.Fatalf("expected acceptable_answers field in error:\n%s", stderr.String())
	}
}

// TestValidateMissingDeck verifies a missing file fails cleanly.
func TestValidateMissingDeck(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "--deck", filepath.Join(t.TempDir(), "absent.yaml")}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
}

// TestInitScaffoldsLoadableDeck verifies init writes a deck validate accepts.
func TestInitScaffoldsLoadableDeck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decks", "current_deck.yaml")
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"init", "--deck", path}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("init failed with %d:\n%s", code, stderr.String())
	}
	stdout.Reset()
	stderr.Reset()
	if code := Run([]string{"validate", "--deck", path}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("validate failed with %d:\n%s", code, stderr.String())
	}
	if code := Run([]string{"init", "--deck", path}, &stdout, &stderr); code != ExitError {
		t.Fatalf("expected second init to fail, got %d", code)
	}
}
