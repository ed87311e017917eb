package deck

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDir is the directory decks are read from by default.
const DefaultDir = "decks"

// DefaultFile is the deck file name used when none is given.
const DefaultFile = "current_deck.yaml"

// DefaultPath returns the default deck location relative to the working
// directory.
func DefaultPath() string {
	return filepath.Join(DefaultDir, DefaultFile)
}

const starterDeck = `meta:
  title: "Go Fundamentals"
  description: "Core vocabulary for reading idiomatic Go."
  policy:
    max_attempts: 3
    reveal_answer_on_failout: true

questions:
  - id: keyword-func
    prompt: "Which keyword declares a function in Go?"
    acceptable_answers: ["func"]
    hint: "It is shorter than in most C-family languages."
  - id: zero-value-slice
    prompt: "What is the zero value of a slice?"
    acceptable_answers: ["nil"]
    hint: "The same value an uninitialized pointer has."
    rubric: "Accept answers that clearly identify the nil slice, e.g. 'a nil slice'."
  - id: error-convention
    prompt: "What is the conventional name of the interface Go uses to report failures?"
    acceptable_answers: ["error"]
    hint: "It has a single method returning a string."
    rubric: "Accept 'the error interface' or equivalent phrasing."
`

// Scaffold writes a starter deck to path, creating parent directories. It
// refuses to overwrite an existing file.
func Scaffold(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("deck already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat deck: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create deck directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(starterDeck), 0o644); err != nil {
		return fmt.Errorf("write deck: %w", err)
	}
	return nil
}
