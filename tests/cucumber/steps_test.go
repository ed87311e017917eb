package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"studytutor/internal/cli"
)

// featureState holds scenario state for cucumber CLI tests.
type featureState struct {
	deckPath   string
	previousWD string
	workDir    string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a valid deck file$`, state.aValidDeckFile)
	ctx.Step(`^a deck file with max_attempts set to 0$`, state.aDeckFileWithZeroMaxAttempts)
	ctx.Step(`^an empty working directory$`, state.anEmptyWorkingDirectory)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the output confirms the deck with (\d+) questions$`, state.theOutputConfirmsDeck)
	ctx.Step(`^the error message points to the invalid field$`, state.theErrorMessagePointsToInvalidField)
}

// reset clears buffers and state before each scenario.
func (s *featureState) reset() {
	s.deckPath = ""
	s.previousWD = ""
	s.workDir = ""
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
}

// cleanup restores the working directory and removes temporary files.
func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
	}
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
	}
}

func (s *featureState) writeDeck(payload string) error {
	dir, err := os.MkdirTemp("", "tutor-cucumber")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	s.workDir = dir
	s.deckPath = filepath.Join(dir, "deck.yaml")
	if err := os.WriteFile(s.deckPath, []byte(payload), 0o644); err != nil {
		return fmt.Errorf("write deck: %w", err)
	}
	return nil
}

func (s *featureState) aValidDeckFile() error {
	return s.writeDeck(`meta:
  title: "Smoke"
  policy:
    max_attempts: 2
questions:
  - id: q1
    prompt: "Capital of France?"
    acceptable_answers: ["Paris"]
  - id: q2
    prompt: "Two plus two?"
    acceptable_answers: ["4", "four"]
`)
}

func (s *featureState) aDeckFileWithZeroMaxAttempts() error {
	return s.writeDeck(`meta:
  title: "Broken"
  policy:
    max_attempts: 0
questions:
  - id: q1
    prompt: "Anything?"
    acceptable_answers: ["yes"]
`)
}

func (s *featureState) anEmptyWorkingDirectory() error {
	dir, err := os.MkdirTemp("", "tutor-cucumber")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getwd: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	s.workDir = dir
	s.previousWD = wd
	return nil
}

// iRunCommand executes a CLI command for the scenario. When a deck file was
// prepared, its path is appended unless the command already names one.
func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "tutor" {
		args = args[1:]
	}
	if s.deckPath != "" && len(args) > 0 && !contains(args, "--deck") {
		switch args[0] {
		case "validate", "run":
			args = append(args, "--deck", s.deckPath)
		}
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func contains(values []string, needle string) bool {
	for _, value := range values {
		if value == needle {
			return true
		}
	}
	return false
}

func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected exit code 0, got %d\nstderr:\n%s", s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code\nstdout:\n%s", s.stdout.String())
	}
	return nil
}

func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		if len(row.Cells) == 0 {
			continue
		}
		name := row.Cells[0].Value
		if !strings.Contains(output, name) {
			return fmt.Errorf("command %q missing from output:\n%s", name, output)
		}
	}
	return nil
}

func (s *featureState) theOutputConfirmsDeck(questions int) error {
	output := s.stdout.String()
	expected := fmt.Sprintf("(%d questions)", questions)
	if !strings.Contains(output, "Deck OK") || !strings.Contains(output, expected) {
		return fmt.Errorf("expected deck confirmation with %s:\n%s", expected, output)
	}
	return nil
}

func (s *featureState) theErrorMessagePointsToInvalidField() error {
	if !strings.Contains(s.stderr.String(), "max_attempts") {
		return fmt.Errorf("expected max_attempts in error output:\n%s", s.stderr.String())
	}
	return nil
}
