package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"studytutor/internal/deck"
	"studytutor/internal/evaluate"
	"studytutor/internal/grader"
	"studytutor/internal/session"
	"studytutor/internal/ui/quiz"
)

// runInput allows tests to script the plain-mode answer stream.
var runInput io.Reader

// runLiveQuiz allows tests to stub the Bubble Tea program.
var runLiveQuiz = quiz.Run

// runRun builds the handler for the run command.
func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		deckPath := flags.String("deck", deck.DefaultPath(), "Path to deck file")
		provider := flags.String("provider", "", "Grading backend: openrouter, ollama, or none (default: TUTOR_PROVIDER)")
		model := flags.String("model", "", "Grading model name (default: TUTOR_MODEL)")
		baseURL := flags.String("base-url", "", "Grading backend base URL (default: TUTOR_BASE_URL)")
		caseSensitive := flags.Bool("case-sensitive", false, "Match answers case-sensitively")
		gradeTimeout := flags.Duration("grade-timeout", 0, "Per-answer grading timeout (default: TUTOR_GRADE_TIMEOUT or 30s)")
		uiMode := flags.String("ui", "auto", "UI mode: auto, live, or plain")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		loaded, err := deck.Load(*deckPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load deck:\n%s\n", err.Error())
			return ExitError
		}

		settings := graderSettingsFromEnv()
		if *provider != "" {
			settings.Provider = *provider
		}
		if *model != "" {
			settings.Model = *model
		}
		if *baseURL != "" {
			settings.BaseURL = *baseURL
		}
		if *gradeTimeout > 0 {
			settings.Timeout = *gradeTimeout
		}

		backend, err := buildGrader(settings)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to configure grading backend: %v\n", err)
			return ExitError
		}

		observer := &warnObserver{stderr: stderr}
		evaluator := &evaluate.Evaluator{
			Config:   evaluate.Config{CaseSensitive: *caseSensitive, TrimWhitespace: true},
			Grader:   backend,
			Timeout:  settings.Timeout,
			Observer: observer,
		}
		sess := session.New(loaded, evaluator, observer)

		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		if decision.useLive {
			if err := runLiveQuiz(sess, quiz.Options{NoColor: *noColor}); err != nil {
				fmt.Fprintf(stderr, "Quiz UI failed: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		in := runInput
		if in == nil {
			in = os.Stdin
		}
		return runPlainSession(context.Background(), sess, in, stdout)
	}
}

// buildGrader constructs the configured backend; an empty or "none" provider
// means deterministic matching only.
func buildGrader(settings grader.Settings) (grader.Grader, error) {
	provider := strings.ToLower(strings.TrimSpace(settings.Provider))
	if provider == "" || provider == "none" {
		return nil, nil
	}
	if settings.Timeout <= 0 {
		settings.Timeout = grader.DefaultTimeout
	}
	client := &http.Client{Timeout: settings.Timeout + time.Second}
	return grader.New(settings, client)
}
