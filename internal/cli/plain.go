package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"studytutor/internal/session"
)

// Plain-mode commands typed instead of an answer.
const (
	skipCommand = "/skip"
	quitCommand = "/quit"
)

// runPlainSession drives a session over a line-oriented reader and writer.
// It is the non-TTY front end and the one exercised by scripted tests.
func runPlainSession(ctx context.Context, sess *session.Session, in io.Reader, stdout io.Writer) int {
	fmt.Fprintf(stdout, "%s\n", sess.Deck().Title)
	if description := sess.Deck().Description; description != "" {
		fmt.Fprintf(stdout, "%s\n", description)
	}
	fmt.Fprintln(stdout)

	scanner := bufio.NewScanner(in)
	printQuestion(stdout, sess)

	for !sess.IsComplete() {
		fmt.Fprint(stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(stdout, "\nSession interrupted.")
			printScore(stdout, sess.Score())
			return ExitOK
		}
		line := scanner.Text()

		switch line {
		case quitCommand:
			fmt.Fprintln(stdout, "Leaving session.")
			printScore(stdout, sess.Score())
			return ExitOK
		case skipCommand:
			outcome, err := sess.Skip()
			if err != nil {
				fmt.Fprintf(stdout, "%v\n", err)
				continue
			}
			fmt.Fprintln(stdout, "Skipped, marked as wrong.")
			finishOrContinue(stdout, sess, outcome)
			continue
		}

		outcome, err := sess.Submit(ctx, line)
		if errors.Is(err, session.ErrEmptyAnswer) {
			fmt.Fprintln(stdout, "Please enter an answer.")
			continue
		}
		if err != nil {
			fmt.Fprintf(stdout, "%v\n", err)
			continue
		}
		printOutcome(stdout, outcome)
		finishOrContinue(stdout, sess, outcome)
	}
	return ExitOK
}

func printQuestion(stdout io.Writer, sess *session.Session) {
	question, ok := sess.CurrentQuestion()
	if !ok {
		return
	}
	score := sess.Score()
	fmt.Fprintf(stdout, "Question %d of %d: %s\n", sess.CurrentIndex()+1, score.Total, question.Prompt)
}

func printOutcome(stdout io.Writer, outcome session.Outcome) {
	switch outcome.Step {
	case session.StepAdvance:
		fmt.Fprintln(stdout, "Correct!")
	case session.StepShowHint:
		fmt.Fprintln(stdout, "Not quite. Try again.")
		if outcome.Hint != "" {
			fmt.Fprintf(stdout, "Hint: %s\n", outcome.Hint)
		}
		if outcome.Advice != "" {
			fmt.Fprintf(stdout, "Advice: %s\n", outcome.Advice)
		}
	case session.StepFailOut:
		fmt.Fprintln(stdout, "Max attempts reached, marked as wrong.")
		if outcome.RevealedAnswer != "" {
			fmt.Fprintf(stdout, "Answer: %s\n", outcome.RevealedAnswer)
		}
	}
}

func finishOrContinue(stdout io.Writer, sess *session.Session, outcome session.Outcome) {
	if outcome.Final != nil {
		fmt.Fprintln(stdout, "\nAll questions attempted.")
		printScore(stdout, *outcome.Final)
		return
	}
	if outcome.Resolved != nil {
		fmt.Fprintln(stdout)
		printQuestion(stdout, sess)
	}
}

func printScore(stdout io.Writer, score session.Score) {
	fmt.Fprintf(stdout, "Correct: %d  Wrong: %d  Remaining: %d\n", score.Correct, score.Wrong, score.Remaining())
}
