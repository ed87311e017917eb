package session

import "studytutor/internal/evaluate"

// NextStep applies the attempt policy. Attempts count from 1 for the first
// submission, so maxAttempts bounds the total number of submissions: a
// correct verdict always advances, an incorrect verdict shows a hint while
// attempts remain and fails out on the last one.
func NextStep(verdict evaluate.Verdict, attemptsUsed, maxAttempts int) Step {
	if verdict == evaluate.VerdictCorrect {
		return StepAdvance
	}
	if attemptsUsed >= maxAttempts {
		return StepFailOut
	}
	return StepShowHint
}
