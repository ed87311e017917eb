package deck

import (
	"fmt"
	"strings"
)

// Issue captures a single validation problem in a deck.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more deck validation issues. A deck that
// produces one must not be handed to a session.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("deck validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Normalize trims display strings and validates the deck. All violations are
// collected into a single *ValidationError so the caller sees every problem
// at once.
func Normalize(loaded *Deck) (*Deck, error) {
	collector := &issueCollector{}

	loaded.Title = strings.TrimSpace(loaded.Title)
	if loaded.Title == "" {
		loaded.Title = "Untitled Deck"
	}
	loaded.Description = strings.TrimSpace(loaded.Description)

	if loaded.Policy.MaxAttempts < 1 {
		collector.add("meta.policy.max_attempts", fmt.Sprintf("must be at least 1, got %d", loaded.Policy.MaxAttempts))
	}
	if len(loaded.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	seenIDs := map[string]struct{}{}
	for i, question := range loaded.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)

		question.ID = strings.TrimSpace(question.ID)
		if question.ID == "" {
			collector.add(prefix+".id", "is required")
		} else if _, exists := seenIDs[question.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", question.ID))
		} else {
			seenIDs[question.ID] = struct{}{}
		}

		question.Prompt = strings.TrimSpace(question.Prompt)
		if question.Prompt == "" {
			collector.add(prefix+".prompt", "is required")
		}

		question.AcceptableAnswers = trimStrings(question.AcceptableAnswers)
		if len(question.AcceptableAnswers) == 0 {
			collector.add(prefix+".acceptable_answers", "must include at least one entry")
		} else {
			for answerIndex, answer := range question.AcceptableAnswers {
				if answer == "" {
					collector.add(fmt.Sprintf("%s.acceptable_answers[%d]", prefix, answerIndex), "is required")
				}
			}
		}

		question.Hint = strings.TrimSpace(question.Hint)
		question.Rubric = strings.TrimSpace(question.Rubric)
		loaded.Questions[i] = question
	}

	if err := collector.result(); err != nil {
		return nil, err
	}
	return loaded, nil
}

func trimStrings(values []string) []string {
	trimmed := make([]string, 0, len(values))
	for _, value := range values {
		trimmed = append(trimmed, strings.TrimSpace(value))
	}
	return trimmed
}
