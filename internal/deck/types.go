package deck

// Deck is an immutable set of questions plus the grading policy that
// governs a session over them. Decks are read-only after Load.
type Deck struct {
	Title       string
	Description string
	Policy      Policy
	Questions   []Question
}

// Policy controls how attempts are counted and what is revealed on fail-out.
type Policy struct {
	MaxAttempts           int
	RevealAnswerOnFailout bool
}

// Question represents a single prompt with its accepted answers.
type Question struct {
	ID                string
	Prompt            string
	AcceptableAnswers []string
	Hint              string
	Rubric            string
}

// DefaultMaxAttempts is applied when a deck omits policy.max_attempts.
const DefaultMaxAttempts = 3
