package grader

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Grader assesses a free-text answer that deterministic matching could not
// decide. Implementations may be slow or unreachable; callers bound every
// Grade call with a context deadline.
type Grader interface {
	Grade(ctx context.Context, req Request) (Result, error)
}

// Request carries everything a backend needs to judge one answer.
type Request struct {
	Prompt            string
	Rubric            string
	AcceptableAnswers []string
	LearnerAnswer     string
}

// Result is a parsed grading verdict. Hint is advice for the learner and
// never affects correctness. RawText preserves the backend output for
// observability.
type Result struct {
	Correct bool
	Hint    string
	RawText string
}

// HTTPDoer abstracts HTTP clients used by grading backends.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Settings selects and configures a grading backend. All fields are fixed at
// construction; sessions share the resulting Grader by reference.
type Settings struct {
	Provider      string
	Model         string
	APIKey        string
	BaseURL       string
	Temperature   float64
	ContextWindow int
	Timeout       time.Duration
}

// DefaultTimeout bounds a grading call when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// New constructs the grading backend named by settings.Provider.
func New(settings Settings, client HTTPDoer) (Grader, error) {
	switch strings.ToLower(strings.TrimSpace(settings.Provider)) {
	case "openrouter":
		return NewOpenRouterGrader(settings, client)
	case "ollama":
		return NewOllamaGrader(settings, client)
	default:
		return nil, fmt.Errorf("unsupported provider %q", settings.Provider)
	}
}
