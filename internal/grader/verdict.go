package grader

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoVerdict indicates the backend output contained no JSON object.
var ErrNoVerdict = errors.New("no verdict object in grader output")

// ErrMalformedVerdict indicates the JSON object did not carry a boolean
// "correct" field.
var ErrMalformedVerdict = errors.New("malformed verdict object")

// ParseVerdict extracts a binary verdict from raw backend output. The
// contract is strict: the text sliced from the first "{" to the last "}"
// must decode as a JSON object whose "correct" field is a JSON boolean.
// Extra fields are ignored; a "hint" string is carried through when present.
// Anything else fails, and the caller treats the answer as incorrect —
// ambiguity never grades as correct.
func ParseVerdict(raw string) (Result, error) {
	trimmed := strings.TrimSpace(raw)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end < start {
		return Result{}, ErrNoVerdict
	}
	fragment := trimmed[start : end+1]

	var payload struct {
		Correct *bool  `json:"correct"`
		Hint    string `json:"hint"`
	}
	if err := json.Unmarshal([]byte(fragment), &payload); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrMalformedVerdict, err)
	}
	if payload.Correct == nil {
		return Result{}, fmt.Errorf("%w: missing boolean \"correct\" field", ErrMalformedVerdict)
	}
	return Result{
		Correct: *payload.Correct,
		Hint:    strings.TrimSpace(payload.Hint),
		RawText: raw,
	}, nil
}
