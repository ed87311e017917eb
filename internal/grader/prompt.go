package grader

import (
	"encoding/json"
	"fmt"
)

// gradingInstructions is the system prompt sent to every backend. The reply
// contract is a single-line JSON object; ParseVerdict enforces it.
const gradingInstructions = `You are an exacting but supportive grader. You will receive:
1) A question (prompt)
2) An array of acceptable answers (strings)
3) A rubric (text guidance)
4) A student's answer (free text)

Decide if the student's answer is correct. Use the acceptable answers and rubric.
- Be tolerant of small variations, case, punctuation, and minor whitespace.
- If the answer is clearly equivalent or a commonly accepted synonym, mark it correct.
- If in doubt, lean conservative and mark incorrect.
- Provide a brief, actionable hint without revealing the full answer.

Output strictly as JSON in one line with this schema:
{"correct": true|false, "hint": "<short advice, no solution>"}`

// gradingPayload is the user message sent alongside the instructions.
type gradingPayload struct {
	Prompt            string   `json:"prompt"`
	AcceptableAnswers []string `json:"acceptable_answers"`
	Rubric            string   `json:"rubric"`
	StudentAnswer     string   `json:"student_answer"`
}

func buildUserMessage(req Request) (string, error) {
	payload, err := json.Marshal(gradingPayload{
		Prompt:            req.Prompt,
		AcceptableAnswers: req.AcceptableAnswers,
		Rubric:            req.Rubric,
		StudentAnswer:     req.LearnerAnswer,
	})
	if err != nil {
		return "", fmt.Errorf("marshal grading payload: %w", err)
	}
	return string(payload), nil
}
