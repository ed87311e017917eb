package grader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// defaultOllamaBaseURL is the default address of a local ollama server.
const defaultOllamaBaseURL = "http://localhost:11434"

// OllamaGrader grades answers through a local ollama server. It is the
// local-model backend; apart from transport details it is interchangeable
// with the cloud backend.
type OllamaGrader struct {
	BaseURL       string
	Client        HTTPDoer
	Model         string
	Temperature   float64
	ContextWindow int
}

// NewOllamaGrader constructs an ollama grading backend.
func NewOllamaGrader(settings Settings, client HTTPDoer) (*OllamaGrader, error) {
	if strings.TrimSpace(settings.Model) == "" {
		return nil, fmt.Errorf("model is required")
	}
	baseURL := strings.TrimSpace(settings.BaseURL)
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &OllamaGrader{
		BaseURL:       strings.TrimRight(baseURL, "/"),
		Client:        client,
		Model:         settings.Model,
		Temperature:   settings.Temperature,
		ContextWindow: settings.ContextWindow,
	}, nil
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumCtx      int     `json:"num_ctx,omitempty"`
}

type ollamaRequest struct {
	Model    string        `json:"model"`
	Stream   bool          `json:"stream"`
	Messages []chatMessage `json:"messages"`
	Options  ollamaOptions `json:"options"`
}

type ollamaResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

// Grade sends one non-streaming grading request and parses the verdict.
func (g *OllamaGrader) Grade(ctx context.Context, req Request) (Result, error) {
	userMessage, err := buildUserMessage(req)
	if err != nil {
		return Result{}, err
	}
	payload, err := json.Marshal(ollamaRequest{
		Model:  g.Model,
		Stream: false,
		Messages: []chatMessage{
			{Role: "system", Content: gradingInstructions},
			{Role: "user", Content: userMessage},
		},
		Options: ollamaOptions{
			Temperature: g.Temperature,
			NumCtx:      g.ContextWindow,
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := g.BaseURL + "/api/chat"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(httpReq)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return Result{}, fmt.Errorf("ollama error: %s", strings.TrimSpace(string(body)))
	}

	var decoded ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}
	return ParseVerdict(decoded.Message.Content)
}
