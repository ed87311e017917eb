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

// defaultOpenRouterBaseURL is the default OpenRouter API base URL.
const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterGrader grades answers through the OpenRouter chat-completions
// API. It is the cloud backend.
type OpenRouterGrader struct {
	APIKey      string
	BaseURL     string
	Client      HTTPDoer
	Model       string
	Temperature float64
}

// NewOpenRouterGrader constructs an OpenRouter grading backend.
func NewOpenRouterGrader(settings Settings, client HTTPDoer) (*OpenRouterGrader, error) {
	if strings.TrimSpace(settings.Model) == "" {
		return nil, fmt.Errorf("model is required")
	}
	if strings.TrimSpace(settings.APIKey) == "" {
		return nil, fmt.Errorf("api key is required")
	}
	baseURL := strings.TrimSpace(settings.BaseURL)
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &OpenRouterGrader{
		APIKey:      settings.APIKey,
		BaseURL:     strings.TrimRight(baseURL, "/"),
		Client:      client,
		Model:       settings.Model,
		Temperature: settings.Temperature,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openRouterRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type openRouterResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Grade sends one non-streaming grading request and parses the verdict.
func (g *OpenRouterGrader) Grade(ctx context.Context, req Request) (Result, error) {
	userMessage, err := buildUserMessage(req)
	if err != nil {
		return Result{}, err
	}
	payload, err := json.Marshal(openRouterRequest{
		Model:       g.Model,
		Temperature: g.Temperature,
		Messages: []chatMessage{
			{Role: "system", Content: gradingInstructions},
			{Role: "user", Content: userMessage},
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := g.BaseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(httpReq)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return Result{}, fmt.Errorf("openrouter error: %s", strings.TrimSpace(string(body)))
	}

	var decoded openRouterResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return Result{}, fmt.Errorf("openrouter response has no choices")
	}
	return ParseVerdict(decoded.Choices[0].Message.Content)
}
