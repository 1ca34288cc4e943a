package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/homepilot/homepilot-api/internal/entity"
	"github.com/homepilot/homepilot-api/internal/infra/http/middleware"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	model          = "gpt-4o"

	systemPrompt = "You are an AI that scores signup intent from 1-5. Respond with only a number."

	promptTemplate = `Analyze this signup message and score it from 1 to 5 based on intent and seriousness:

Message: %q

Scoring criteria:
1 = Very low intent (just curious, testing)
2 = Low intent (mild interest)
3 = Medium intent (some interest)
4 = High intent (genuine interest, specific use case)
5 = Very high intent (excited, ready to use, clear purpose)

Respond with ONLY a number 1-5.`
)

var firstInteger = regexp.MustCompile(`\d+`)

// Client scores free-text signup messages on the canonical 1..5 scale via
// chat completions. The model reply is untrusted: the first integer token
// is parsed out and clamped, and a reply with no integer falls back to the
// minimum score.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Score(ctx context.Context, message string) (int, error) {
	url := fmt.Sprintf("%s/chat/completions", c.baseURL)

	payload := chatCompletionRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(promptTemplate, message)},
		},
		MaxTokens:   5,
		Temperature: 0.1,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal scoring request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return 0, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		middleware.RecordIntegrationError("openai")
		return 0, fmt.Errorf("scoring request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		middleware.RecordIntegrationError("openai")
		return 0, fmt.Errorf("scoring request failed (status %d)", resp.StatusCode)
	}

	var response chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return 0, fmt.Errorf("failed to decode scoring response: %w", err)
	}

	if len(response.Choices) == 0 {
		return entity.ScoreMin, nil
	}

	return parseScore(response.Choices[0].Message.Content), nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
}

// parseScore takes the first integer token in the reply; anything else is
// the fail-safe minimum. The result is always clamped into [1,5].
func parseScore(reply string) int {
	token := firstInteger.FindString(strings.TrimSpace(reply))
	if token == "" {
		return entity.ScoreMin
	}

	score, err := strconv.Atoi(token)
	if err != nil {
		return entity.ScoreMin
	}

	if score < entity.ScoreMin {
		return entity.ScoreMin
	}
	if score > entity.ScoreMax {
		return entity.ScoreMax
	}
	return score
}
