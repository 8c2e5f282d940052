// Package summarizer produces short summaries of article text. The external
// provider is optional: missing configuration or a provider failure selects a
// deterministic truncation fallback, so summarization can never block caching.
package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Config holds summarization provider configuration. An empty APIKey or
// BaseURL disables the provider entirely.
type Config struct {
	BaseURL  string
	APIKey   string
	MaxChars int
	Timeout  time.Duration
}

type Summarizer struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	maxChars   int
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Summarizer {
	return &Summarizer{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		maxChars:   cfg.MaxChars,
		logger:     logger.With("provider", "summarizer"),
	}
}

// Summarize returns a short summary of text. It never fails: provider errors
// degrade to the truncation fallback.
func (s *Summarizer) Summarize(ctx context.Context, text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	if s.baseURL == "" || s.apiKey == "" {
		return Truncate(text, s.maxChars)
	}

	summary, err := s.callProvider(ctx, text)
	if err != nil {
		s.logger.Debug("summarization failed, using fallback", "error", err)
		return Truncate(text, s.maxChars)
	}

	return summary
}

func (s *Summarizer) callProvider(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result struct {
		Summary string `json:"summary"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	summary := strings.TrimSpace(result.Summary)
	if summary == "" {
		return "", fmt.Errorf("empty summary")
	}

	return summary, nil
}

// Truncate returns the first maxChars runes of text followed by an ellipsis.
// Text already within the limit is returned unchanged.
func Truncate(text string, maxChars int) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars]) + "…"
}
