package gnews

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"news_engine/internal/domain"
)

const providerName = "gnews"

// Config holds content provider configuration.
type Config struct {
	BaseURL  string
	APIKey   string
	PageSize int
	Timeout  time.Duration
}

// Client fetches content from a GNews-style search API. It performs no
// internal retries: on failure the orchestrator decides between retrying
// and serving cached content.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	pageSize   int
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		pageSize:   cfg.PageSize,
		logger:     logger.With("provider", providerName),
	}
}

// Search returns one page of items for a locale plus the provider's total
// count. Failures surface as *domain.ProviderError.
func (c *Client) Search(ctx context.Context, locale domain.Locale, page, limit int) (*domain.SearchResult, error) {
	if limit <= 0 || limit > c.pageSize {
		limit = c.pageSize
	}

	params := url.Values{
		"q":      {localeQuery(locale)},
		"page":   {strconv.Itoa(page)},
		"max":    {strconv.Itoa(limit)},
		"apikey": {c.apiKey},
	}

	resp, err := c.doRequest(ctx, c.baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	result := &domain.SearchResult{
		Items:      make([]domain.SourceItem, 0, len(resp.Articles)),
		TotalCount: resp.TotalArticles,
	}
	for _, a := range resp.Articles {
		if a.URL == "" || a.Title == "" {
			continue
		}
		result.Items = append(result.Items, transform(a))
	}

	c.logger.Debug("fetched page",
		"city", locale.City,
		"page", page,
		"items", len(result.Items),
		"total", result.TotalCount,
	)

	return result, nil
}

func (c *Client) doRequest(ctx context.Context, reqURL string) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &domain.ProviderError{Provider: providerName, Op: "create request", Err: err}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "NewsEngine/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.ProviderError{Provider: providerName, Op: "execute request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &domain.ProviderError{Provider: providerName, Op: "execute request", Err: domain.ErrRateLimited}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &domain.ProviderError{
			Provider: providerName,
			Op:       "execute request",
			Err:      fmt.Errorf("unexpected status: %d", resp.StatusCode),
		}
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, &domain.ProviderError{Provider: providerName, Op: "decode response", Err: err}
	}

	return &apiResp, nil
}

func transform(a Article) domain.SourceItem {
	var publishedAt time.Time
	if a.PublishedAt != "" {
		if t, err := time.Parse(time.RFC3339, a.PublishedAt); err == nil {
			publishedAt = t.UTC()
		}
	}

	content := strings.TrimSpace(a.Content)
	if content == "" {
		content = strings.TrimSpace(a.Description)
	}

	return domain.SourceItem{
		Title:       strings.TrimSpace(a.Title),
		Description: strings.TrimSpace(a.Description),
		Content:     content,
		URL:         a.URL,
		Image:       a.Image,
		PublishedAt: publishedAt,
		SourceName:  a.Source.Name,
		SourceURL:   a.Source.URL,
	}
}

func localeQuery(locale domain.Locale) string {
	switch {
	case locale.City != "" && locale.Country != "":
		return fmt.Sprintf("%q OR %q", locale.City, locale.Country)
	case locale.City != "":
		return fmt.Sprintf("%q", locale.City)
	default:
		return fmt.Sprintf("%q", locale.Country)
	}
}
