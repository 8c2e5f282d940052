package gnews

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_engine/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(serverURL string) *Client {
	return New(Config{
		BaseURL:  serverURL,
		APIKey:   "test-key",
		PageSize: 10,
		Timeout:  5 * time.Second,
	}, testLogger())
}

func TestSearch_TransformsItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, `"Delhi" OR "India"`, r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"totalArticles": 42,
			"articles": [
				{
					"title": " Monsoon update ",
					"description": "desc",
					"content": "full content",
					"url": "https://x/a",
					"image": "https://x/a.jpg",
					"publishedAt": "2026-08-30T10:00:00Z",
					"source": {"name": "The Paper", "url": "https://x"}
				},
				{
					"title": "",
					"url": "https://x/skipped"
				}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Search(context.Background(), domain.Locale{City: "Delhi", Country: "India"}, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 42, result.TotalCount)
	require.Len(t, result.Items, 1)

	item := result.Items[0]
	assert.Equal(t, "Monsoon update", item.Title)
	assert.Equal(t, "full content", item.Content)
	assert.Equal(t, "https://x/a", item.URL)
	assert.Equal(t, "The Paper", item.SourceName)
	assert.Equal(t, time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC), item.PublishedAt)
}

func TestSearch_FallsBackToDescription(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"totalArticles": 1,
			"articles": [{"title": "t", "description": "only desc", "url": "https://x/a"}]
		}`))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).Search(context.Background(), domain.Locale{City: "Delhi"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "only desc", result.Items[0].Content)
}

func TestSearch_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Search(context.Background(), domain.Locale{City: "Delhi"}, 1, 10)
	require.Error(t, err)
	assert.True(t, domain.IsProviderError(err))
	assert.True(t, errors.Is(err, domain.ErrRateLimited))
}

func TestSearch_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Search(context.Background(), domain.Locale{City: "Delhi"}, 1, 10)
	require.Error(t, err)
	assert.True(t, domain.IsProviderError(err))
}

func TestSearch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Search(context.Background(), domain.Locale{City: "Delhi"}, 1, 10)
	require.Error(t, err)

	var pe *domain.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "gnews", pe.Provider)
}
