package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "database:\n  host: localhost\n"))
	require.NoError(t, err)

	assert.Equal(t, "https://gnews.io/api/v4/search", cfg.ContentAPI.BaseURL)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.Geocode.BaseURL)
	assert.Equal(t, time.Hour, cfg.Geocode.TTL)
	assert.Equal(t, "Delhi", cfg.Geocode.DefaultLocation.City)
	assert.Equal(t, 6*time.Hour, cfg.Cache.ContentTTL)
	assert.Equal(t, 10, cfg.Cache.PageSize)
	assert.Equal(t, 5*time.Minute, cfg.Sync.Interval)
	assert.Equal(t, 7*24*time.Hour, cfg.Sync.Retention)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("TEST_API_KEY", "secret-key")

	cfg, err := Load(writeConfig(t, "content_api:\n  api_key: ${TEST_API_KEY}\n"))
	require.NoError(t, err)

	assert.Equal(t, "secret-key", cfg.ContentAPI.APIKey)
}

func TestLoad_ExplicitValuesKept(t *testing.T) {
	cfg, err := Load(writeConfig(t, "geocode:\n  base_url: https://geo.internal\ncache:\n  page_size: 25\n"))
	require.NoError(t, err)

	assert.Equal(t, "https://geo.internal", cfg.Geocode.BaseURL)
	assert.Equal(t, 25, cfg.Cache.PageSize)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
