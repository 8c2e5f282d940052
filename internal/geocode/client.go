// Package geocode resolves coordinates and addresses to locations, caching
// successful resolutions for a TTL window. Content retrieval must never be
// blocked by a geocoding outage: reverse lookups fall back to a configured
// default location instead of failing.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"news_engine/internal/domain"
)

const providerName = "geocode"

// Provider is the external geocoding service.
type Provider interface {
	Reverse(ctx context.Context, lat, lon float64) (*domain.LocationRecord, error)
	Forward(ctx context.Context, address string) (*domain.LocationRecord, error)
}

// ClientConfig holds geocoding provider configuration.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to a Nominatim-style geocoding API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		logger:     logger.With("provider", providerName),
	}
}

type apiResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		State       string `json:"state"`
		Country     string `json:"country"`
		CountryCode string `json:"country_code"`
	} `json:"address"`
}

func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*domain.LocationRecord, error) {
	params := url.Values{
		"lat":    {strconv.FormatFloat(lat, 'f', 6, 64)},
		"lon":    {strconv.FormatFloat(lon, 'f', 6, 64)},
		"format": {"json"},
	}

	var result apiResult
	if err := c.doRequest(ctx, c.baseURL+"/reverse?"+params.Encode(), &result); err != nil {
		return nil, err
	}

	loc := result.toRecord()
	loc.Latitude = lat
	loc.Longitude = lon
	return loc, nil
}

func (c *Client) Forward(ctx context.Context, address string) (*domain.LocationRecord, error) {
	params := url.Values{
		"q":      {address},
		"format": {"json"},
		"limit":  {"1"},
	}

	var results []apiResult
	if err := c.doRequest(ctx, c.baseURL+"/search?"+params.Encode(), &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, &domain.ProviderError{
			Provider: providerName,
			Op:       "forward",
			Err:      fmt.Errorf("%q: %w", address, domain.ErrNoResults),
		}
	}

	loc := results[0].toRecord()
	loc.Latitude, _ = strconv.ParseFloat(results[0].Lat, 64)
	loc.Longitude, _ = strconv.ParseFloat(results[0].Lon, 64)
	return loc, nil
}

func (c *Client) doRequest(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &domain.ProviderError{Provider: providerName, Op: "create request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "NewsEngine/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.ProviderError{Provider: providerName, Op: "execute request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &domain.ProviderError{
			Provider: providerName,
			Op:       "execute request",
			Err:      fmt.Errorf("unexpected status: %d", resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.ProviderError{Provider: providerName, Op: "decode response", Err: err}
	}

	return nil
}

func (r apiResult) toRecord() *domain.LocationRecord {
	city := r.Address.City
	if city == "" {
		city = r.Address.Town
	}
	if city == "" {
		city = r.Address.Village
	}

	loc := &domain.LocationRecord{
		City:             city,
		Country:          r.Address.Country,
		CountryCode:      r.Address.CountryCode,
		FormattedAddress: r.DisplayName,
	}
	if r.Address.State != "" {
		state := r.Address.State
		loc.State = &state
	}
	return loc
}
