package api

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

	"news_engine/internal/domain"
	"news_engine/internal/geocode"
)

type stubProvider struct {
	loc *domain.LocationRecord
	err error
}

func (p *stubProvider) Reverse(ctx context.Context, lat, lon float64) (*domain.LocationRecord, error) {
	return p.loc, p.err
}

func (p *stubProvider) Forward(ctx context.Context, address string) (*domain.LocationRecord, error) {
	return p.loc, p.err
}

func newTestServer(provider geocode.Provider) *Server {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	geocoder := geocode.NewCache(provider, geocode.CacheConfig{
		TTL:             time.Hour,
		DefaultLocation: domain.LocationRecord{City: "Delhi", Country: "India"},
	}, logger)
	return New(nil, nil, geocoder, logger)
}

func TestForwardGeocode_OK(t *testing.T) {
	server := newTestServer(&stubProvider{
		loc: &domain.LocationRecord{City: "Pune", Country: "India"},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/geocode/forward?address=pune", nil)
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pune")
}

func TestForwardGeocode_NoResultsIsNotFound(t *testing.T) {
	server := newTestServer(&stubProvider{
		err: &domain.ProviderError{Provider: "geocode", Op: "forward", Err: domain.ErrNoResults},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/geocode/forward?address=nowhere", nil)
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestForwardGeocode_OutageIsBadGateway(t *testing.T) {
	server := newTestServer(&stubProvider{
		err: &domain.ProviderError{Provider: "geocode", Op: "execute request", Err: errors.New("connection refused")},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/geocode/forward?address=pune", nil)
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestForwardGeocode_MissingAddress(t *testing.T) {
	server := newTestServer(&stubProvider{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/geocode/forward", nil)
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReverseGeocode_DefaultOnOutage(t *testing.T) {
	server := newTestServer(&stubProvider{err: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/geocode/reverse?lat=19.07&lon=72.87", nil)
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Delhi")
}
