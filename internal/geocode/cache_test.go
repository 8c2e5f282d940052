package geocode

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_engine/internal/domain"
)

type fakeProvider struct {
	reverseCalls int
	forwardCalls int
	fail         bool
	loc          domain.LocationRecord
}

func (f *fakeProvider) Reverse(ctx context.Context, lat, lon float64) (*domain.LocationRecord, error) {
	f.reverseCalls++
	if f.fail {
		return nil, &domain.ProviderError{Provider: "geocode", Op: "reverse", Err: errors.New("boom")}
	}
	loc := f.loc
	return &loc, nil
}

func (f *fakeProvider) Forward(ctx context.Context, address string) (*domain.LocationRecord, error) {
	f.forwardCalls++
	if f.fail {
		return nil, &domain.ProviderError{Provider: "geocode", Op: "forward", Err: errors.New("boom")}
	}
	loc := f.loc
	return &loc, nil
}

func newTestCache(p Provider, ttl time.Duration) *Cache {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewCache(p, CacheConfig{
		TTL:             ttl,
		DefaultLocation: domain.LocationRecord{City: "Delhi", Country: "India", CountryCode: "IN"},
	}, logger)
}

func TestReverseGeocode_CachesWithinTTL(t *testing.T) {
	provider := &fakeProvider{loc: domain.LocationRecord{City: "Mumbai", Country: "India"}}
	cache := newTestCache(provider, time.Hour)

	first := cache.ReverseGeocode(context.Background(), 19.076, 72.8777)
	second := cache.ReverseGeocode(context.Background(), 19.076, 72.8777)

	assert.Equal(t, "Mumbai", first.City)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.reverseCalls)
}

func TestReverseGeocode_RoundedKeySharesEntry(t *testing.T) {
	provider := &fakeProvider{loc: domain.LocationRecord{City: "Mumbai", Country: "India"}}
	cache := newTestCache(provider, time.Hour)

	cache.ReverseGeocode(context.Background(), 19.0761, 72.8771)
	cache.ReverseGeocode(context.Background(), 19.0762, 72.8773)

	assert.Equal(t, 1, provider.reverseCalls)
}

func TestReverseGeocode_TTLExpiry(t *testing.T) {
	provider := &fakeProvider{loc: domain.LocationRecord{City: "Mumbai", Country: "India"}}
	cache := newTestCache(provider, time.Hour)

	now := time.Now()
	cache.now = func() time.Time { return now }
	cache.ReverseGeocode(context.Background(), 19.076, 72.8777)

	cache.now = func() time.Time { return now.Add(2 * time.Hour) }
	cache.ReverseGeocode(context.Background(), 19.076, 72.8777)

	assert.Equal(t, 2, provider.reverseCalls)
}

func TestReverseGeocode_DefaultOnFailure(t *testing.T) {
	provider := &fakeProvider{fail: true}
	cache := newTestCache(provider, time.Hour)

	loc := cache.ReverseGeocode(context.Background(), 19.076, 72.8777)

	assert.Equal(t, "Delhi", loc.City)
	assert.Equal(t, "India", loc.Country)
}

func TestReverseGeocode_FailureNotCached(t *testing.T) {
	provider := &fakeProvider{fail: true}
	cache := newTestCache(provider, time.Hour)

	cache.ReverseGeocode(context.Background(), 19.076, 72.8777)

	// Provider recovers; the next call must reach it and cache the good value.
	provider.fail = false
	provider.loc = domain.LocationRecord{City: "Mumbai", Country: "India"}

	loc := cache.ReverseGeocode(context.Background(), 19.076, 72.8777)
	assert.Equal(t, "Mumbai", loc.City)
	assert.Equal(t, 2, provider.reverseCalls)

	cache.ReverseGeocode(context.Background(), 19.076, 72.8777)
	assert.Equal(t, 2, provider.reverseCalls)
}

func TestForwardGeocode_NormalizesAddress(t *testing.T) {
	provider := &fakeProvider{loc: domain.LocationRecord{City: "Pune", Country: "India"}}
	cache := newTestCache(provider, time.Hour)

	_, err := cache.ForwardGeocode(context.Background(), "  MG Road,   Pune ")
	require.NoError(t, err)
	_, err = cache.ForwardGeocode(context.Background(), "mg road, pune")
	require.NoError(t, err)

	assert.Equal(t, 1, provider.forwardCalls)
}

func TestForwardGeocode_PropagatesError(t *testing.T) {
	provider := &fakeProvider{fail: true}
	cache := newTestCache(provider, time.Hour)

	_, err := cache.ForwardGeocode(context.Background(), "nowhere")
	require.Error(t, err)
	assert.True(t, domain.IsProviderError(err))
}
