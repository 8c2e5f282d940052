package geocode

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"news_engine/internal/domain"
)

// coordKey is a rounded coordinate pair (2 decimal places, ~1km) used as the
// reverse-lookup cache key. A struct key avoids the accidental collisions of
// string-concatenated keys.
type coordKey struct {
	Lat int64
	Lon int64
}

func roundCoord(lat, lon float64) coordKey {
	return coordKey{
		Lat: int64(math.Round(lat * 100)),
		Lon: int64(math.Round(lon * 100)),
	}
}

func normalizeAddress(address string) string {
	return strings.ToLower(strings.Join(strings.Fields(address), " "))
}

type entry struct {
	loc      domain.LocationRecord
	cachedAt time.Time
}

// CacheConfig holds geocoding cache configuration.
type CacheConfig struct {
	TTL             time.Duration
	DefaultLocation domain.LocationRecord
}

// Cache wraps a geocoding provider with a time-boxed in-memory cache.
// Successful resolutions are cached for the TTL window; failures are never
// cached, so a transient outage self-heals on the next call.
type Cache struct {
	provider   Provider
	ttl        time.Duration
	defaultLoc domain.LocationRecord
	now        func() time.Time
	logger     *slog.Logger

	mu      sync.Mutex
	reverse map[coordKey]entry
	forward map[string]entry
}

func NewCache(provider Provider, cfg CacheConfig, logger *slog.Logger) *Cache {
	return &Cache{
		provider:   provider,
		ttl:        cfg.TTL,
		defaultLoc: cfg.DefaultLocation,
		now:        time.Now,
		logger:     logger.With("component", "geocode_cache"),
		reverse:    make(map[coordKey]entry),
		forward:    make(map[string]entry),
	}
}

// ReverseGeocode resolves coordinates to a location. It never fails: a
// provider error yields the configured default location.
func (c *Cache) ReverseGeocode(ctx context.Context, lat, lon float64) domain.LocationRecord {
	key := roundCoord(lat, lon)

	c.mu.Lock()
	cached, ok := c.reverse[key]
	c.mu.Unlock()
	if ok && c.fresh(cached) {
		return cached.loc
	}

	loc, err := c.provider.Reverse(ctx, lat, lon)
	if err != nil {
		c.logger.Warn("reverse geocode failed, using default location",
			"lat", lat, "lon", lon, "error", err)
		return c.defaultLoc
	}

	c.mu.Lock()
	c.reverse[key] = entry{loc: *loc, cachedAt: c.now()}
	c.mu.Unlock()

	return *loc
}

// ForwardGeocode resolves an address to a location. Unlike reverse lookups
// there is no sensible default, so provider errors propagate.
func (c *Cache) ForwardGeocode(ctx context.Context, address string) (domain.LocationRecord, error) {
	key := normalizeAddress(address)

	c.mu.Lock()
	cached, ok := c.forward[key]
	c.mu.Unlock()
	if ok && c.fresh(cached) {
		return cached.loc, nil
	}

	loc, err := c.provider.Forward(ctx, address)
	if err != nil {
		return domain.LocationRecord{}, err
	}

	c.mu.Lock()
	c.forward[key] = entry{loc: *loc, cachedAt: c.now()}
	c.mu.Unlock()

	return *loc, nil
}

func (c *Cache) fresh(e entry) bool {
	return c.now().Sub(e.cachedAt) < c.ttl
}
