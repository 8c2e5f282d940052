package domain

import "time"

// Locale is the {city, country} pair content and caches are partitioned by.
// It is comparable, so it can be used directly as a map key or as part of a
// composite cache key.
type Locale struct {
	City    string `yaml:"city" json:"city"`
	Country string `yaml:"country" json:"country"`
}

func (l Locale) IsZero() bool {
	return l.City == "" && l.Country == ""
}

// ContentRecord is one piece of externally sourced content, keyed by its
// fingerprint. At most one record exists per fingerprint; re-fetching the
// same source URL overwrites, never duplicates.
type ContentRecord struct {
	Fingerprint string    `db:"fingerprint" json:"fingerprint"`
	Title       string    `db:"title" json:"title"`
	Body        *string   `db:"body" json:"body,omitempty"`
	Summary     *string   `db:"summary" json:"summary,omitempty"`
	SourceName  string    `db:"source_name" json:"source_name"`
	SourceURL   string    `db:"source_url" json:"source_url"`
	ImageURL    *string   `db:"image_url" json:"image_url,omitempty"`
	City        string    `db:"city" json:"city"`
	Country     string    `db:"country" json:"country"`
	PublishedAt time.Time `db:"published_at" json:"published_at"`
	ExpiresAt   time.Time `db:"expires_at" json:"expires_at"`
}

func (r *ContentRecord) Locale() Locale {
	return Locale{City: r.City, Country: r.Country}
}

// Fresh reports whether the record may still be served without a refresh.
func (r *ContentRecord) Fresh(now time.Time) bool {
	return r.ExpiresAt.After(now)
}

// Tab selects the ranking applied to a feed. Tabs share fetch and cache
// mechanics and differ only in ordering.
type Tab string

const (
	TabLatest   Tab = "latest"
	TabTrending Tab = "trending"
	TabForYou   Tab = "for-you"
)
