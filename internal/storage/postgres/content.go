package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"news_engine/internal/domain"
)

// ContentStore is the server-side durable content cache. Records are keyed by
// fingerprint: a conflicting upsert replaces, never duplicates. Expiry is
// checked at read time; no background sweep is required.
type ContentStore struct {
	db *sqlx.DB
}

func NewContentStore(db *sqlx.DB) *ContentStore {
	return &ContentStore{db: db}
}

func (s *ContentStore) Upsert(ctx context.Context, record *domain.ContentRecord) error {
	query := `
		INSERT INTO content_records (
			fingerprint, title, body, summary, source_name, source_url,
			image_url, city, country, published_at, expires_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		ON CONFLICT (fingerprint) DO UPDATE SET
			title = EXCLUDED.title,
			body = EXCLUDED.body,
			summary = EXCLUDED.summary,
			source_name = EXCLUDED.source_name,
			source_url = EXCLUDED.source_url,
			image_url = EXCLUDED.image_url,
			city = EXCLUDED.city,
			country = EXCLUDED.country,
			published_at = EXCLUDED.published_at,
			expires_at = EXCLUDED.expires_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		record.Fingerprint,
		record.Title,
		record.Body,
		record.Summary,
		record.SourceName,
		record.SourceURL,
		record.ImageURL,
		record.City,
		record.Country,
		record.PublishedAt,
		record.ExpiresAt,
	)
	return err
}

// QueryFresh returns unexpired records for a locale, newest first. Expired
// records are never returned, even when nothing else is available.
func (s *ContentStore) QueryFresh(ctx context.Context, locale domain.Locale, page, limit int) ([]domain.ContentRecord, error) {
	if page < 1 {
		page = 1
	}

	query := `
		SELECT fingerprint, title, body, summary, source_name, source_url,
			image_url, city, country, published_at, expires_at
		FROM content_records
		WHERE city = $1 AND country = $2 AND expires_at > now()
		ORDER BY published_at DESC
		LIMIT $3 OFFSET $4`

	var records []domain.ContentRecord
	err := s.db.SelectContext(ctx, &records, query,
		locale.City, locale.Country, limit, (page-1)*limit)
	return records, err
}

// CountFresh returns the number of unexpired records for a locale.
func (s *ContentStore) CountFresh(ctx context.Context, locale domain.Locale) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM content_records WHERE city = $1 AND country = $2 AND expires_at > now()",
		locale.City, locale.Country)
	return count, err
}

// QueryAny is the degraded-mode read: it ignores expiry so the orchestrator
// can serve near-stale content when the provider is down.
func (s *ContentStore) QueryAny(ctx context.Context, locale domain.Locale, page, limit int) ([]domain.ContentRecord, error) {
	if page < 1 {
		page = 1
	}

	query := `
		SELECT fingerprint, title, body, summary, source_name, source_url,
			image_url, city, country, published_at, expires_at
		FROM content_records
		WHERE city = $1 AND country = $2
		ORDER BY published_at DESC
		LIMIT $3 OFFSET $4`

	var records []domain.ContentRecord
	err := s.db.SelectContext(ctx, &records, query,
		locale.City, locale.Country, limit, (page-1)*limit)
	return records, err
}
