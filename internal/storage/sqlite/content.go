package sqlite

import (
	"context"
	"time"

	"news_engine/internal/domain"
)

// PutContent bulk-upserts records into the content mirror, idempotent by
// fingerprint. The whole batch is written in one transaction: an abandoned
// enrichment persists either everything or nothing.
func (s *Store) PutContent(ctx context.Context, records []domain.ContentRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO content_mirror (
			fingerprint, title, body, summary, source_name, source_url,
			image_url, city, country, published_at, expires_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (fingerprint) DO UPDATE SET
			title = excluded.title,
			body = excluded.body,
			summary = excluded.summary,
			source_name = excluded.source_name,
			source_url = excluded.source_url,
			image_url = excluded.image_url,
			city = excluded.city,
			country = excluded.country,
			published_at = excluded.published_at,
			expires_at = excluded.expires_at`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range records {
		r := &records[i]
		if _, err := stmt.ExecContext(ctx,
			r.Fingerprint, r.Title, r.Body, r.Summary, r.SourceName,
			r.SourceURL, r.ImageURL, r.City, r.Country,
			r.PublishedAt.UTC(), r.ExpiresAt.UTC(),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListContent returns mirrored records for a locale, newest first. The mirror
// serves offline reads, so expiry is not enforced here; callers that need
// fresh-only data go through the server-side cache.
func (s *Store) ListContent(ctx context.Context, locale domain.Locale, page, limit int) ([]domain.ContentRecord, error) {
	if page < 1 {
		page = 1
	}

	var records []domain.ContentRecord
	err := s.db.SelectContext(ctx, &records, `
		SELECT fingerprint, title, body, summary, source_name, source_url,
			image_url, city, country, published_at, expires_at
		FROM content_mirror
		WHERE city = ? AND country = ?
		ORDER BY published_at DESC
		LIMIT ? OFFSET ?`,
		locale.City, locale.Country, limit, (page-1)*limit)
	return records, err
}

// PruneExpiredContent removes mirror entries that expired before cutoff.
// Housekeeping only; correctness never depends on it.
func (s *Store) PruneExpiredContent(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM content_mirror WHERE expires_at < ?", cutoff.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
