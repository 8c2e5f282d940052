package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"news_engine/internal/domain"
)

// InteractionStore is the remote record store the sync engine reconciles
// against. Every write is shaped to be replay-safe: likes and poll votes use
// unique-constraint upserts, comments and shares use the client-generated
// interaction id as their primary key, so a retried sync never double-applies.
type InteractionStore struct {
	db *sqlx.DB
}

func NewInteractionStore(db *sqlx.DB) *InteractionStore {
	return &InteractionStore{db: db}
}

func (s *InteractionStore) UpsertLike(ctx context.Context, userID, fingerprint string, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO content_likes (user_id, fingerprint, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, fingerprint) DO NOTHING`,
		userID, fingerprint, at)
	return err
}

// DeleteLike removes a like. Deleting an absent row is a no-op, which keeps
// unlike replays idempotent.
func (s *InteractionStore) DeleteLike(ctx context.Context, userID, fingerprint string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM content_likes WHERE user_id = $1 AND fingerprint = $2",
		userID, fingerprint)
	return err
}

func (s *InteractionStore) InsertComment(ctx context.Context, in *domain.Interaction) error {
	if in.CommentText == nil {
		return fmt.Errorf("comment %s has no text", in.ID)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO content_comments (id, user_id, fingerprint, body, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING`,
		in.ID, in.UserID, in.Fingerprint, *in.CommentText, in.CreatedAt)
	return err
}

func (s *InteractionStore) InsertShare(ctx context.Context, in *domain.Interaction) error {
	channel := ""
	if in.ShareChannel != nil {
		channel = *in.ShareChannel
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO content_shares (id, user_id, fingerprint, channel, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING`,
		in.ID, in.UserID, in.Fingerprint, channel, in.CreatedAt)
	return err
}

func (s *InteractionStore) UpsertPollVote(ctx context.Context, in *domain.Interaction) error {
	if in.PollID == nil || in.PollOption == nil {
		return fmt.Errorf("poll vote %s missing poll id or option", in.ID)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO poll_votes (user_id, poll_id, option, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, poll_id) DO UPDATE SET
			option = EXCLUDED.option,
			created_at = EXCLUDED.created_at`,
		in.UserID, *in.PollID, *in.PollOption, in.CreatedAt)
	return err
}

// LikeCounts returns like totals per fingerprint, used by the trending tab.
func (s *InteractionStore) LikeCounts(ctx context.Context, fingerprints []string) (map[string]int, error) {
	if len(fingerprints) == 0 {
		return make(map[string]int), nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT fingerprint, COUNT(*)
		FROM content_likes
		WHERE fingerprint = ANY($1)
		GROUP BY fingerprint`,
		pq.Array(fingerprints))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var fp string
		var count int
		if err := rows.Scan(&fp, &count); err != nil {
			return nil, err
		}
		counts[fp] = count
	}

	return counts, rows.Err()
}
