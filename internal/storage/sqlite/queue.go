package sqlite

import (
	"context"
	"fmt"
	"time"

	"news_engine/internal/domain"
)

// QueueInteraction appends an interaction to the durable queue. This is a
// local disk write, never a network call: it must succeed whether or not the
// device is online, and its error is the one storage failure that surfaces to
// the caller, since silently dropping a recorded interaction violates the
// durability invariant.
func (s *Store) QueueInteraction(ctx context.Context, in *domain.Interaction) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO interaction_queue (
			id, type, fingerprint, user_id, comment_text, share_channel,
			poll_id, poll_option, created_at, synced
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0)`,
		in.ID, in.Type, in.Fingerprint, in.UserID, in.CommentText,
		in.ShareChannel, in.PollID, in.PollOption, in.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("queue interaction %s: %w", in.ID, err)
	}
	return nil
}

// GetUnsynced returns all interactions not yet confirmed remotely, oldest first.
func (s *Store) GetUnsynced(ctx context.Context) ([]domain.Interaction, error) {
	var items []domain.Interaction
	err := s.db.SelectContext(ctx, &items, `
		SELECT id, type, fingerprint, user_id, comment_text, share_channel,
			poll_id, poll_option, created_at, synced
		FROM interaction_queue
		WHERE synced = 0
		ORDER BY created_at ASC`)
	return items, err
}

// MarkSynced flips exactly one interaction from unsynced to synced. The flag
// never flips back.
func (s *Store) MarkSynced(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE interaction_queue SET synced = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("mark synced %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("mark synced %s: interaction not found", id)
	}
	return nil
}

// RecentInteractions returns the newest interactions regardless of sync
// state. The for-you tab reads these to bias its ordering.
func (s *Store) RecentInteractions(ctx context.Context, limit int) ([]domain.Interaction, error) {
	var items []domain.Interaction
	err := s.db.SelectContext(ctx, &items, `
		SELECT id, type, fingerprint, user_id, comment_text, share_channel,
			poll_id, poll_option, created_at, synced
		FROM interaction_queue
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	return items, err
}

// PruneSynced deletes synced interactions created before cutoff, closing the
// audit/idempotency retention window.
func (s *Store) PruneSynced(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM interaction_queue WHERE synced = 1 AND created_at < ?",
		cutoff.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Clear is the user-initiated cache wipe: mirror, queue and metadata go
// together in one transaction.
func (s *Store) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"content_mirror", "interaction_queue", "meta"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}

	return tx.Commit()
}
