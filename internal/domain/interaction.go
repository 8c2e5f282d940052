package domain

import (
	"fmt"
	"time"
)

// InteractionType enumerates user actions recorded against content.
type InteractionType string

const (
	InteractionLike     InteractionType = "like"
	InteractionUnlike   InteractionType = "unlike"
	InteractionComment  InteractionType = "comment"
	InteractionShare    InteractionType = "share"
	InteractionPollVote InteractionType = "pollVote"
)

// Interaction is a locally recorded user action pending or confirmed remote
// reconciliation. The ID doubles as the remote idempotency key for comments
// and shares, so replaying a sync attempt cannot double-apply them.
type Interaction struct {
	ID           string          `db:"id" json:"id"`
	Type         InteractionType `db:"type" json:"type"`
	Fingerprint  string          `db:"fingerprint" json:"fingerprint"`
	UserID       string          `db:"user_id" json:"user_id"`
	CommentText  *string         `db:"comment_text" json:"comment_text,omitempty"`
	ShareChannel *string         `db:"share_channel" json:"share_channel,omitempty"`
	PollID       *string         `db:"poll_id" json:"poll_id,omitempty"`
	PollOption   *string         `db:"poll_option" json:"poll_option,omitempty"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	Synced       bool            `db:"synced" json:"synced"`
}

// NewInteraction builds an interaction with a locally unique id composed
// from type, target fingerprint and creation time.
func NewInteraction(typ InteractionType, fingerprint, userID string, createdAt time.Time) *Interaction {
	return &Interaction{
		ID:          fmt.Sprintf("%s:%s:%d", typ, fingerprint, createdAt.UnixNano()),
		Type:        typ,
		Fingerprint: fingerprint,
		UserID:      userID,
		CreatedAt:   createdAt,
	}
}
