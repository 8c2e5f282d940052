package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"news_engine/internal/domain"
)

// ContentSource is the external content provider: a paginated search keyed by
// locale. It performs no internal retries; retry-or-serve-cache policy
// belongs to the orchestrator.
type ContentSource interface {
	Search(ctx context.Context, locale domain.Locale, page, limit int) (*domain.SearchResult, error)
}

// Summarizer produces a short summary of text. Implementations never fail:
// provider errors degrade to a truncation fallback.
type Summarizer interface {
	Summarize(ctx context.Context, text string) string
}

// ContentCache is the server-side durable content store, the source of truth
// read before hitting the network.
type ContentCache interface {
	Upsert(ctx context.Context, record *domain.ContentRecord) error
	QueryFresh(ctx context.Context, locale domain.Locale, page, limit int) ([]domain.ContentRecord, error)
	CountFresh(ctx context.Context, locale domain.Locale) (int, error)
	QueryAny(ctx context.Context, locale domain.Locale, page, limit int) ([]domain.ContentRecord, error)
}

// LocalStore is the client-side durable store: content mirror plus the
// interaction queue.
type LocalStore interface {
	PutContent(ctx context.Context, records []domain.ContentRecord) error
	ListContent(ctx context.Context, locale domain.Locale, page, limit int) ([]domain.ContentRecord, error)
	QueueInteraction(ctx context.Context, in *domain.Interaction) error
	GetUnsynced(ctx context.Context) ([]domain.Interaction, error)
	MarkSynced(ctx context.Context, id string) error
	RecentInteractions(ctx context.Context, limit int) ([]domain.Interaction, error)
	PruneSynced(ctx context.Context, cutoff time.Time) (int64, error)
}

// RemoteBackend is the remote record store interactions reconcile against.
// Every write must be replay-safe.
type RemoteBackend interface {
	UpsertLike(ctx context.Context, userID, fingerprint string, at time.Time) error
	DeleteLike(ctx context.Context, userID, fingerprint string) error
	InsertComment(ctx context.Context, in *domain.Interaction) error
	InsertShare(ctx context.Context, in *domain.Interaction) error
	UpsertPollVote(ctx context.Context, in *domain.Interaction) error
	LikeCounts(ctx context.Context, fingerprints []string) (map[string]int, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Publisher emits content-refresh events after a fresh persist.
type Publisher interface {
	PublishRefresh(ctx context.Context, locale domain.Locale, fingerprints []string) error
	Close() error
}
