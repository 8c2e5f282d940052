package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"news_engine/internal/config"
	"news_engine/internal/domain"
)

// SyncEngine reconciles the local interaction queue with the remote backend.
// It holds no persistent state of its own: every run drains the entire
// unsynced queue, applying each item independently so one bad item never
// blocks the rest.
type SyncEngine struct {
	local   LocalStore
	backend RemoteBackend
	logger  *slog.Logger
	config  config.SyncConfig
	now     func() time.Time
}

func NewSyncEngine(local LocalStore, backend RemoteBackend, logger *slog.Logger, cfg config.SyncConfig) *SyncEngine {
	return &SyncEngine{
		local:   local,
		backend: backend,
		logger:  logger.With("component", "sync_engine"),
		config:  cfg,
		now:     time.Now,
	}
}

// Sync performs one sync run. Per-item failures are logged and counted;
// amongst failures the run itself still succeeds. Only a failure to read the
// queue aborts the run.
func (e *SyncEngine) Sync(ctx context.Context) (*domain.SyncStats, error) {
	startTime := time.Now()

	items, err := e.local.GetUnsynced(ctx)
	if err != nil {
		return nil, fmt.Errorf("get unsynced: %w", err)
	}

	stats := &domain.SyncStats{Attempted: len(items)}

	for i := range items {
		in := &items[i]

		if err := e.apply(ctx, in); err != nil {
			stats.Failed++
			e.logger.Warn("interaction sync failed",
				"id", in.ID, "type", in.Type, "error", err)
			continue
		}

		// If this write is lost (crash between remote apply and here), the
		// item replays next run; the remote write shapes make that harmless.
		if err := e.local.MarkSynced(ctx, in.ID); err != nil {
			stats.Failed++
			e.logger.Error("mark synced failed", "id", in.ID, "error", err)
			continue
		}

		stats.Synced++
	}

	if e.config.Retention > 0 {
		pruned, err := e.local.PruneSynced(ctx, e.now().Add(-e.config.Retention))
		if err != nil {
			e.logger.Warn("prune synced failed", "error", err)
		} else {
			stats.Pruned = pruned
		}
	}

	stats.Duration = time.Since(startTime)

	e.logger.Info("sync run completed",
		"attempted", stats.Attempted,
		"synced", stats.Synced,
		"failed", stats.Failed,
		"pruned", stats.Pruned,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (e *SyncEngine) apply(ctx context.Context, in *domain.Interaction) error {
	switch in.Type {
	case domain.InteractionLike:
		return e.backend.UpsertLike(ctx, in.UserID, in.Fingerprint, in.CreatedAt)
	case domain.InteractionUnlike:
		return e.backend.DeleteLike(ctx, in.UserID, in.Fingerprint)
	case domain.InteractionComment:
		return e.backend.InsertComment(ctx, in)
	case domain.InteractionShare:
		return e.backend.InsertShare(ctx, in)
	case domain.InteractionPollVote:
		return e.backend.UpsertPollVote(ctx, in)
	default:
		return fmt.Errorf("unknown interaction type %q", in.Type)
	}
}
