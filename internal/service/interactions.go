package service

import (
	"context"
	"log/slog"
	"time"

	"news_engine/internal/domain"
)

// Interactions records user actions into the durable local queue. Recording
// is always a local write, so a like tapped offline feels instantaneous. The
// one failure mode that surfaces to the caller is a local storage error,
// since an interaction the user believes was recorded but wasn't is a
// correctness violation.
type Interactions struct {
	local  LocalStore
	logger *slog.Logger
	now    func() time.Time
}

func NewInteractions(local LocalStore, logger *slog.Logger) *Interactions {
	return &Interactions{
		local:  local,
		logger: logger.With("component", "interactions"),
		now:    time.Now,
	}
}

func (s *Interactions) Like(ctx context.Context, userID, fingerprint string) (*domain.Interaction, error) {
	return s.queue(ctx, domain.NewInteraction(domain.InteractionLike, fingerprint, userID, s.now()))
}

func (s *Interactions) Unlike(ctx context.Context, userID, fingerprint string) (*domain.Interaction, error) {
	return s.queue(ctx, domain.NewInteraction(domain.InteractionUnlike, fingerprint, userID, s.now()))
}

func (s *Interactions) Comment(ctx context.Context, userID, fingerprint, text string) (*domain.Interaction, error) {
	in := domain.NewInteraction(domain.InteractionComment, fingerprint, userID, s.now())
	in.CommentText = &text
	return s.queue(ctx, in)
}

func (s *Interactions) Share(ctx context.Context, userID, fingerprint, channel string) (*domain.Interaction, error) {
	in := domain.NewInteraction(domain.InteractionShare, fingerprint, userID, s.now())
	in.ShareChannel = &channel
	return s.queue(ctx, in)
}

func (s *Interactions) PollVote(ctx context.Context, userID, fingerprint, pollID, option string) (*domain.Interaction, error) {
	in := domain.NewInteraction(domain.InteractionPollVote, fingerprint, userID, s.now())
	in.PollID = &pollID
	in.PollOption = &option
	return s.queue(ctx, in)
}

func (s *Interactions) queue(ctx context.Context, in *domain.Interaction) (*domain.Interaction, error) {
	if err := s.local.QueueInteraction(ctx, in); err != nil {
		return nil, err
	}
	s.logger.Debug("interaction queued", "id", in.ID, "type", in.Type)
	return in, nil
}
