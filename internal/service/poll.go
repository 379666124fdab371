package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"media_archive/internal/config"
	"media_archive/internal/domain"
)

// PollService implements the subscription API consumed by the scheduler:
// it polls enabled subscriptions for new remote posts, appends them to the
// subscription's feed and advances the persisted cursor.
type PollService struct {
	sources       SourceStore
	subscriptions SubscriptionStore
	ingestor      Ingestor
	fetcher       Fetcher
	logger        *slog.Logger
	config        config.PollConfig
}

func NewPollService(
	sources SourceStore,
	subscriptions SubscriptionStore,
	ingestor Ingestor,
	fetcher Fetcher,
	logger *slog.Logger,
	cfg config.PollConfig,
) *PollService {
	return &PollService{
		sources:       sources,
		subscriptions: subscriptions,
		ingestor:      ingestor,
		fetcher:       fetcher,
		logger:        logger,
		config:        cfg,
	}
}

// ListEnabledSubscriptions returns every subscription the scheduler should
// poll this cycle.
func (s *PollService) ListEnabledSubscriptions(ctx context.Context) ([]domain.Subscription, error) {
	subs, err := s.subscriptions.ListEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enabled subscriptions: %w", err)
	}
	return subs, nil
}

// BeginPoll returns the opaque cursor state to resume from. The blob's
// internal structure belongs to the source integration, not to this core.
func (s *PollService) BeginPoll(sub *domain.Subscription) *string {
	return sub.State
}

// CommitPoll persists the new cursor state and the feed membership of the
// newly seen posts. The cursor write is a single statement, so a cancelled
// poll leaves the last fully-committed cursor intact.
func (s *PollService) CommitPoll(ctx context.Context, sub *domain.Subscription, state *string, newlySeen []int64) error {
	if err := s.subscriptions.AppendToFeed(ctx, sub.ID, newlySeen); err != nil {
		return fmt.Errorf("append to feed: %w", err)
	}
	if err := s.subscriptions.UpdateState(ctx, sub.ID, state); err != nil {
		return fmt.Errorf("update subscription state: %w", err)
	}
	return nil
}

// Poll runs one cycle for a subscription: fetch items beyond the cursor,
// ingest each in its own transaction, append successes to the feed and
// advance the cursor through the contiguous successful prefix. A failing
// item is skipped and retried next poll; items after it still reach the
// feed but do not move the cursor past the failure. State is persisted
// every cycle, new posts or not.
func (s *PollService) Poll(ctx context.Context, sub *domain.Subscription) (*domain.PollStats, error) {
	startTime := time.Now()
	logger := s.logger.With("subscription", sub.Name, "subscription_id", sub.ID)

	source, err := s.sources.GetByID(ctx, sub.SourceID)
	if err != nil {
		return nil, fmt.Errorf("load source: %w", err)
	}

	cursor := s.BeginPoll(sub)

	items, err := s.fetcher.FetchItems(ctx, sub, cursor, s.config.MaxItemsPerPoll)
	if err != nil {
		return nil, fmt.Errorf("fetch items: %w", err)
	}

	logger.Info("fetched items", "count", len(items))

	stats := &domain.PollStats{
		SubscriptionID: sub.ID,
		Fetched:        len(items),
		FirstFailed:    -1,
	}

	var newlySeen []int64
	for i := range items {
		item := &items[i]

		post, isNew, err := s.ingestor.IngestRemotePost(ctx, source, *item)
		if err != nil {
			logger.Warn("item ingest failed, will retry next poll",
				"original_id", item.OriginalID,
				"error", err,
			)
			stats.Errors++
			if stats.FirstFailed < 0 {
				stats.FirstFailed = i
			}
			continue
		}

		newlySeen = append(newlySeen, post.ID)
		if isNew {
			stats.New++
		} else {
			stats.Updated++
		}

		if stats.FirstFailed < 0 && item.Cursor != nil {
			cursor = item.Cursor
		}
	}

	if err := s.CommitPoll(ctx, sub, cursor, newlySeen); err != nil {
		return stats, err
	}

	stats.Duration = time.Since(startTime)

	logger.Info("poll completed",
		"new", stats.New,
		"updated", stats.Updated,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}

// PollAll runs one cycle for every enabled subscription. Subscriptions are
// independent: one failing poll never blocks the others.
func (s *PollService) PollAll(ctx context.Context) error {
	subs, err := s.ListEnabledSubscriptions(ctx)
	if err != nil {
		return err
	}

	for i := range subs {
		sub := &subs[i]

		pollCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
		_, err := s.Poll(pollCtx, sub)
		cancel()

		if err != nil {
			s.logger.Error("poll failed",
				"subscription", sub.Name,
				"subscription_id", sub.ID,
				"error", err,
			)
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	return nil
}
