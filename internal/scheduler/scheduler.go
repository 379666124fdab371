package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Poller runs one poll cycle across every enabled subscription.
type Poller interface {
	PollAll(ctx context.Context) error
}

type Scheduler struct {
	poller   Poller
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(poller Poller, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		poller:   poller,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runCycle(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context) {
	if err := s.poller.PollAll(ctx); err != nil && err != context.Canceled {
		s.logger.Error("poll cycle failed", "error", err)
	}
}
