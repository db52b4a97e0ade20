package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type eventSweeper interface {
	SweepEnded(ctx context.Context) ([]int64, error)
}

// Scheduler periodically removes events that ended past the retention
// window.
type Scheduler struct {
	eventService eventSweeper
	interval     time.Duration
	logger       logger.Logger
}

func New(
	eventService eventSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		eventService: eventService,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	swept, err := s.eventService.SweepEnded(ctx)
	if err != nil {
		s.logger.Error("failed to sweep ended events",
			logger.String("error", err.Error()),
		)
		return
	}

	if len(swept) > 0 {
		s.logger.Info("ended events removed",
			logger.Int("count", len(swept)),
		)
	}
}
