package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type systemChecker interface {
	RunChecks(ctx context.Context) (*domain.SystemStats, error)
}

// Scheduler runs the system checks on a fixed interval, the same work the
// cron endpoint triggers on demand.
type Scheduler struct {
	checker  systemChecker
	interval time.Duration
	logger   logger.Logger
}

func New(
	checker systemChecker,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		checker:  checker,
		interval: interval,
		logger:   logger,
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
	stats, err := s.checker.RunChecks(ctx)
	if err != nil {
		s.logger.Error("system checks failed",
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Debug("system checks completed",
		logger.Int("events", stats.Events),
		logger.Int("active_terminals", stats.ActiveTerminals),
		logger.Int("scans_last_24h", stats.ScansLast24h),
		logger.Int("deactivated_terminals", stats.DeactivatedTerminals),
	)
}
