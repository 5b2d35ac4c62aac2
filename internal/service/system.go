package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/stpnv0/EventGate/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const scanStatsWindow = 24 * time.Hour

// SystemService runs the periodic system checks shared by the cron
// endpoint and the in-process scheduler.
type SystemService struct {
	systemRepo     ports.SystemRepo
	terminalRepo   ports.TerminalRepo
	assignmentRepo ports.AssignmentRepo
	notifier       ports.OrganizerNotifier
	logger         logger.Logger
	grace          time.Duration
	now            func() time.Time
}

func NewSystemService(
	systemRepo ports.SystemRepo,
	terminalRepo ports.TerminalRepo,
	assignmentRepo ports.AssignmentRepo,
	notifier ports.OrganizerNotifier,
	logger logger.Logger,
	grace time.Duration,
) *SystemService {
	return &SystemService{
		systemRepo:     systemRepo,
		terminalRepo:   terminalRepo,
		assignmentRepo: assignmentRepo,
		notifier:       notifier,
		logger:         logger,
		grace:          grace,
		now:            time.Now,
	}
}

// RunChecks switches off terminals of events that ended more than the grace
// period ago and reports system-wide counters. Terminals are deactivated,
// never archived.
func (s *SystemService) RunChecks(ctx context.Context) (*domain.SystemStats, error) {
	now := s.now().UTC()

	deactivated, err := s.terminalRepo.DeactivateForEndedEvents(ctx, now.Add(-s.grace))
	if err != nil {
		return nil, fmt.Errorf("deactivate terminals: %w", err)
	}

	stats, err := s.systemRepo.Stats(ctx, now.Add(-scanStatsWindow))
	if err != nil {
		return nil, fmt.Errorf("collect stats: %w", err)
	}
	stats.DeactivatedTerminals = len(deactivated)
	stats.CheckedAt = now

	if len(deactivated) > 0 {
		s.logger.Info("terminals of finished events deactivated",
			logger.Int("count", len(deactivated)),
		)
		go s.notifyOrganizers(context.WithoutCancel(ctx), deactivated)
	}

	return stats, nil
}

func (s *SystemService) notifyOrganizers(ctx context.Context, deactivated []domain.DeactivatedTerminal) {
	byEvent := make(map[int64][]domain.DeactivatedTerminal)
	var order []int64
	for _, d := range deactivated {
		if _, ok := byEvent[d.EventID]; !ok {
			order = append(order, d.EventID)
		}
		byEvent[d.EventID] = append(byEvent[d.EventID], d)
	}

	for _, eventID := range order {
		terminals := byEvent[eventID]
		organizers, err := s.assignmentRepo.ListOrganizers(ctx, eventID)
		if err != nil {
			s.logger.Error("failed to list organizers for notification",
				logger.Int64("event_id", eventID),
				logger.String("error", err.Error()),
			)
			continue
		}

		for _, u := range organizers {
			if !u.Reachable() {
				s.logger.Debug("organizer has no telegram chat, alert skipped",
					logger.String("user_id", u.ID),
					logger.Int64("event_id", eventID),
				)
				continue
			}
			s.notifier.NotifyTerminalsDeactivated(ctx, u, terminals[0].EventName, terminals)
		}
	}
}
