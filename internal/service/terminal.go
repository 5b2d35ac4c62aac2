package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/stpnv0/EventGate/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type TerminalService struct {
	terminals ports.TerminalRepo
	events    ports.EventRepo
	logger    logger.Logger
}

func NewTerminalService(
	terminals ports.TerminalRepo,
	events ports.EventRepo,
	logger logger.Logger,
) *TerminalService {
	return &TerminalService{
		terminals: terminals,
		events:    events,
		logger:    logger,
	}
}

// Create provisions an active terminal for the event with a freshly
// generated access code.
func (s *TerminalService) Create(ctx context.Context, eventCode, name string) (*domain.Terminal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	event, err := s.events.GetByCode(ctx, eventCode)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	terminal := &domain.Terminal{
		EventID:  event.ID,
		Name:     name,
		IsActive: true,
	}
	err = insertWithFreshCode(
		func() (string, error) { return domain.GenerateTerminalCode(name) },
		func(code string) error {
			terminal.Code = code
			return s.terminals.Create(ctx, terminal)
		},
		domain.ErrCodeConflict,
	)
	if err != nil {
		return nil, fmt.Errorf("create terminal: %w", err)
	}

	s.logger.Info("terminal created",
		logger.Int64("terminal_id", terminal.ID),
		logger.String("event_code", event.EventCode),
	)

	return terminal, nil
}

func (s *TerminalService) ListByEvent(ctx context.Context, eventCode string) ([]*domain.Terminal, error) {
	event, err := s.events.GetByCode(ctx, eventCode)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	return s.terminals.ListByEvent(ctx, event.ID)
}

// Update applies a partial change. Fields left nil are untouched.
func (s *TerminalService) Update(ctx context.Context, id int64, patch domain.TerminalPatch) (*domain.Terminal, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
		}
		patch.Name = &name
	}

	terminal, err := s.terminals.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update terminal: %w", err)
	}

	return terminal, nil
}

// Archive soft-deletes the terminal. It is irreversible and idempotent.
func (s *TerminalService) Archive(ctx context.Context, id int64) (*domain.Terminal, error) {
	terminal, err := s.terminals.Archive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("archive terminal: %w", err)
	}

	s.logger.Info("terminal archived",
		logger.Int64("terminal_id", terminal.ID),
		logger.Int64("event_id", terminal.EventID),
	)

	return terminal, nil
}
