package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/stpnv0/EventGate/internal/service/ports"
)

const maxEventCodeLen = 32

type EventService struct {
	repo           ports.EventRepo
	tableRepo      ports.TableRepo
	invitationRepo ports.InvitationRepo
	assignmentRepo ports.AssignmentRepo
}

func NewEventService(
	repo ports.EventRepo,
	tableRepo ports.TableRepo,
	invitationRepo ports.InvitationRepo,
	assignmentRepo ports.AssignmentRepo,
) *EventService {
	return &EventService{
		repo:           repo,
		tableRepo:      tableRepo,
		invitationRepo: invitationRepo,
		assignmentRepo: assignmentRepo,
	}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.StartsAt.IsZero() {
		return nil, fmt.Errorf("%w: startsAt is required", domain.ErrValidation)
	}
	if input.EndsAt != nil && input.EndsAt.Before(input.StartsAt) {
		return nil, fmt.Errorf("%w: endsAt must not be before startsAt", domain.ErrValidation)
	}

	event := &domain.Event{
		Name:        name,
		Description: input.Description,
		Venue:       input.Venue,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
	}

	code := strings.ToUpper(strings.TrimSpace(input.EventCode))
	if code != "" {
		if len(code) > maxEventCodeLen {
			return nil, fmt.Errorf("%w: eventCode is too long", domain.ErrValidation)
		}
		event.EventCode = code
		if err := s.repo.Create(ctx, event); err != nil {
			return nil, fmt.Errorf("create event: %w", err)
		}
		return event, nil
	}

	err := insertWithFreshCode(
		domain.GenerateEventCode,
		func(code string) error {
			event.EventCode = code
			return s.repo.Create(ctx, event)
		},
		domain.ErrEventCodeTaken,
	)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetByCode(ctx context.Context, code string) (*domain.Event, error) {
	return s.repo.GetByCode(ctx, code)
}

// GetAggregate assembles the dashboard view of one event.
func (s *EventService) GetAggregate(ctx context.Context, code string) (*domain.EventAggregate, error) {
	event, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	tables, err := s.tableRepo.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	invitations, err := s.invitationRepo.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}

	stats, err := s.repo.GetStats(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	assignments, err := s.assignmentRepo.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}

	agg := &domain.EventAggregate{
		Event:       *event,
		Tables:      make([]domain.Table, len(tables)),
		Invitations: invitations,
		Stats:       *stats,
		Assignments: assignments,
	}
	for i, t := range tables {
		agg.Tables[i] = *t
	}

	return agg, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}
