package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/stpnv0/EventGate/internal/service/ports"
)

type TableService struct {
	repo      ports.TableRepo
	eventRepo ports.EventRepo
}

func NewTableService(repo ports.TableRepo, eventRepo ports.EventRepo) *TableService {
	return &TableService{
		repo:      repo,
		eventRepo: eventRepo,
	}
}

func (s *TableService) Create(ctx context.Context, eventCode string, input domain.CreateTableInput) (*domain.Table, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByCode(ctx, eventCode)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	table := &domain.Table{
		EventID:  event.ID,
		Name:     name,
		Capacity: input.Capacity,
	}
	if err = s.repo.Create(ctx, table); err != nil {
		return nil, fmt.Errorf("create table: %w", err)
	}

	return table, nil
}

// ListByEvent returns an empty list for an unknown event code.
func (s *TableService) ListByEvent(ctx context.Context, eventCode string) ([]*domain.Table, error) {
	event, err := s.eventRepo.GetByCode(ctx, eventCode)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return []*domain.Table{}, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	return s.repo.ListByEvent(ctx, event.ID)
}
