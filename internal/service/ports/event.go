package ports

import (
	"context"

	"github.com/stpnv0/EventGate/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByCode(ctx context.Context, code string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	GetStats(ctx context.Context, eventID int64) (*domain.EventStats, error)
}

type TableRepo interface {
	Create(ctx context.Context, t *domain.Table) error
	ListByEvent(ctx context.Context, eventID int64) ([]*domain.Table, error)
}

type InvitationRepo interface {
	Create(ctx context.Context, inv *domain.Invitation) error
	ListByEvent(ctx context.Context, eventID int64) ([]domain.Invitation, error)
}

type AssignmentRepo interface {
	Create(ctx context.Context, a *domain.Assignment) error
	ListByEvent(ctx context.Context, eventID int64) ([]domain.Assignment, error)
	ListOrganizers(ctx context.Context, eventID int64) ([]*domain.User, error)
}
