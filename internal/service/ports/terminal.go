package ports

import (
	"context"
	"time"

	"github.com/stpnv0/EventGate/internal/domain"
)

type TerminalRepo interface {
	Create(ctx context.Context, t *domain.Terminal) error
	ListByEvent(ctx context.Context, eventID int64) ([]*domain.Terminal, error)
	FindActive(ctx context.Context, eventCode, terminalCode string) (*domain.TerminalAccess, error)
	Update(ctx context.Context, id int64, patch domain.TerminalPatch) (*domain.Terminal, error)
	Archive(ctx context.Context, id int64) (*domain.Terminal, error)
	DeactivateForEndedEvents(ctx context.Context, endedBefore time.Time) ([]domain.DeactivatedTerminal, error)
}
