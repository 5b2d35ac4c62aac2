package ports

import (
	"context"

	"github.com/stpnv0/EventGate/internal/domain"
)

type OrganizerNotifier interface {
	NotifyTerminalsDeactivated(ctx context.Context, user *domain.User, eventName string, terminals []domain.DeactivatedTerminal)
}
