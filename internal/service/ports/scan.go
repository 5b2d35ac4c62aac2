package ports

import (
	"context"
	"time"

	"github.com/stpnv0/EventGate/internal/domain"
)

type ScanRepo interface {
	Record(ctx context.Context, access *domain.TerminalAccess, guestCode string) (*domain.ScanLog, error)
	History(ctx context.Context, eventCode string, limit int) ([]domain.ScanLog, error)
}

type SystemRepo interface {
	Stats(ctx context.Context, scansSince time.Time) (*domain.SystemStats, error)
}
