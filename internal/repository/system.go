package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type SystemRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSystemRepo(db *dbpg.DB) *SystemRepository {
	return &SystemRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *SystemRepository) Stats(ctx context.Context, scansSince time.Time) (*domain.SystemStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM events),
			(SELECT COUNT(*) FROM terminals WHERE is_active AND deleted_at IS NULL),
			(SELECT COUNT(*) FROM terminals WHERE deleted_at IS NOT NULL),
			(SELECT COUNT(*) FROM scan_logs WHERE scanned_at >= $1)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, scansSince)
	if err != nil {
		return nil, fmt.Errorf("system stats: %w", err)
	}

	var s domain.SystemStats
	if err = row.Scan(&s.Events, &s.ActiveTerminals, &s.ArchivedTerminals, &s.ScansLast24h); err != nil {
		return nil, fmt.Errorf("scan system stats: %w", err)
	}

	return &s, nil
}
