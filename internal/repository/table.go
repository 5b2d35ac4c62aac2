package repository

import (
	"context"
	"fmt"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TableRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTableRepo(db *dbpg.DB) *TableRepository {
	return &TableRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *TableRepository) Create(ctx context.Context, t *domain.Table) error {
	query := `INSERT INTO event_tables (event_id, name, capacity)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, t.EventID, t.Name, t.Capacity)
	if err == nil {
		err = row.Scan(&t.ID, &t.CreatedAt)
	}
	if err != nil {
		return fmt.Errorf("insert table: %w", err)
	}

	return nil
}

func (r *TableRepository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Table, error) {
	query := `SELECT id, event_id, name, capacity, created_at
			  FROM event_tables
			  WHERE event_id = $1
			  ORDER BY name, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var res []*domain.Table
	for rows.Next() {
		var t domain.Table
		if err = rows.Scan(&t.ID, &t.EventID, &t.Name, &t.Capacity, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}
