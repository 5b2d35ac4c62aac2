package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const eventColumns = `id, event_code, name, description, venue, starts_at, ends_at, created_at, updated_at`

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (event_code, name, description, venue, starts_at, ends_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		e.EventCode, e.Name, e.Description, e.Venue, e.StartsAt, e.EndsAt,
	)
	if err == nil {
		err = row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEventCodeTaken
		}
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByCode(ctx context.Context, code string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE event_code = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, code)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  ORDER BY starts_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) GetStats(ctx context.Context, eventID int64) (*domain.EventStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM event_tables WHERE event_id = $1),
			(SELECT COUNT(*) FROM invitations WHERE event_id = $1),
			(SELECT COALESCE(SUM(guest_count), 0) FROM invitations WHERE event_id = $1),
			(SELECT COUNT(*) FROM invitations WHERE event_id = $1 AND checked_in_at IS NOT NULL),
			(SELECT COUNT(*) FROM terminals WHERE event_id = $1 AND is_active AND deleted_at IS NULL),
			(SELECT COUNT(*) FROM scan_logs s JOIN events e ON e.event_code = s.event_code WHERE e.id = $1)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	var s domain.EventStats
	if err = row.Scan(
		&s.TotalTables, &s.TotalInvitations, &s.TotalGuests,
		&s.CheckedIn, &s.ActiveTerminals, &s.TotalScans,
	); err != nil {
		return nil, fmt.Errorf("scan stats: %w", err)
	}

	return &s, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	var endsAt sql.NullTime
	if err := row.Scan(
		&e.ID, &e.EventCode, &e.Name, &e.Description, &e.Venue,
		&e.StartsAt, &endsAt, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	e.EndsAt = timePtr(endsAt)

	return &e, nil
}
