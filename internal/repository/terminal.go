package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TerminalRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTerminalRepo(db *dbpg.DB) *TerminalRepository {
	return &TerminalRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const terminalColumns = `id, event_id, name, code, is_active, deleted_at, created_at, updated_at`

// Create inserts a terminal. A duplicate code within the event yields
// domain.ErrCodeConflict so the caller can regenerate it.
func (r *TerminalRepository) Create(ctx context.Context, t *domain.Terminal) error {
	query := `INSERT INTO terminals (event_id, name, code, is_active)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at, updated_at`

	// no retry: a transient failure after commit would surface as a code conflict
	err := r.db.Master.QueryRowContext(ctx, query, t.EventID, t.Name, t.Code, t.IsActive).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeConflict
		}
		return fmt.Errorf("insert terminal: %w", err)
	}

	return nil
}

func (r *TerminalRepository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Terminal, error) {
	query := `SELECT ` + terminalColumns + `
			  FROM terminals
			  WHERE event_id = $1
			  ORDER BY deleted_at IS NOT NULL, name, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list terminals: %w", err)
	}
	defer rows.Close()

	var res []*domain.Terminal
	for rows.Next() {
		t, err := scanTerminal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan terminal: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

// FindActive evaluates every access predicate in a single statement. Any
// miss is reported as domain.ErrAccessDenied.
func (r *TerminalRepository) FindActive(ctx context.Context, eventCode, terminalCode string) (*domain.TerminalAccess, error) {
	query := `SELECT t.id, t.name, e.id, e.event_code, e.name
			  FROM terminals t
			  JOIN events e ON e.id = t.event_id
			  WHERE t.code = $1
			    AND e.event_code = $2
			    AND t.is_active
			    AND t.deleted_at IS NULL`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, terminalCode, eventCode)
	if err != nil {
		return nil, fmt.Errorf("find terminal: %w", err)
	}

	var a domain.TerminalAccess
	if err = row.Scan(&a.TerminalID, &a.TerminalName, &a.EventID, &a.EventCode, &a.EventName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccessDenied
		}
		return nil, fmt.Errorf("scan terminal access: %w", err)
	}

	return &a, nil
}

// Update applies a partial patch. Archived terminals stay inactive; the
// check lives in the same statement so concurrent writers cannot break it.
func (r *TerminalRepository) Update(ctx context.Context, id int64, patch domain.TerminalPatch) (*domain.Terminal, error) {
	query := `UPDATE terminals
			  SET name = COALESCE($2, name),
			      is_active = CASE WHEN deleted_at IS NULL THEN COALESCE($3, is_active) ELSE FALSE END,
			      updated_at = now()
			  WHERE id = $1
			  RETURNING ` + terminalColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, patch.Name, patch.IsActive)
	if err != nil {
		return nil, fmt.Errorf("update terminal: %w", err)
	}

	t, err := scanTerminal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTerminalNotFound
		}
		return nil, fmt.Errorf("scan terminal: %w", err)
	}

	return t, nil
}

// Archive is the combined soft-delete transition. deleted_at is only ever
// written once.
func (r *TerminalRepository) Archive(ctx context.Context, id int64) (*domain.Terminal, error) {
	query := `UPDATE terminals
			  SET is_active = FALSE,
			      updated_at = CASE WHEN deleted_at IS NULL THEN now() ELSE updated_at END,
			      deleted_at = COALESCE(deleted_at, now())
			  WHERE id = $1
			  RETURNING ` + terminalColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("archive terminal: %w", err)
	}

	t, err := scanTerminal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTerminalNotFound
		}
		return nil, fmt.Errorf("scan terminal: %w", err)
	}

	return t, nil
}

// DeactivateForEndedEvents switches off live terminals of events that ended
// before endedBefore and returns exactly the rows it changed.
func (r *TerminalRepository) DeactivateForEndedEvents(ctx context.Context, endedBefore time.Time) ([]domain.DeactivatedTerminal, error) {
	query := `
		UPDATE terminals t
		SET is_active = FALSE, updated_at = now()
		FROM events e
		WHERE t.event_id = e.id
		  AND t.is_active
		  AND t.deleted_at IS NULL
		  AND e.ends_at IS NOT NULL
		  AND e.ends_at < $1
		RETURNING t.id, t.name, e.id, e.name`

	// no retry: a replay after commit would return no rows and lose the alert
	rows, err := r.db.Master.QueryContext(ctx, query, endedBefore)
	if err != nil {
		return nil, fmt.Errorf("deactivate terminals: %w", err)
	}
	defer rows.Close()

	var res []domain.DeactivatedTerminal
	for rows.Next() {
		var d domain.DeactivatedTerminal
		if err = rows.Scan(&d.TerminalID, &d.TerminalName, &d.EventID, &d.EventName); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, d)
	}

	return res, rows.Err()
}

func scanTerminal(row rowScanner) (*domain.Terminal, error) {
	var t domain.Terminal
	var deletedAt sql.NullTime
	if err := row.Scan(
		&t.ID, &t.EventID, &t.Name, &t.Code,
		&t.IsActive, &deletedAt, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	t.DeletedAt = timePtr(deletedAt)

	return &t, nil
}
