package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ScanRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewScanRepo(db *dbpg.DB) *ScanRepository {
	return &ScanRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Record checks the guest in and appends the scan log in one transaction.
// Only the first accepted scan of an invitation sets checked_in_at.
func (r *ScanRepository) Record(ctx context.Context, access *domain.TerminalAccess, guestCode string) (*domain.ScanLog, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	log := &domain.ScanLog{
		ID:           uuid.New().String(),
		EventCode:    access.EventCode,
		TerminalID:   access.TerminalID,
		TerminalName: access.TerminalName,
		GuestCode:    guestCode,
		Result:       domain.ScanResultInvalid,
	}

	var invitationID int64
	lookupQuery := `SELECT id, guest_name FROM invitations
					WHERE event_id = $1 AND code = $2`
	err = tx.QueryRowContext(ctx, lookupQuery, access.EventID, guestCode).Scan(&invitationID, &log.GuestName)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("find invitation: %w", err)
	default:
		log.InvitationID = &invitationID

		checkInQuery := `UPDATE invitations
						 SET checked_in_at = now()
						 WHERE id = $1 AND checked_in_at IS NULL`
		res, err := tx.ExecContext(ctx, checkInQuery, invitationID)
		if err != nil {
			return nil, fmt.Errorf("check in: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("check in rows affected: %w", err)
		}

		log.Result = domain.ScanResultDuplicate
		if n == 1 {
			log.Result = domain.ScanResultAccepted
		}
	}

	insertQuery := `INSERT INTO scan_logs (id, event_code, terminal_id, invitation_id, guest_code, result, scanned_at)
					VALUES ($1, $2, $3, $4, $5, $6, clock_timestamp())
					RETURNING scanned_at`
	if err = tx.QueryRowContext(
		ctx, insertQuery,
		log.ID, log.EventCode, log.TerminalID, log.InvitationID, log.GuestCode, log.Result,
	).Scan(&log.ScannedAt); err != nil {
		return nil, fmt.Errorf("insert scan log: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit scan: %w", err)
	}

	return log, nil
}

// History returns the newest scans of an event first. Ordering is left to
// the database.
func (r *ScanRepository) History(ctx context.Context, eventCode string, limit int) ([]domain.ScanLog, error) {
	query := `SELECT s.id, s.event_code, s.terminal_id, t.name, s.invitation_id,
			         s.guest_code, COALESCE(i.guest_name, ''), s.result, s.scanned_at
			  FROM scan_logs s
			  JOIN terminals t ON t.id = s.terminal_id
			  LEFT JOIN invitations i ON i.id = s.invitation_id
			  WHERE s.event_code = $1
			  ORDER BY s.scanned_at DESC, s.id DESC
			  LIMIT $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventCode, limit)
	if err != nil {
		return nil, fmt.Errorf("scan history: %w", err)
	}
	defer rows.Close()

	res := make([]domain.ScanLog, 0, limit)
	for rows.Next() {
		var l domain.ScanLog
		var invitationID sql.NullInt64
		if err = rows.Scan(
			&l.ID, &l.EventCode, &l.TerminalID, &l.TerminalName, &invitationID,
			&l.GuestCode, &l.GuestName, &l.Result, &l.ScannedAt,
		); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		l.InvitationID = int64Ptr(invitationID)
		res = append(res, l)
	}

	return res, rows.Err()
}
