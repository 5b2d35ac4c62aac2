package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type InvitationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewInvitationRepo(db *dbpg.DB) *InvitationRepository {
	return &InvitationRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Create stores the invitation and its allocations atomically. Every
// allocated table must belong to the invitation's event.
func (r *InvitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if len(inv.Allocations) > 0 {
		tableIDs := make([]int64, 0, len(inv.Allocations))
		for _, a := range inv.Allocations {
			tableIDs = append(tableIDs, a.TableID)
		}

		var foreign int
		checkQuery := `SELECT COUNT(*) FROM unnest($2::bigint[]) AS ids(id)
					   WHERE NOT EXISTS (
					       SELECT 1 FROM event_tables WHERE id = ids.id AND event_id = $1
					   )`
		if err = tx.QueryRowContext(ctx, checkQuery, inv.EventID, pq.Array(tableIDs)).Scan(&foreign); err != nil {
			return fmt.Errorf("check tables: %w", err)
		}
		if foreign > 0 {
			return domain.ErrTableNotFound
		}
	}

	query := `INSERT INTO invitations (event_id, code, guest_name, guest_count)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at`
	if err = tx.QueryRowContext(ctx, query, inv.EventID, inv.Code, inv.GuestName, inv.GuestCount).
		Scan(&inv.ID, &inv.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeConflict
		}
		return fmt.Errorf("insert invitation: %w", err)
	}

	allocQuery := `INSERT INTO allocations (invitation_id, table_id, guest_name, seat_number)
				   VALUES ($1, $2, $3, $4)
				   RETURNING id`
	for i := range inv.Allocations {
		a := &inv.Allocations[i]
		a.InvitationID = inv.ID
		if err = tx.QueryRowContext(ctx, allocQuery, a.InvitationID, a.TableID, a.GuestName, a.SeatNumber).
			Scan(&a.ID); err != nil {
			return fmt.Errorf("insert allocation: %w", err)
		}
	}

	return tx.Commit()
}

func (r *InvitationRepository) ListByEvent(ctx context.Context, eventID int64) ([]domain.Invitation, error) {
	query := `SELECT i.id, i.event_id, i.code, i.guest_name, i.guest_count, i.checked_in_at, i.created_at,
			         a.id, a.table_id, a.guest_name, a.seat_number
			  FROM invitations i
			  LEFT JOIN allocations a ON a.invitation_id = i.id
			  WHERE i.event_id = $1
			  ORDER BY i.id, a.id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	defer rows.Close()

	res := make([]domain.Invitation, 0)
	for rows.Next() {
		var inv domain.Invitation
		var checkedInAt sql.NullTime
		var allocID, tableID, seat sql.NullInt64
		var allocGuest sql.NullString
		if err = rows.Scan(
			&inv.ID, &inv.EventID, &inv.Code, &inv.GuestName, &inv.GuestCount, &checkedInAt, &inv.CreatedAt,
			&allocID, &tableID, &allocGuest, &seat,
		); err != nil {
			return nil, fmt.Errorf("scan invitation: %w", err)
		}
		inv.CheckedInAt = timePtr(checkedInAt)

		if n := len(res); n == 0 || res[n-1].ID != inv.ID {
			inv.Allocations = []domain.Allocation{}
			res = append(res, inv)
		}
		if allocID.Valid {
			a := domain.Allocation{
				ID:           allocID.Int64,
				InvitationID: inv.ID,
				TableID:      tableID.Int64,
				GuestName:    allocGuest.String,
			}
			if seat.Valid {
				s := int(seat.Int64)
				a.SeatNumber = &s
			}
			last := &res[len(res)-1]
			last.Allocations = append(last.Allocations, a)
		}
	}

	return res, rows.Err()
}
