package repository

import (
	"context"
	"fmt"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type AssignmentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAssignmentRepo(db *dbpg.DB) *AssignmentRepository {
	return &AssignmentRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *AssignmentRepository) Create(ctx context.Context, a *domain.Assignment) error {
	query := `INSERT INTO assignments (event_id, user_id, role)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at`

	err := r.db.Master.QueryRowContext(ctx, query, a.EventID, a.UserID, a.Role).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyAssigned
		}
		return fmt.Errorf("insert assignment: %w", err)
	}

	return nil
}

func (r *AssignmentRepository) ListByEvent(ctx context.Context, eventID int64) ([]domain.Assignment, error) {
	query := `SELECT a.id, a.event_id, a.user_id, u.username, a.role, a.created_at
			  FROM assignments a
			  JOIN users u ON u.id = a.user_id
			  WHERE a.event_id = $1
			  ORDER BY a.role, u.username`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	res := make([]domain.Assignment, 0)
	for rows.Next() {
		var a domain.Assignment
		if err = rows.Scan(&a.ID, &a.EventID, &a.UserID, &a.Username, &a.Role, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		res = append(res, a)
	}

	return res, rows.Err()
}

func (r *AssignmentRepository) ListOrganizers(ctx context.Context, eventID int64) ([]*domain.User, error) {
	query := `SELECT u.id, u.username, u.telegram_chat_id, u.created_at
			  FROM assignments a
			  JOIN users u ON u.id = a.user_id
			  WHERE a.event_id = $1 AND a.role = $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, domain.RoleOrganizer)
	if err != nil {
		return nil, fmt.Errorf("list organizers: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		var u domain.User
		if err = rows.Scan(&u.ID, &u.Username, &u.TelegramChatID, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan organizer: %w", err)
		}
		res = append(res, &u)
	}

	return res, rows.Err()
}
