package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/stpnv0/EventGate/internal/service/ports"
)

type AssignmentService struct {
	repo      ports.AssignmentRepo
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
}

func NewAssignmentService(repo ports.AssignmentRepo, eventRepo ports.EventRepo, userRepo ports.UserRepo) *AssignmentService {
	return &AssignmentService{
		repo:      repo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
	}
}

// Assign links a staff user to an event with the given role.
func (s *AssignmentService) Assign(ctx context.Context, eventCode, userID string, role domain.Role) (*domain.Assignment, error) {
	if role == "" {
		role = domain.RoleStaff
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	event, err := s.eventRepo.GetByCode(ctx, eventCode)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	a := &domain.Assignment{
		EventID:  event.ID,
		UserID:   user.ID,
		Username: user.Username,
		Role:     role,
	}
	if err = s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}

	return a, nil
}
