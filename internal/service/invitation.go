package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/stpnv0/EventGate/internal/service/ports"
)

type InvitationService struct {
	repo      ports.InvitationRepo
	eventRepo ports.EventRepo
}

func NewInvitationService(repo ports.InvitationRepo, eventRepo ports.EventRepo) *InvitationService {
	return &InvitationService{
		repo:      repo,
		eventRepo: eventRepo,
	}
}

// Create issues an invitation with a generated QR code value and seats the
// listed guests.
func (s *InvitationService) Create(ctx context.Context, eventCode string, input domain.CreateInvitationInput) (*domain.Invitation, error) {
	guestName := strings.TrimSpace(input.GuestName)
	if guestName == "" {
		return nil, fmt.Errorf("%w: guestName is required", domain.ErrValidation)
	}
	guestCount := input.GuestCount
	if guestCount == 0 {
		guestCount = 1
	}
	if guestCount < 0 {
		return nil, fmt.Errorf("%w: guestCount must be positive", domain.ErrValidation)
	}
	if len(input.Allocations) > guestCount {
		return nil, fmt.Errorf("%w: more allocations than guests", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByCode(ctx, eventCode)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	inv := &domain.Invitation{
		EventID:     event.ID,
		GuestName:   guestName,
		GuestCount:  guestCount,
		Allocations: make([]domain.Allocation, 0, len(input.Allocations)),
	}
	for _, a := range input.Allocations {
		name := strings.TrimSpace(a.GuestName)
		if name == "" {
			name = guestName
		}
		inv.Allocations = append(inv.Allocations, domain.Allocation{
			TableID:    a.TableID,
			GuestName:  name,
			SeatNumber: a.SeatNumber,
		})
	}

	err = insertWithFreshCode(
		domain.GenerateInvitationCode,
		func(code string) error {
			inv.Code = code
			return s.repo.Create(ctx, inv)
		},
		domain.ErrCodeConflict,
	)
	if err != nil {
		if errors.Is(err, domain.ErrTableNotFound) {
			return nil, fmt.Errorf("%w: allocation references a table outside this event", domain.ErrValidation)
		}
		return nil, fmt.Errorf("create invitation: %w", err)
	}

	return inv, nil
}
