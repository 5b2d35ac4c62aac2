package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/stpnv0/EventGate/internal/service/ports"
)

// AccessService is the gate every scanner passes before it may record scans.
// It never writes anything, so clients can re-validate as often as they like.
type AccessService struct {
	terminals ports.TerminalRepo
}

func NewAccessService(terminals ports.TerminalRepo) *AccessService {
	return &AccessService{terminals: terminals}
}

// Validate returns the display names for a terminal that is active, not
// archived, carries terminalCode and belongs to the event eventCode.
// Every failed predicate yields domain.ErrAccessDenied.
func (s *AccessService) Validate(ctx context.Context, eventCode, terminalCode string) (*domain.AccessGrant, error) {
	access, err := s.authorize(ctx, eventCode, terminalCode)
	if err != nil {
		return nil, err
	}

	return access.Grant(), nil
}

func (s *AccessService) authorize(ctx context.Context, eventCode, terminalCode string) (*domain.TerminalAccess, error) {
	eventCode = strings.TrimSpace(eventCode)
	terminalCode = strings.TrimSpace(terminalCode)
	if eventCode == "" || terminalCode == "" {
		return nil, domain.ErrAccessDenied
	}

	access, err := s.terminals.FindActive(ctx, eventCode, terminalCode)
	if err != nil {
		if errors.Is(err, domain.ErrAccessDenied) {
			return nil, domain.ErrAccessDenied
		}
		return nil, fmt.Errorf("validate access: %w", err)
	}

	return access, nil
}
