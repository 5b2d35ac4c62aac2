package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/stpnv0/EventGate/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ScanService struct {
	access *AccessService
	scans  ports.ScanRepo
	logger logger.Logger
}

func NewScanService(access *AccessService, scans ports.ScanRepo, logger logger.Logger) *ScanService {
	return &ScanService{
		access: access,
		scans:  scans,
		logger: logger,
	}
}

// Record validates the terminal and appends a scan log for the guest code.
// A denied terminal records nothing.
func (s *ScanService) Record(ctx context.Context, input domain.ScanInput) (*domain.ScanLog, error) {
	guestCode := strings.TrimSpace(input.GuestCode)
	if guestCode == "" {
		return nil, fmt.Errorf("%w: guest code is required", domain.ErrValidation)
	}

	access, err := s.access.authorize(ctx, input.EventCode, input.TerminalCode)
	if err != nil {
		return nil, err
	}

	scan, err := s.scans.Record(ctx, access, guestCode)
	if err != nil {
		return nil, fmt.Errorf("record scan: %w", err)
	}

	s.logger.Info("scan recorded",
		logger.String("scan_id", scan.ID),
		logger.String("event_code", scan.EventCode),
		logger.Int64("terminal_id", scan.TerminalID),
		logger.String("result", string(scan.Result)),
	)

	return scan, nil
}

// History returns at most domain.HistoryLimit scans, newest first.
func (s *ScanService) History(ctx context.Context, eventCode string) ([]domain.ScanLog, error) {
	logs, err := s.scans.History(ctx, eventCode, domain.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}

	return logs, nil
}
