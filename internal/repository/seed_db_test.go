package repository_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/stpnv0/EventGate/internal/repository"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

func uniqueSuffix(n int) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
}

func seedEvent(t *testing.T, db *dbpg.DB, endsAt *time.Time) *domain.Event {
	t.Helper()
	code := strings.ToUpper(uniqueSuffix(8))
	e := &domain.Event{
		EventCode: code,
		Name:      "Event " + code,
		StartsAt:  time.Now().Add(-48 * time.Hour).UTC(),
		EndsAt:    endsAt,
	}
	require.NoError(t, repository.NewEventRepo(db).Create(context.Background(), e))
	return e
}

func seedTerminal(t *testing.T, db *dbpg.DB, eventID int64, name string) *domain.Terminal {
	t.Helper()
	term := &domain.Terminal{
		EventID:  eventID,
		Name:     name,
		Code:     "gate_" + uniqueSuffix(5),
		IsActive: true,
	}
	require.NoError(t, repository.NewTerminalRepo(db).Create(context.Background(), term))
	return term
}

func seedInvitation(t *testing.T, db *dbpg.DB, eventID int64, guest string) *domain.Invitation {
	t.Helper()
	inv := &domain.Invitation{
		EventID:    eventID,
		Code:       strings.ToUpper(uniqueSuffix(10)),
		GuestName:  guest,
		GuestCount: 1,
	}
	require.NoError(t, repository.NewInvitationRepo(db).Create(context.Background(), inv))
	return inv
}

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }

func timeAgo(d time.Duration) *time.Time {
	v := time.Now().Add(-d).UTC()
	return &v
}
