package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/stpnv0/EventGate/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type systemMocks struct {
	system      *mocks.MockSystemRepo
	terminals   *mocks.MockTerminalRepo
	assignments *mocks.MockAssignmentRepo
	notifier    *mocks.MockOrganizerNotifier
}

func newSystemService(t *testing.T, now time.Time) (*SystemService, systemMocks) {
	t.Helper()
	m := systemMocks{
		system:      mocks.NewMockSystemRepo(t),
		terminals:   mocks.NewMockTerminalRepo(t),
		assignments: mocks.NewMockAssignmentRepo(t),
		notifier:    mocks.NewMockOrganizerNotifier(t),
	}
	svc := NewSystemService(m.system, m.terminals, m.assignments, m.notifier, newTestLogger(t), 6*time.Hour)
	svc.now = func() time.Time { return now }
	return svc, m
}

func TestSystemService_RunChecks_NothingToDeactivate(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	svc, m := newSystemService(t, now)

	m.terminals.EXPECT().DeactivateForEndedEvents(mock.Anything, now.Add(-6*time.Hour)).Return(nil, nil)
	m.system.EXPECT().Stats(mock.Anything, now.Add(-24*time.Hour)).Return(&domain.SystemStats{Events: 4, ActiveTerminals: 2}, nil)

	stats, err := svc.RunChecks(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, stats.Events)
	assert.Equal(t, 0, stats.DeactivatedTerminals)
	assert.Equal(t, now, stats.CheckedAt)
}

func TestSystemService_RunChecks_NotifiesOrganizers(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	svc, m := newSystemService(t, now)

	deactivated := []domain.DeactivatedTerminal{
		{TerminalID: 1, TerminalName: "Gate 1", EventID: 3, EventName: "Gala"},
		{TerminalID: 2, TerminalName: "Gate 2", EventID: 3, EventName: "Gala"},
	}
	chatID := int64(42)
	organizer := &domain.User{ID: "u1", Username: "alice", TelegramChatID: &chatID}

	done := make(chan struct{})
	m.terminals.EXPECT().DeactivateForEndedEvents(mock.Anything, mock.Anything).Return(deactivated, nil)
	m.system.EXPECT().Stats(mock.Anything, mock.Anything).Return(&domain.SystemStats{}, nil)
	m.assignments.EXPECT().ListOrganizers(mock.Anything, int64(3)).Return([]*domain.User{organizer}, nil)
	m.notifier.EXPECT().NotifyTerminalsDeactivated(mock.Anything, organizer, "Gala", deactivated).
		Run(func(context.Context, *domain.User, string, []domain.DeactivatedTerminal) { close(done) }).
		Return()

	stats, err := svc.RunChecks(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, stats.DeactivatedTerminals)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("organizer was not notified")
	}
}

func TestSystemService_RunChecks_SkipsOrganizersWithoutChat(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	svc, m := newSystemService(t, now)

	deactivated := []domain.DeactivatedTerminal{
		{TerminalID: 1, TerminalName: "Gate 1", EventID: 3, EventName: "Gala"},
	}
	zero := int64(0)
	chatID := int64(42)
	noChat := &domain.User{ID: "u1", Username: "door-staff"}
	zeroChat := &domain.User{ID: "u2", Username: "legacy", TelegramChatID: &zero}
	reachable := &domain.User{ID: "u3", Username: "alice", TelegramChatID: &chatID}

	done := make(chan struct{})
	m.terminals.EXPECT().DeactivateForEndedEvents(mock.Anything, mock.Anything).Return(deactivated, nil)
	m.system.EXPECT().Stats(mock.Anything, mock.Anything).Return(&domain.SystemStats{}, nil)
	m.assignments.EXPECT().ListOrganizers(mock.Anything, int64(3)).
		Return([]*domain.User{noChat, zeroChat, reachable}, nil)
	m.notifier.EXPECT().NotifyTerminalsDeactivated(mock.Anything, reachable, "Gala", deactivated).
		Run(func(context.Context, *domain.User, string, []domain.DeactivatedTerminal) { close(done) }).
		Return().Once()

	_, err := svc.RunChecks(context.Background())
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reachable organizer was not notified")
	}
}

func TestSystemService_RunChecks_DeactivateError(t *testing.T) {
	svc, m := newSystemService(t, time.Now())

	m.terminals.EXPECT().DeactivateForEndedEvents(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.RunChecks(context.Background())

	require.Error(t, err)
}

func TestSystemService_RunChecks_StatsError(t *testing.T) {
	svc, m := newSystemService(t, time.Now())

	m.terminals.EXPECT().DeactivateForEndedEvents(mock.Anything, mock.Anything).Return(nil, nil)
	m.system.EXPECT().Stats(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.RunChecks(context.Background())

	require.Error(t, err)
}
