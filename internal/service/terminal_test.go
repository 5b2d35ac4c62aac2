package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/stpnv0/EventGate/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTerminalService_Create_Success(t *testing.T) {
	terminals := mocks.NewMockTerminalRepo(t)
	events := mocks.NewMockEventRepo(t)
	svc := NewTerminalService(terminals, events, newTestLogger(t))

	events.EXPECT().GetByCode(mock.Anything, "EVT123").Return(&domain.Event{ID: 3, EventCode: "EVT123"}, nil)
	terminals.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Terminal")).
		Run(func(_ context.Context, term *domain.Terminal) { term.ID = 11 }).
		Return(nil)

	terminal, err := svc.Create(context.Background(), "EVT123", "  Main Gate ")

	require.NoError(t, err)
	assert.Equal(t, int64(11), terminal.ID)
	assert.Equal(t, int64(3), terminal.EventID)
	assert.Equal(t, "Main Gate", terminal.Name)
	assert.True(t, terminal.IsActive)
	assert.Regexp(t, regexp.MustCompile(`^main-gate_[a-z0-9]{5}$`), terminal.Code)
}

func TestTerminalService_Create_RetriesOnCodeConflict(t *testing.T) {
	terminals := mocks.NewMockTerminalRepo(t)
	events := mocks.NewMockEventRepo(t)
	svc := NewTerminalService(terminals, events, newTestLogger(t))

	events.EXPECT().GetByCode(mock.Anything, "EVT123").Return(&domain.Event{ID: 3}, nil)
	terminals.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrCodeConflict).Twice()
	terminals.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

	terminal, err := svc.Create(context.Background(), "EVT123", "Main Gate")

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^main-gate_[a-z0-9]{5}$`), terminal.Code)
}

func TestTerminalService_Create_GivesUpAfterMaxAttempts(t *testing.T) {
	terminals := mocks.NewMockTerminalRepo(t)
	events := mocks.NewMockEventRepo(t)
	svc := NewTerminalService(terminals, events, newTestLogger(t))

	events.EXPECT().GetByCode(mock.Anything, "EVT123").Return(&domain.Event{ID: 3}, nil)
	terminals.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrCodeConflict).Times(maxCodeAttempts)

	_, err := svc.Create(context.Background(), "EVT123", "Main Gate")

	assert.ErrorIs(t, err, domain.ErrCodeExhausted)
}

func TestTerminalService_Create_EmptyName(t *testing.T) {
	svc := NewTerminalService(nil, nil, newTestLogger(t))

	_, err := svc.Create(context.Background(), "EVT123", "   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTerminalService_Create_EventNotFound(t *testing.T) {
	events := mocks.NewMockEventRepo(t)
	svc := NewTerminalService(nil, events, newTestLogger(t))

	events.EXPECT().GetByCode(mock.Anything, "NOPE").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Create(context.Background(), "NOPE", "Gate")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestTerminalService_Update_PassesPatchThrough(t *testing.T) {
	terminals := mocks.NewMockTerminalRepo(t)
	svc := NewTerminalService(terminals, nil, newTestLogger(t))

	inactive := false
	updated := &domain.Terminal{ID: 5, Name: "Gate 1", IsActive: false}
	terminals.EXPECT().Update(mock.Anything, int64(5), domain.TerminalPatch{IsActive: &inactive}).Return(updated, nil)

	got, err := svc.Update(context.Background(), 5, domain.TerminalPatch{IsActive: &inactive})

	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestTerminalService_Update_TrimsName(t *testing.T) {
	terminals := mocks.NewMockTerminalRepo(t)
	svc := NewTerminalService(terminals, nil, newTestLogger(t))

	terminals.EXPECT().Update(mock.Anything, int64(5), mock.MatchedBy(func(p domain.TerminalPatch) bool {
		return p.Name != nil && *p.Name == "VIP Door" && p.IsActive == nil
	})).Return(&domain.Terminal{ID: 5, Name: "VIP Door"}, nil)

	name := "  VIP Door  "
	got, err := svc.Update(context.Background(), 5, domain.TerminalPatch{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "VIP Door", got.Name)
}

func TestTerminalService_Update_EmptyName(t *testing.T) {
	svc := NewTerminalService(nil, nil, newTestLogger(t))

	name := " "
	_, err := svc.Update(context.Background(), 5, domain.TerminalPatch{Name: &name})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTerminalService_Update_NotFound(t *testing.T) {
	terminals := mocks.NewMockTerminalRepo(t)
	svc := NewTerminalService(terminals, nil, newTestLogger(t))

	terminals.EXPECT().Update(mock.Anything, int64(404), mock.Anything).Return(nil, domain.ErrTerminalNotFound)

	_, err := svc.Update(context.Background(), 404, domain.TerminalPatch{})

	assert.ErrorIs(t, err, domain.ErrTerminalNotFound)
}

func TestTerminalService_Archive_Twice(t *testing.T) {
	terminals := mocks.NewMockTerminalRepo(t)
	svc := NewTerminalService(terminals, nil, newTestLogger(t))

	deletedAt := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	archived := &domain.Terminal{ID: 5, EventID: 3, IsActive: false, DeletedAt: &deletedAt}
	terminals.EXPECT().Archive(mock.Anything, int64(5)).Return(archived, nil).Twice()

	first, err := svc.Archive(context.Background(), 5)
	require.NoError(t, err)
	second, err := svc.Archive(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, domain.TerminalStateArchived, second.State())
}

func TestTerminalService_Archive_StoreError(t *testing.T) {
	terminals := mocks.NewMockTerminalRepo(t)
	svc := NewTerminalService(terminals, nil, newTestLogger(t))

	terminals.EXPECT().Archive(mock.Anything, int64(5)).Return(nil, errors.New("db down"))

	_, err := svc.Archive(context.Background(), 5)

	require.Error(t, err)
}

func TestTerminalService_ListByEvent(t *testing.T) {
	terminals := mocks.NewMockTerminalRepo(t)
	events := mocks.NewMockEventRepo(t)
	svc := NewTerminalService(terminals, events, newTestLogger(t))

	events.EXPECT().GetByCode(mock.Anything, "EVT123").Return(&domain.Event{ID: 3}, nil)
	terminals.EXPECT().ListByEvent(mock.Anything, int64(3)).Return([]*domain.Terminal{{ID: 1}, {ID: 2}}, nil)

	list, err := svc.ListByEvent(context.Background(), "EVT123")

	require.NoError(t, err)
	assert.Len(t, list, 2)
}
