package handler

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/stpnv0/EventGate/internal/handler/dto"
	hmocks "github.com/stpnv0/EventGate/internal/handler/mocks"
	"github.com/stpnv0/EventGate/internal/realtime"
	"github.com/stpnv0/EventGate/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	events      *hmocks.MockEventSvc
	tables      *hmocks.MockTableSvc
	invitations *hmocks.MockInvitationSvc
	assignments *hmocks.MockAssignmentSvc
	terminals   *hmocks.MockTerminalSvc
	access      *hmocks.MockAccessSvc
	scans       *hmocks.MockScanSvc
	users       *hmocks.MockUserSvc
	system      *hmocks.MockSystemSvc
	hub         *realtime.Hub
	handler     *Handler
	router      http.Handler
}

func setupRouter(t *testing.T, cron CronAuth) *testEnv {
	t.Helper()
	env := &testEnv{
		events:      hmocks.NewMockEventSvc(t),
		tables:      hmocks.NewMockTableSvc(t),
		invitations: hmocks.NewMockInvitationSvc(t),
		assignments: hmocks.NewMockAssignmentSvc(t),
		terminals:   hmocks.NewMockTerminalSvc(t),
		access:      hmocks.NewMockAccessSvc(t),
		scans:       hmocks.NewMockScanSvc(t),
		users:       hmocks.NewMockUserSvc(t),
		system:      hmocks.NewMockSystemSvc(t),
		hub:         realtime.NewHub(4),
	}

	h := NewHandler(Services{
		Events:      env.events,
		Tables:      env.tables,
		Invitations: env.invitations,
		Assignments: env.assignments,
		Terminals:   env.terminals,
		Access:      env.access,
		Scans:       env.scans,
		Users:       env.users,
		System:      env.system,
	}, env.hub, cron)

	env.handler = h
	env.router = router.InitRouter("test", h, nil)
	return env
}

func doJSON(r http.Handler, method, path, body string, header ...string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	r.ServeHTTP(w, req)
	return w
}

// --- Access validation ---

func TestHandler_ValidateAccess_Success(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	env.access.EXPECT().Validate(mock.Anything, "EVT123", "gate1_ab12c").
		Return(&domain.AccessGrant{EventName: "Summer Gala", TerminalName: "Gate 1"}, nil)

	w := doJSON(env.router, http.MethodPost, "/api/events/validate-access",
		`{"eventCode":"EVT123","terminalCode":"gate1_ab12c"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"eventName":"Summer Gala","terminalName":"Gate 1"}`, w.Body.String())
}

func TestHandler_ValidateAccess_UniformDenial(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	env.access.EXPECT().Validate(mock.Anything, "OTHER1", "gate1_ab12c").Return(nil, domain.ErrAccessDenied)

	denied := doJSON(env.router, http.MethodPost, "/api/events/validate-access",
		`{"eventCode":"OTHER1","terminalCode":"gate1_ab12c"}`)
	malformed := doJSON(env.router, http.MethodPost, "/api/events/validate-access", `{not json`)

	for _, w := range []*httptest.ResponseRecorder{denied, malformed} {
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"invalid access"}`, w.Body.String())
	}
}

func TestHandler_ValidateAccess_StoreErrorIsGeneric(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	env.access.EXPECT().Validate(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("pq: connection refused"))

	w := doJSON(env.router, http.MethodPost, "/api/events/validate-access",
		`{"eventCode":"EVT123","terminalCode":"gate1_ab12c"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "pq")
}

// --- Scans ---

func TestHandler_RecordScan_Success(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	env.scans.EXPECT().Record(mock.Anything, domain.ScanInput{
		EventCode:    "EVT123",
		TerminalCode: "gate1_ab12c",
		GuestCode:    "INV0000001",
	}).Return(&domain.ScanLog{
		ID:           "s1",
		Result:       domain.ScanResultAccepted,
		GuestCode:    "INV0000001",
		GuestName:    "Ivan",
		TerminalName: "Gate 1",
		ScannedAt:    time.Now(),
	}, nil)

	w := doJSON(env.router, http.MethodPost, "/api/events/scan",
		`{"eventCode":"EVT123","terminalCode":"gate1_ab12c","guestCode":"INV0000001"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ScanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "accepted", resp.Result)
	assert.Equal(t, "Ivan", resp.GuestName)
}

func TestHandler_RecordScan_MissingGuestCode(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	w := doJSON(env.router, http.MethodPost, "/api/events/scan", `{"eventCode":"EVT123","terminalCode":"gate1_ab12c"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RecordScan_Denied(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	env.scans.EXPECT().Record(mock.Anything, mock.Anything).Return(nil, domain.ErrAccessDenied)

	w := doJSON(env.router, http.MethodPost, "/api/events/scan",
		`{"eventCode":"EVT123","terminalCode":"gone_ab12c","guestCode":"INV0000001"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"invalid access"}`, w.Body.String())
}

func TestHandler_GetHistory(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	newer := time.Date(2026, 6, 1, 20, 0, 5, 0, time.UTC)
	older := newer.Add(-time.Minute)
	env.scans.EXPECT().History(mock.Anything, "EVT123").Return([]domain.ScanLog{
		{ID: "s2", EventCode: "EVT123", TerminalID: 7, TerminalName: "Gate 1", Result: domain.ScanResultDuplicate, ScannedAt: newer},
		{ID: "s1", EventCode: "EVT123", TerminalID: 7, TerminalName: "Gate 1", Result: domain.ScanResultAccepted, ScannedAt: older},
	}, nil)

	w := doJSON(env.router, http.MethodGet, "/api/events/event-code/EVT123/history", "")

	require.Equal(t, http.StatusOK, w.Code)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.Len(t, raw, 2)
	assert.Equal(t, "s2", raw[0]["id"])
	assert.Equal(t, "Gate 1", raw[0]["terminalName"])
	assert.NotContains(t, raw[0], "terminalId")
}

func TestHandler_GetHistory_StoreError(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	env.scans.EXPECT().History(mock.Anything, "EVT123").Return(nil, errors.New("db error"))

	w := doJSON(env.router, http.MethodGet, "/api/events/event-code/EVT123/history", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

// --- Terminals ---

func TestHandler_CreateTerminal(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	env.terminals.EXPECT().Create(mock.Anything, "EVT123", "Main Gate").Return(&domain.Terminal{
		ID: 1, EventID: 3, Name: "Main Gate", Code: "main-gate_x1y2z", IsActive: true,
	}, nil)

	w := doJSON(env.router, http.MethodPost, "/api/events/event-code/EVT123/terminals", `{"name":"Main Gate"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TerminalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "main-gate_x1y2z", resp.Code)
	assert.True(t, resp.IsActive)
}

func TestHandler_CreateTerminal_EventNotFound(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	env.terminals.EXPECT().Create(mock.Anything, "NOPE", "Gate").Return(nil, domain.ErrEventNotFound)

	w := doJSON(env.router, http.MethodPost, "/api/events/event-code/NOPE/terminals", `{"name":"Gate"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateTerminal_PartialPatch(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	env.terminals.EXPECT().Update(mock.Anything, int64(5), mock.MatchedBy(func(p domain.TerminalPatch) bool {
		return p.Name == nil && p.IsActive != nil && !*p.IsActive
	})).Return(&domain.Terminal{ID: 5, Name: "Gate 1", IsActive: false}, nil)

	w := doJSON(env.router, http.MethodPatch, "/api/events/terminals/5", `{"isActive":false}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"inactive"`)
}

func TestHandler_UpdateTerminal_InvalidID(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	w := doJSON(env.router, http.MethodPatch, "/api/events/terminals/abc", `{"name":"X"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateTerminal_StoreError(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	env.terminals.EXPECT().Update(mock.Anything, int64(5), mock.Anything).Return(nil, errors.New("db error"))

	w := doJSON(env.router, http.MethodPatch, "/api/events/terminals/5", `{"name":"X"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_ArchiveTerminal(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	now := time.Now()
	env.terminals.EXPECT().Archive(mock.Anything, int64(5)).
		Return(&domain.Terminal{ID: 5, IsActive: false, DeletedAt: &now}, nil)

	w := doJSON(env.router, http.MethodDelete, "/api/events/terminals/5", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"terminal archived"}`, w.Body.String())
}

func TestHandler_ArchiveTerminal_NotFound(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	env.terminals.EXPECT().Archive(mock.Anything, int64(9)).Return(nil, domain.ErrTerminalNotFound)

	w := doJSON(env.router, http.MethodDelete, "/api/events/terminals/9", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Events ---

func TestHandler_CreateEvent(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	starts := time.Date(2026, 7, 1, 18, 0, 0, 0, time.UTC)
	env.events.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateEventInput) bool {
		return in.Name == "Gala" && in.StartsAt.Equal(starts) && in.EndsAt == nil
	})).Return(&domain.Event{ID: 1, EventCode: "AB12CD34", Name: "Gala", StartsAt: starts}, nil)

	body, _ := json.Marshal(dto.CreateEventRequest{Name: "Gala", StartsAt: starts.Format(time.RFC3339)})
	w := doJSON(env.router, http.MethodPost, "/api/events", string(body))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "AB12CD34", resp.EventCode)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	w := doJSON(env.router, http.MethodPost, "/api/events", `{"name":"Gala","startsAt":"tomorrow"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_CodeTaken(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	env.events.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEventCodeTaken)

	w := doJSON(env.router, http.MethodPost, "/api/events",
		`{"eventCode":"GALA","name":"Gala","startsAt":"2026-07-01T18:00:00Z"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListEvents(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	env.events.EXPECT().List(mock.Anything).Return([]*domain.Event{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, nil)

	w := doJSON(env.router, http.MethodGet, "/api/events", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_GetEventByCode(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	env.events.EXPECT().GetAggregate(mock.Anything, "EVT123").Return(&domain.EventAggregate{
		Event:  domain.Event{ID: 3, EventCode: "EVT123", Name: "Gala"},
		Tables: []domain.Table{{ID: 1, Name: "T1", Capacity: 8}},
		Invitations: []domain.Invitation{{
			ID: 9, Code: "INV0000001", GuestName: "Ivan", GuestCount: 1,
			Allocations: []domain.Allocation{{ID: 1, TableID: 1, GuestName: "Ivan"}},
		}},
		Stats:       domain.EventStats{TotalTables: 1, TotalInvitations: 1, TotalGuests: 1},
		Assignments: []domain.Assignment{{UserID: "u1", Username: "alice", Role: domain.RoleOrganizer}},
	}, nil)

	w := doJSON(env.router, http.MethodGet, "/api/events/event-code/EVT123", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventAggregateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Gala", resp.Name)
	assert.Len(t, resp.Tables, 1)
	require.Len(t, resp.Invitations, 1)
	assert.Len(t, resp.Invitations[0].Allocations, 1)
	assert.Equal(t, 1, resp.Stats.TotalGuests)
	assert.Equal(t, "alice", resp.Assignments[0].Username)
}

func TestHandler_GetEventByCode_NotFound(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	env.events.EXPECT().GetAggregate(mock.Anything, "NOPE").Return(nil, domain.ErrEventNotFound)

	w := doJSON(env.router, http.MethodGet, "/api/events/event-code/NOPE", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListTables_Empty(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	env.tables.EXPECT().ListByEvent(mock.Anything, "NOPE").Return([]*domain.Table{}, nil)

	w := doJSON(env.router, http.MethodGet, "/api/events/event-code/NOPE/tables", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_CreateTable(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	env.tables.EXPECT().Create(mock.Anything, "EVT123", domain.CreateTableInput{Name: "T1", Capacity: 8}).
		Return(&domain.Table{ID: 1, Name: "T1", Capacity: 8}, nil)

	w := doJSON(env.router, http.MethodPost, "/api/events/event-code/EVT123/tables", `{"name":"T1","capacity":8}`)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateInvitation(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	env.invitations.EXPECT().Create(mock.Anything, "EVT123", mock.MatchedBy(func(in domain.CreateInvitationInput) bool {
		return in.GuestName == "Ivan" && len(in.Allocations) == 1 && in.Allocations[0].TableID == 1
	})).Return(&domain.Invitation{ID: 9, Code: "INV0000001", GuestName: "Ivan", GuestCount: 1}, nil)

	w := doJSON(env.router, http.MethodPost, "/api/events/event-code/EVT123/invitations",
		`{"guestName":"Ivan","allocations":[{"tableId":1}]}`)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateAssignment_Conflict(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	userID := "3f1e6c1a-2b7d-4a39-9c55-6a7e0b1d2f44"
	env.assignments.EXPECT().Assign(mock.Anything, "EVT123", userID, domain.RoleOrganizer).
		Return(nil, domain.ErrAlreadyAssigned)

	w := doJSON(env.router, http.MethodPost, "/api/events/event-code/EVT123/assignments",
		`{"userId":"`+userID+`","role":"organizer"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Users ---

func TestHandler_CreateUser(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	chatID := int64(42)
	env.users.EXPECT().Create(mock.Anything, domain.CreateUserInput{Username: "alice", TelegramChatID: &chatID}).
		Return(&domain.User{ID: "u1", Username: "alice", TelegramChatID: &chatID}, nil)

	w := doJSON(env.router, http.MethodPost, "/api/users", `{"username":"alice","telegramChatId":42}`)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateUser_Taken(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	env.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	w := doJSON(env.router, http.MethodPost, "/api/users", `{"username":"alice"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListUsers(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	env.users.EXPECT().List(mock.Anything).Return([]*domain.User{{ID: "u1"}}, nil)

	w := doJSON(env.router, http.MethodGet, "/api/users", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Cron ---

func TestHandler_RunCron_Development(t *testing.T) {
	env := setupRouter(t, CronAuth{Production: false})

	env.system.EXPECT().RunChecks(mock.Anything).Return(&domain.SystemStats{Events: 2}, nil)

	w := doJSON(env.router, http.MethodGet, "/api/cron", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RunCron_ProductionRequiresBearer(t *testing.T) {
	env := setupRouter(t, CronAuth{Production: true, Secret: "s3cret"})

	env.system.EXPECT().RunChecks(mock.Anything).Return(&domain.SystemStats{}, nil).Once()

	missing := doJSON(env.router, http.MethodGet, "/api/cron", "")
	wrong := doJSON(env.router, http.MethodGet, "/api/cron", "", "Authorization", "Bearer nope")
	ok := doJSON(env.router, http.MethodGet, "/api/cron", "", "Authorization", "Bearer s3cret")

	assert.Equal(t, http.StatusUnauthorized, missing.Code)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, http.StatusOK, ok.Code)
}

func TestHandler_RunCron_ProductionWithoutSecret(t *testing.T) {
	env := setupRouter(t, CronAuth{Production: true})

	w := doJSON(env.router, http.MethodGet, "/api/cron", "", "Authorization", "Bearer ")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_RunCron_Error(t *testing.T) {
	env := setupRouter(t, CronAuth{})

	env.system.EXPECT().RunChecks(mock.Anything).Return(nil, errors.New("db error"))

	w := doJSON(env.router, http.MethodGet, "/api/cron", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// --- Stream ---

func TestHandler_StreamEvents(t *testing.T) {
	env := setupRouter(t, CronAuth{})
	srv := httptest.NewServer(env.router)
	defer srv.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				env.hub.Publish(domain.EventChange{Op: "insert", ID: 1, EventCode: "EVT123"})
			}
		}
	}()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(srv.URL + "/api/events/stream")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	reader := bufio.NewReader(resp.Body)
	var got bytes.Buffer
	for !strings.Contains(got.String(), "data:") {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		got.WriteString(line)
	}

	assert.Contains(t, got.String(), "event:change")
	assert.Contains(t, got.String(), `"eventCode":"EVT123"`)
}

func TestHandler_StreamEvents_SurvivesWriteTimeout(t *testing.T) {
	env := setupRouter(t, CronAuth{})
	env.handler.pingInterval = 20 * time.Millisecond

	srv := httptest.NewUnstartedServer(env.router)
	srv.Config.WriteTimeout = 50 * time.Millisecond
	srv.Start()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/events/stream")
	require.NoError(t, err)
	defer resp.Body.Close()

	time.Sleep(150 * time.Millisecond)
	env.hub.Publish(domain.EventChange{Op: "update", ID: 2, EventCode: "LATE01"})

	reader := bufio.NewReader(resp.Body)
	var got bytes.Buffer
	for !strings.Contains(got.String(), "LATE01") {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		got.WriteString(line)
	}

	assert.Contains(t, got.String(), ": ping")
}

func TestHandler_StreamEvents_CloseStreamsEndsResponse(t *testing.T) {
	env := setupRouter(t, CronAuth{})
	env.handler.pingInterval = 10 * time.Millisecond

	srv := httptest.NewServer(env.router)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/events/stream")
	require.NoError(t, err)
	defer resp.Body.Close()

	reader := bufio.NewReader(resp.Body)
	_, err = reader.ReadString('\n')
	require.NoError(t, err)

	env.handler.CloseStreams()
	env.handler.CloseStreams()

	done := make(chan error, 1)
	go func() {
		_, err := io.Copy(io.Discard, reader)
		done <- err
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("stream still open after CloseStreams")
	}
}
