package scanclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/stpnv0/EventGate/internal/handler/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// fakeServer accepts one code pair and denies everything else. With
// failing set, validation answers 500.
type fakeServer struct {
	allowed     atomic.Bool
	failing     atomic.Bool
	validations atomic.Int32
}

func newFakeServer(t *testing.T) (*fakeServer, *httptest.Server) {
	t.Helper()
	f := &fakeServer{}
	f.allowed.Store(true)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/events/validate-access", func(w http.ResponseWriter, r *http.Request) {
		f.validations.Add(1)
		if f.failing.Load() {
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
			return
		}
		var req dto.ValidateAccessRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if !f.allowed.Load() || req.EventCode != "EVT123" || req.TerminalCode != "gate1_ab12c" {
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "invalid access"})
			return
		}
		writeJSON(w, http.StatusOK, dto.ValidateAccessResponse{Success: true, EventName: "Gala", TerminalName: "Gate 1"})
	})
	mux.HandleFunc("POST /api/events/scan", func(w http.ResponseWriter, r *http.Request) {
		var req dto.ScanRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if !f.allowed.Load() || req.EventCode != "EVT123" || req.TerminalCode != "gate1_ab12c" {
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "invalid access"})
			return
		}
		if req.GuestCode == "" {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "guestCode is required"})
			return
		}
		writeJSON(w, http.StatusCreated, dto.ScanResponse{ID: "s1", Result: "accepted", GuestCode: req.GuestCode})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return f, srv
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newClient(t *testing.T, srv *httptest.Server) (*Client, *FileStore) {
	t.Helper()
	store := NewFileStore(filepath.Join(t.TempDir(), "scanner", "session.json"))
	return NewClient(srv.URL, srv.Client(), store, newTestLogger(t)), store
}

func TestClient_Login_SavesSession(t *testing.T) {
	_, srv := newFakeServer(t)
	c, store := newClient(t, srv)

	s, err := c.Login(context.Background(), "EVT123", "gate1_ab12c")
	require.NoError(t, err)
	assert.Equal(t, "Gate 1", s.TerminalName)

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "EVT123", stored.EventCode)
	assert.Equal(t, "Gala", stored.EventName)
}

func TestClient_Login_DeniedClearsSession(t *testing.T) {
	_, srv := newFakeServer(t)
	c, store := newClient(t, srv)

	require.NoError(t, store.Save(&Session{EventCode: "OLD", TerminalCode: "old_12345"}))

	_, err := c.Login(context.Background(), "OTHER1", "gate1_ab12c")
	assert.ErrorIs(t, err, domain.ErrAccessDenied)

	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestClient_Scan_RequiresSession(t *testing.T) {
	_, srv := newFakeServer(t)
	c, _ := newClient(t, srv)

	_, err := c.Scan(context.Background(), "INV0000001")

	assert.ErrorIs(t, err, ErrNoSession)
}

func TestClient_Scan_Success(t *testing.T) {
	_, srv := newFakeServer(t)
	c, _ := newClient(t, srv)

	_, err := c.Login(context.Background(), "EVT123", "gate1_ab12c")
	require.NoError(t, err)

	resp, err := c.Scan(context.Background(), "INV0000001")
	require.NoError(t, err)
	assert.Equal(t, "accepted", resp.Result)
}

func TestClient_Scan_BadRequestKeepsSession(t *testing.T) {
	_, srv := newFakeServer(t)
	c, store := newClient(t, srv)

	_, err := c.Login(context.Background(), "EVT123", "gate1_ab12c")
	require.NoError(t, err)

	_, err = c.Scan(context.Background(), "")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.Code)

	_, err = store.Load()
	assert.NoError(t, err)
}

func TestClient_Scan_DeniedInvalidates(t *testing.T) {
	f, srv := newFakeServer(t)
	c, store := newClient(t, srv)

	_, err := c.Login(context.Background(), "EVT123", "gate1_ab12c")
	require.NoError(t, err)

	f.allowed.Store(false)

	_, err = c.Scan(context.Background(), "INV0000001")
	assert.ErrorIs(t, err, domain.ErrAccessDenied)

	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestClient_Revalidate_StopsWhenDenied(t *testing.T) {
	f, srv := newFakeServer(t)
	c, store := newClient(t, srv)

	_, err := c.Login(context.Background(), "EVT123", "gate1_ab12c")
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		f.allowed.Store(false)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = c.Revalidate(ctx, 10*time.Millisecond)

	assert.ErrorIs(t, err, domain.ErrAccessDenied)
	assert.Greater(t, f.validations.Load(), int32(2))

	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestClient_Revalidate_ServerErrorClearsSession(t *testing.T) {
	f, srv := newFakeServer(t)
	c, store := newClient(t, srv)

	_, err := c.Login(context.Background(), "EVT123", "gate1_ab12c")
	require.NoError(t, err)

	f.failing.Store(true)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = c.Revalidate(ctx, 10*time.Millisecond)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)

	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestClient_Revalidate_TransportErrorClearsSession(t *testing.T) {
	_, srv := newFakeServer(t)
	c, store := newClient(t, srv)

	_, err := c.Login(context.Background(), "EVT123", "gate1_ab12c")
	require.NoError(t, err)

	srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = c.Revalidate(ctx, 10*time.Millisecond)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAccessDenied)

	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestClient_Login_ServerErrorClearsSession(t *testing.T) {
	f, srv := newFakeServer(t)
	c, store := newClient(t, srv)

	require.NoError(t, store.Save(&Session{EventCode: "OLD", TerminalCode: "old_12345"}))
	f.failing.Store(true)

	_, err := c.Login(context.Background(), "EVT123", "gate1_ab12c")
	require.Error(t, err)

	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestClient_Revalidate_StopsOnContext(t *testing.T) {
	_, srv := newFakeServer(t)
	c, _ := newClient(t, srv)

	_, err := c.Login(context.Background(), "EVT123", "gate1_ab12c")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.NoError(t, c.Revalidate(ctx, 10*time.Millisecond))
}

func TestClient_Invalidate(t *testing.T) {
	_, srv := newFakeServer(t)
	c, _ := newClient(t, srv)

	_, err := c.Login(context.Background(), "EVT123", "gate1_ab12c")
	require.NoError(t, err)

	require.NoError(t, c.Invalidate())
	require.NoError(t, c.Invalidate())

	_, err = c.Session()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestFileStore_MissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "none.json"))

	_, err := store.Load()

	assert.ErrorIs(t, err, ErrNoSession)
}
