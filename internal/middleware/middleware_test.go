package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
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

func okHandler(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

func serve(r http.Handler, method, path string, header http.Header) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[http.CanonicalHeaderKey(k)] = v
	}
	r.ServeHTTP(w, req)
	return w
}

// --- Request ID ---

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	r.GET("/", okHandler)

	w := serve(r, http.MethodGet, "/", nil)

	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestRequestID_KeepsValidIncoming(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	r.GET("/", okHandler)

	id := "3f1e6c1a-2b7d-4a39-9c55-6a7e0b1d2f44"
	w := serve(r, http.MethodGet, "/", http.Header{RequestIDHeader: {id}})

	assert.Equal(t, id, w.Header().Get(RequestIDHeader))
}

// --- Recovery ---

func TestRecovery_ReturnsGeneric500(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(newTestLogger(t)), Recovery(newTestLogger(t)))
	r.GET("/panic", func(c *ginext.Context) { panic("boom") })

	w := serve(r, http.MethodGet, "/panic", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

// --- CORS ---

func TestCORS_AllowedOrigin(t *testing.T) {
	r := ginext.New("test")
	r.Use(CORS(DefaultCORSConfig([]string{"https://app.example.com"})))
	r.GET("/", okHandler)

	w := serve(r, http.MethodGet, "/", http.Header{"Origin": {"https://app.example.com"}})

	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_UnknownOrigin(t *testing.T) {
	r := ginext.New("test")
	r.Use(CORS(DefaultCORSConfig([]string{"https://app.example.com"})))
	r.GET("/", okHandler)

	w := serve(r, http.MethodGet, "/", http.Header{"Origin": {"https://evil.example.com"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	r := ginext.New("test")
	r.Use(CORS(DefaultCORSConfig([]string{"*"})))
	r.POST("/", okHandler)

	w := serve(r, http.MethodOptions, "/", http.Header{"Origin": {"https://any.example.com"}})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
}

// --- Rate limiting ---

func TestLocalLimiter_Burst(t *testing.T) {
	l := NewLocalLimiter(1, 3)
	defer l.Stop()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(context.Background(), "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, _ := l.Allow(context.Background(), "1.2.3.4")
	assert.False(t, ok)

	ok, _ = l.Allow(context.Background(), "5.6.7.8")
	assert.True(t, ok, "buckets are per key")

	now = now.Add(time.Second)
	ok, _ = l.Allow(context.Background(), "1.2.3.4")
	assert.True(t, ok, "bucket refills over time")
}

func TestRedisLimiter_Burst(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	l := NewRedisLimiter(client, "ratelimit:", 1, 2)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.True(t, mr.Exists("ratelimit:1.2.3.4"))
}

func TestRedisLimiter_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	l := NewRedisLimiter(client, "ratelimit:", 1, 2)

	_, err := l.Allow(context.Background(), "1.2.3.4")
	assert.Error(t, err)
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func TestRateLimit_RejectsOverBudget(t *testing.T) {
	l := NewLocalLimiter(1, 1)
	defer l.Stop()

	r := ginext.New("test")
	r.Use(RateLimit(l, newTestLogger(t)))
	r.POST("/scan", okHandler)

	first := serve(r, http.MethodPost, "/scan", nil)
	second := serve(r, http.MethodPost, "/scan", nil)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
}

func TestRateLimit_FailsOpen(t *testing.T) {
	r := ginext.New("test")
	r.Use(RateLimit(failingLimiter{}, newTestLogger(t)))
	r.POST("/scan", okHandler)

	w := serve(r, http.MethodPost, "/scan", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
