package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/EventGate/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit rejects requests over the limiter's budget with 429, keyed by
// client IP. Limiter errors let the request through.
func RateLimit(limiter Limiter, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		key := c.ClientIP()

		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.Warn("rate limiter unavailable, allowing request",
				logger.String("client_ip", key),
				logger.String("error", err.Error()),
			)
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: "too many requests"})
			return
		}

		c.Next()
	}
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	lastUpdate time.Time
}

// LocalLimiter is an in-process token bucket per key.
type LocalLimiter struct {
	rps     float64
	burst   float64
	ttl     time.Duration
	buckets sync.Map
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

func NewLocalLimiter(rps, burst int) *LocalLimiter {
	l := &LocalLimiter{
		rps:   float64(rps),
		burst: float64(burst),
		ttl:   time.Minute,
		now:   time.Now,
		stop:  make(chan struct{}),
	}
	go l.cleanup()
	return l
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := l.now()

	v, _ := l.buckets.LoadOrStore(key, &bucket{tokens: l.burst, lastUpdate: now})
	b := v.(*bucket)

	b.mu.Lock()
	defer b.mu.Unlock()

	elapsed := now.Sub(b.lastUpdate).Seconds()
	b.tokens = min(l.burst, b.tokens+elapsed*l.rps)
	b.lastUpdate = now

	if b.tokens < 1 {
		return false, nil
	}
	b.tokens--
	return true, nil
}

func (l *LocalLimiter) cleanup() {
	ticker := time.NewTicker(l.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := l.now().Add(-l.ttl)
			l.buckets.Range(func(key, value any) bool {
				b := value.(*bucket)
				b.mu.Lock()
				if b.lastUpdate.Before(cutoff) {
					l.buckets.Delete(key)
				}
				b.mu.Unlock()
				return true
			})
		case <-l.stop:
			return
		}
	}
}

func (l *LocalLimiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}

const tokenBucketScript = `
local key = KEYS[1]
local rate = tonumber(ARGV[1])
local burst = tonumber(ARGV[2])
local now = tonumber(ARGV[3])

local data = redis.call("HMGET", key, "tokens", "last_update")
local tokens = tonumber(data[1]) or burst
local last_update = tonumber(data[2]) or now

tokens = math.min(burst, tokens + (now - last_update) * rate)

local allowed = 0
if tokens >= 1 then
    tokens = tokens - 1
    allowed = 1
end

redis.call("HSET", key, "tokens", tokens, "last_update", now)
redis.call("EXPIRE", key, 60)
return allowed
`

// RedisLimiter shares one token bucket per key across all instances.
type RedisLimiter struct {
	client *redis.Client
	script *redis.Script
	prefix string
	rps    int
	burst  int
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client, prefix string, rps, burst int) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		script: redis.NewScript(tokenBucketScript),
		prefix: prefix,
		rps:    rps,
		burst:  burst,
		now:    time.Now,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := float64(l.now().UnixNano()) / 1e9

	res, err := l.script.Run(ctx, l.client,
		[]string{l.prefix + key},
		strconv.Itoa(l.rps),
		strconv.Itoa(l.burst),
		strconv.FormatFloat(now, 'f', 6, 64),
	).Int64()
	if err != nil {
		return false, fmt.Errorf("redis token bucket: %w", err)
	}

	return res == 1, nil
}
