package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const pingInterval = 90 * time.Second

// Channel is the NOTIFY channel fed by the events_changed trigger
// (migrations/00002_events_notify.sql).
const Channel = "events_changed"

type publisher interface {
	Publish(change domain.EventChange) int
}

// PGListener relays Postgres NOTIFY payloads from Channel into a hub.
type PGListener struct {
	dsn          string
	minReconnect time.Duration
	maxReconnect time.Duration
	hub          publisher
	logger       logger.Logger
}

func NewPGListener(
	dsn string,
	minReconnect, maxReconnect time.Duration,
	hub publisher,
	logger logger.Logger,
) *PGListener {
	return &PGListener{
		dsn:          dsn,
		minReconnect: minReconnect,
		maxReconnect: maxReconnect,
		hub:          hub,
		logger:       logger,
	}
}

// Run blocks until ctx is done. pq.Listener reconnects on its own; a nil
// notification marks a reconnect, after which the stream may have gaps.
func (l *PGListener) Run(ctx context.Context) error {
	listener := pq.NewListener(l.dsn, l.minReconnect, l.maxReconnect, l.reportEvent)
	defer listener.Close()

	if err := listener.Listen(Channel); err != nil {
		return fmt.Errorf("listen %s: %w", Channel, err)
	}

	l.logger.Info("realtime listener started",
		logger.String("channel", Channel),
	)

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("realtime listener stopped")
			return nil
		case n := <-listener.Notify:
			if n == nil {
				continue
			}
			l.dispatch(n.Extra)
		case <-ticker.C:
			if err := listener.Ping(); err != nil {
				l.logger.Warn("realtime listener ping failed",
					logger.String("error", err.Error()),
				)
			}
		}
	}
}

func (l *PGListener) dispatch(payload string) {
	change, err := DecodeChange(payload)
	if err != nil {
		l.logger.Warn("skipping malformed notification",
			logger.String("payload", payload),
			logger.String("error", err.Error()),
		)
		return
	}

	delivered := l.hub.Publish(change)
	l.logger.Debug("event change published",
		logger.String("op", change.Op),
		logger.Int64("event_id", change.ID),
		logger.Int("subscribers", delivered),
	)
}

func (l *PGListener) reportEvent(ev pq.ListenerEventType, err error) {
	if err == nil {
		return
	}
	l.logger.Warn("realtime listener connection event",
		logger.Int("event", int(ev)),
		logger.String("error", err.Error()),
	)
}

func DecodeChange(payload string) (domain.EventChange, error) {
	var change domain.EventChange
	if err := json.Unmarshal([]byte(payload), &change); err != nil {
		return domain.EventChange{}, fmt.Errorf("decode change: %w", err)
	}
	if change.Op == "" {
		return domain.EventChange{}, fmt.Errorf("decode change: missing op")
	}
	return change, nil
}
