package handler

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/stpnv0/EventGate/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const streamPingInterval = 15 * time.Second

func (h *Handler) RunCron(c *ginext.Context) {
	if !h.cronAuthorized(c.GetHeader("Authorization")) {
		h.handleError(c, domain.ErrUnauthorized)
		return
	}

	stats, err := h.systemService.RunChecks(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSystemStatsResponse(stats))
}

func (h *Handler) cronAuthorized(header string) bool {
	if !h.cron.Production {
		return true
	}
	if h.cron.Secret == "" {
		return false
	}
	expected := "Bearer " + h.cron.Secret
	return subtle.ConstantTimeCompare([]byte(header), []byte(expected)) == 1
}

// StreamEvents pushes one "change" server-sent event per row change in
// the events table until the client disconnects or the server shuts down.
// A comment line goes out every pingInterval to keep proxies from closing
// an idle stream.
func (h *Handler) StreamEvents(c *ginext.Context) {
	changes, unsubscribe := h.changes.Subscribe()
	defer unsubscribe()

	// the stream outlives the server's WriteTimeout
	if err := http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{}); err != nil &&
		!errors.Is(err, http.ErrNotSupported) {
		h.handleError(c, fmt.Errorf("clear write deadline: %w", err))
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	ping := time.NewTicker(h.pingInterval)
	defer ping.Stop()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case <-h.streamsDone:
			return false
		case <-ping.C:
			_, err := io.WriteString(w, ": ping\n\n")
			return err == nil
		case change, ok := <-changes:
			if !ok {
				return false
			}
			c.SSEvent("change", change)
			return true
		}
	})
}
