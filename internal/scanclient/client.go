package scanclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/stpnv0/EventGate/internal/handler/dto"
	"github.com/wb-go/wbf/logger"
)

const defaultTimeout = 10 * time.Second

// StatusError is a non-success answer other than an access denial.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Code, e.Message)
}

// Client talks to the scanner endpoints on behalf of one device. A failed
// validation of any kind clears the stored session; only cancellation of
// the caller's context leaves it in place.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      SessionStore
	logger     logger.Logger
	now        func() time.Time
}

func NewClient(baseURL string, httpClient *http.Client, store SessionStore, log logger.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		store:      store,
		logger:     log,
		now:        time.Now,
	}
}

// Login validates the code pair and stores the session on success. Any
// other outcome forgets the previous session.
func (c *Client) Login(ctx context.Context, eventCode, terminalCode string) (*Session, error) {
	grant, err := c.validate(ctx, eventCode, terminalCode)
	if err != nil {
		if ctx.Err() == nil {
			c.invalidate("login failed")
		}
		return nil, err
	}

	s := &Session{
		EventCode:    eventCode,
		TerminalCode: terminalCode,
		EventName:    grant.EventName,
		TerminalName: grant.TerminalName,
		ValidatedAt:  c.now().UTC(),
	}
	if err := c.store.Save(s); err != nil {
		return nil, err
	}

	return s, nil
}

func (c *Client) Session() (*Session, error) {
	return c.store.Load()
}

// Invalidate forgets the stored codes.
func (c *Client) Invalidate() error {
	return c.store.Clear()
}

func (c *Client) Scan(ctx context.Context, guestCode string) (*dto.ScanResponse, error) {
	s, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	var resp dto.ScanResponse
	err = c.post(ctx, "/api/events/scan", dto.ScanRequest{
		EventCode:    s.EventCode,
		TerminalCode: s.TerminalCode,
		GuestCode:    guestCode,
	}, &resp)
	if err != nil {
		if errors.Is(err, domain.ErrAccessDenied) {
			c.invalidate("scan denied")
		}
		return nil, err
	}

	return &resp, nil
}

// Revalidate re-checks the stored session every interval until ctx ends or
// a validation fails. A failure clears the session and is returned.
func (c *Client) Revalidate(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		s, err := c.store.Load()
		if err != nil {
			return err
		}

		grant, err := c.validate(ctx, s.EventCode, s.TerminalCode)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Warn("revalidation failed",
				logger.String("error", err.Error()),
			)
			c.invalidate("revalidation failed")
			return err
		}

		s.EventName = grant.EventName
		s.TerminalName = grant.TerminalName
		s.ValidatedAt = c.now().UTC()
		if err := c.store.Save(s); err != nil {
			return err
		}
	}
}

func (c *Client) validate(ctx context.Context, eventCode, terminalCode string) (*dto.ValidateAccessResponse, error) {
	var resp dto.ValidateAccessResponse
	err := c.post(ctx, "/api/events/validate-access", dto.ValidateAccessRequest{
		EventCode:    eventCode,
		TerminalCode: terminalCode,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, domain.ErrAccessDenied
	}
	return &resp, nil
}

func (c *Client) invalidate(reason string) {
	if err := c.store.Clear(); err != nil {
		c.logger.Error("failed to clear scanner session",
			logger.String("reason", reason),
			logger.String("error", err.Error()),
		)
		return
	}
	c.logger.Info("scanner session cleared", logger.String("reason", reason))
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrAccessDenied
	case resp.StatusCode >= 300:
		var e dto.ErrorResponse
		_ = json.Unmarshal(data, &e)
		return &StatusError{Code: resp.StatusCode, Message: e.Error}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
