package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/stpnv0/EventGate/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetAggregate(ctx context.Context, code string) (*domain.EventAggregate, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type TableSvc interface {
	Create(ctx context.Context, eventCode string, input domain.CreateTableInput) (*domain.Table, error)
	ListByEvent(ctx context.Context, eventCode string) ([]*domain.Table, error)
}

type InvitationSvc interface {
	Create(ctx context.Context, eventCode string, input domain.CreateInvitationInput) (*domain.Invitation, error)
}

type AssignmentSvc interface {
	Assign(ctx context.Context, eventCode, userID string, role domain.Role) (*domain.Assignment, error)
}

type TerminalSvc interface {
	Create(ctx context.Context, eventCode, name string) (*domain.Terminal, error)
	ListByEvent(ctx context.Context, eventCode string) ([]*domain.Terminal, error)
	Update(ctx context.Context, id int64, patch domain.TerminalPatch) (*domain.Terminal, error)
	Archive(ctx context.Context, id int64) (*domain.Terminal, error)
}

type AccessSvc interface {
	Validate(ctx context.Context, eventCode, terminalCode string) (*domain.AccessGrant, error)
}

type ScanSvc interface {
	Record(ctx context.Context, input domain.ScanInput) (*domain.ScanLog, error)
	History(ctx context.Context, eventCode string) ([]domain.ScanLog, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type SystemSvc interface {
	RunChecks(ctx context.Context) (*domain.SystemStats, error)
}

// ChangeSubscriber feeds the event-list stream.
type ChangeSubscriber interface {
	Subscribe() (<-chan domain.EventChange, func())
}

type Services struct {
	Events      EventSvc
	Tables      TableSvc
	Invitations InvitationSvc
	Assignments AssignmentSvc
	Terminals   TerminalSvc
	Access      AccessSvc
	Scans       ScanSvc
	Users       UserSvc
	System      SystemSvc
}

// CronAuth guards the system-check endpoint. The secret is enforced only in
// production; a production deployment without a secret rejects every call.
type CronAuth struct {
	Production bool
	Secret     string
}

type Handler struct {
	eventService      EventSvc
	tableService      TableSvc
	invitationService InvitationSvc
	assignmentService AssignmentSvc
	terminalService   TerminalSvc
	accessService     AccessSvc
	scanService       ScanSvc
	userService       UserSvc
	systemService     SystemSvc
	changes           ChangeSubscriber
	cron              CronAuth

	pingInterval time.Duration
	streamsDone  chan struct{}
	closeStreams sync.Once
}

func NewHandler(s Services, changes ChangeSubscriber, cron CronAuth) *Handler {
	return &Handler{
		eventService:      s.Events,
		tableService:      s.Tables,
		invitationService: s.Invitations,
		assignmentService: s.Assignments,
		terminalService:   s.Terminals,
		accessService:     s.Access,
		scanService:       s.Scans,
		userService:       s.Users,
		systemService:     s.System,
		changes:           changes,
		cron:              cron,
		pingInterval:      streamPingInterval,
		streamsDone:       make(chan struct{}),
	}
}

// CloseStreams ends every open event stream. It is meant to run from
// http.Server.RegisterOnShutdown so Shutdown does not wait on them.
func (h *Handler) CloseStreams() {
	h.closeStreams.Do(func() { close(h.streamsDone) })
}

func parseID(c *ginext.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrAccessDenied):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: domain.ErrAccessDenied.Error()})

	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTerminalNotFound),
		errors.Is(err, domain.ErrTableNotFound),
		errors.Is(err, domain.ErrInvitationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthorized.Error()})

	case errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrEventCodeTaken),
		errors.Is(err, domain.ErrInvitationCodeTaken),
		errors.Is(err, domain.ErrAlreadyAssigned):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
