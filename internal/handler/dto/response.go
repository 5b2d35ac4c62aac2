package dto

import (
	"time"

	"github.com/stpnv0/EventGate/internal/domain"
)

type EventResponse struct {
	ID          int64   `json:"id"`
	EventCode   string  `json:"eventCode"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Venue       string  `json:"venue"`
	StartsAt    string  `json:"startsAt"`
	EndsAt      *string `json:"endsAt,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

type TableResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

type AllocationResponse struct {
	ID         int64  `json:"id"`
	TableID    int64  `json:"tableId"`
	GuestName  string `json:"guestName"`
	SeatNumber *int   `json:"seatNumber,omitempty"`
}

type InvitationResponse struct {
	ID          int64                `json:"id"`
	Code        string               `json:"code"`
	GuestName   string               `json:"guestName"`
	GuestCount  int                  `json:"guestCount"`
	CheckedInAt *string              `json:"checkedInAt,omitempty"`
	Allocations []AllocationResponse `json:"allocations"`
}

type AssignmentResponse struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type StatsResponse struct {
	TotalTables      int `json:"totalTables"`
	TotalInvitations int `json:"totalInvitations"`
	TotalGuests      int `json:"totalGuests"`
	CheckedIn        int `json:"checkedIn"`
	ActiveTerminals  int `json:"activeTerminals"`
	TotalScans       int `json:"totalScans"`
}

type EventAggregateResponse struct {
	EventResponse
	Tables      []TableResponse      `json:"tables"`
	Invitations []InvitationResponse `json:"invitations"`
	Stats       StatsResponse        `json:"stats"`
	Assignments []AssignmentResponse `json:"assignments"`
}

type TerminalResponse struct {
	ID        int64   `json:"id"`
	EventID   int64   `json:"eventId"`
	Name      string  `json:"name"`
	Code      string  `json:"code"`
	IsActive  bool    `json:"isActive"`
	State     string  `json:"state"`
	DeletedAt *string `json:"deletedAt"`
	CreatedAt string  `json:"createdAt"`
}

type ValidateAccessResponse struct {
	Success      bool   `json:"success"`
	EventName    string `json:"eventName"`
	TerminalName string `json:"terminalName"`
}

type ScanResponse struct {
	ID           string `json:"id"`
	Result       string `json:"result"`
	GuestCode    string `json:"guestCode"`
	GuestName    string `json:"guestName,omitempty"`
	TerminalName string `json:"terminalName"`
	ScannedAt    string `json:"scannedAt"`
}

// HistoryEntryResponse exposes the terminal by display name only.
type HistoryEntryResponse struct {
	ID           string `json:"id"`
	EventCode    string `json:"eventCode"`
	GuestCode    string `json:"guestCode"`
	GuestName    string `json:"guestName,omitempty"`
	Result       string `json:"result"`
	TerminalName string `json:"terminalName"`
	ScannedAt    string `json:"scannedAt"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	TelegramChatID *int64 `json:"telegramChatId,omitempty"`
	CreatedAt      string `json:"createdAt"`
}

type SystemStatsResponse struct {
	Events               int    `json:"events"`
	ActiveTerminals      int    `json:"activeTerminals"`
	ArchivedTerminals    int    `json:"archivedTerminals"`
	ScansLast24h         int    `json:"scansLast24h"`
	DeactivatedTerminals int    `json:"deactivatedTerminals"`
	CheckedAt            string `json:"checkedAt"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		EventCode:   e.EventCode,
		Name:        e.Name,
		Description: e.Description,
		Venue:       e.Venue,
		StartsAt:    e.StartsAt.Format(time.RFC3339),
		EndsAt:      formatTime(e.EndsAt),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func ToTableResponse(t *domain.Table) TableResponse {
	return TableResponse{
		ID:       t.ID,
		Name:     t.Name,
		Capacity: t.Capacity,
	}
}

func ToInvitationResponse(inv *domain.Invitation) InvitationResponse {
	allocations := make([]AllocationResponse, 0, len(inv.Allocations))
	for _, a := range inv.Allocations {
		allocations = append(allocations, AllocationResponse{
			ID:         a.ID,
			TableID:    a.TableID,
			GuestName:  a.GuestName,
			SeatNumber: a.SeatNumber,
		})
	}

	return InvitationResponse{
		ID:          inv.ID,
		Code:        inv.Code,
		GuestName:   inv.GuestName,
		GuestCount:  inv.GuestCount,
		CheckedInAt: formatTime(inv.CheckedInAt),
		Allocations: allocations,
	}
}

func ToAssignmentResponse(a *domain.Assignment) AssignmentResponse {
	return AssignmentResponse{
		UserID:   a.UserID,
		Username: a.Username,
		Role:     string(a.Role),
	}
}

func ToEventAggregateResponse(agg *domain.EventAggregate) EventAggregateResponse {
	tables := make([]TableResponse, 0, len(agg.Tables))
	for i := range agg.Tables {
		tables = append(tables, ToTableResponse(&agg.Tables[i]))
	}

	invitations := make([]InvitationResponse, 0, len(agg.Invitations))
	for i := range agg.Invitations {
		invitations = append(invitations, ToInvitationResponse(&agg.Invitations[i]))
	}

	assignments := make([]AssignmentResponse, 0, len(agg.Assignments))
	for i := range agg.Assignments {
		assignments = append(assignments, ToAssignmentResponse(&agg.Assignments[i]))
	}

	return EventAggregateResponse{
		EventResponse: ToEventResponse(&agg.Event),
		Tables:        tables,
		Invitations:   invitations,
		Stats:         StatsResponse(agg.Stats),
		Assignments:   assignments,
	}
}

func ToTerminalResponse(t *domain.Terminal) TerminalResponse {
	return TerminalResponse{
		ID:        t.ID,
		EventID:   t.EventID,
		Name:      t.Name,
		Code:      t.Code,
		IsActive:  t.IsActive,
		State:     string(t.State()),
		DeletedAt: formatTime(t.DeletedAt),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

func ToValidateAccessResponse(g *domain.AccessGrant) ValidateAccessResponse {
	return ValidateAccessResponse{
		Success:      true,
		EventName:    g.EventName,
		TerminalName: g.TerminalName,
	}
}

func ToScanResponse(s *domain.ScanLog) ScanResponse {
	return ScanResponse{
		ID:           s.ID,
		Result:       string(s.Result),
		GuestCode:    s.GuestCode,
		GuestName:    s.GuestName,
		TerminalName: s.TerminalName,
		ScannedAt:    s.ScannedAt.Format(time.RFC3339Nano),
	}
}

func ToHistoryEntryResponse(s *domain.ScanLog) HistoryEntryResponse {
	return HistoryEntryResponse{
		ID:           s.ID,
		EventCode:    s.EventCode,
		GuestCode:    s.GuestCode,
		GuestName:    s.GuestName,
		Result:       string(s.Result),
		TerminalName: s.TerminalName,
		ScannedAt:    s.ScannedAt.Format(time.RFC3339Nano),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToSystemStatsResponse(s *domain.SystemStats) SystemStatsResponse {
	return SystemStatsResponse{
		Events:               s.Events,
		ActiveTerminals:      s.ActiveTerminals,
		ArchivedTerminals:    s.ArchivedTerminals,
		ScansLast24h:         s.ScansLast24h,
		DeactivatedTerminals: s.DeactivatedTerminals,
		CheckedAt:            s.CheckedAt.Format(time.RFC3339),
	}
}
