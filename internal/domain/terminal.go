package domain

import "time"

type TerminalState string

const (
	TerminalStateActive   TerminalState = "active"
	TerminalStateInactive TerminalState = "inactive"
	TerminalStateArchived TerminalState = "archived"
)

type Terminal struct {
	ID        int64      `json:"id"`
	EventID   int64      `json:"eventId"`
	Name      string     `json:"name"`
	Code      string     `json:"code"`
	IsActive  bool       `json:"isActive"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// State reports where the terminal sits in ACTIVE <-> INACTIVE -> ARCHIVED.
func (t *Terminal) State() TerminalState {
	switch {
	case t.DeletedAt != nil:
		return TerminalStateArchived
	case t.IsActive:
		return TerminalStateActive
	default:
		return TerminalStateInactive
	}
}

type TerminalPatch struct {
	Name     *string
	IsActive *bool
}

// AccessGrant is what a validated scanner learns about itself.
type AccessGrant struct {
	EventName    string
	TerminalName string
}

// TerminalAccess is a terminal that passed all access predicates, joined
// with its owning event.
type TerminalAccess struct {
	TerminalID   int64
	TerminalName string
	EventID      int64
	EventCode    string
	EventName    string
}

func (a *TerminalAccess) Grant() *AccessGrant {
	return &AccessGrant{EventName: a.EventName, TerminalName: a.TerminalName}
}
