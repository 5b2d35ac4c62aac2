package domain

import "time"

type Invitation struct {
	ID          int64        `json:"id"`
	EventID     int64        `json:"eventId"`
	Code        string       `json:"code"`
	GuestName   string       `json:"guestName"`
	GuestCount  int          `json:"guestCount"`
	CheckedInAt *time.Time   `json:"checkedInAt,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	Allocations []Allocation `json:"allocations"`
}

// Allocation seats one invited guest at a table.
type Allocation struct {
	ID           int64  `json:"id"`
	InvitationID int64  `json:"invitationId"`
	TableID      int64  `json:"tableId"`
	GuestName    string `json:"guestName"`
	SeatNumber   *int   `json:"seatNumber,omitempty"`
}

type CreateInvitationInput struct {
	GuestName   string
	GuestCount  int
	Allocations []AllocationInput
}

type AllocationInput struct {
	TableID    int64
	GuestName  string
	SeatNumber *int
}
