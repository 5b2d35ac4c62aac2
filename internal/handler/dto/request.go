package dto

type CreateEventRequest struct {
	EventCode   string  `json:"eventCode"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Venue       string  `json:"venue"`
	StartsAt    string  `json:"startsAt" binding:"required"`
	EndsAt      *string `json:"endsAt"`
}

type CreateTableRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"gte=0"`
}

type AllocationRequest struct {
	TableID    int64  `json:"tableId" binding:"required,gt=0"`
	GuestName  string `json:"guestName"`
	SeatNumber *int   `json:"seatNumber" binding:"omitempty,gt=0"`
}

type CreateInvitationRequest struct {
	GuestName   string              `json:"guestName" binding:"required"`
	GuestCount  int                 `json:"guestCount" binding:"gte=0"`
	Allocations []AllocationRequest `json:"allocations" binding:"dive"`
}

type CreateAssignmentRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
	Role   string `json:"role" binding:"omitempty,oneof=organizer staff"`
}

type CreateTerminalRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateTerminalRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

// ValidateAccessRequest is left without binding rules: a malformed body is
// answered like any other denied pair.
type ValidateAccessRequest struct {
	EventCode    string `json:"eventCode"`
	TerminalCode string `json:"terminalCode"`
}

type ScanRequest struct {
	EventCode    string `json:"eventCode"`
	TerminalCode string `json:"terminalCode"`
	GuestCode    string `json:"guestCode" binding:"required"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	TelegramChatID *int64 `json:"telegramChatId"`
}
