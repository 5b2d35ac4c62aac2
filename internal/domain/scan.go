package domain

import "time"

type ScanResult string

const (
	ScanResultAccepted  ScanResult = "accepted"
	ScanResultDuplicate ScanResult = "duplicate"
	ScanResultInvalid   ScanResult = "invalid"
)

// HistoryLimit caps the history view.
const HistoryLimit = 100

// ScanLog is an immutable record of one check-in attempt.
type ScanLog struct {
	ID           string
	EventCode    string
	TerminalID   int64
	TerminalName string
	InvitationID *int64
	GuestCode    string
	GuestName    string
	Result       ScanResult
	ScannedAt    time.Time
}

type ScanInput struct {
	EventCode    string
	TerminalCode string
	GuestCode    string
}

type SystemStats struct {
	Events               int       `json:"events"`
	ActiveTerminals      int       `json:"activeTerminals"`
	ArchivedTerminals    int       `json:"archivedTerminals"`
	ScansLast24h         int       `json:"scansLast24h"`
	DeactivatedTerminals int       `json:"deactivatedTerminals"`
	CheckedAt            time.Time `json:"checkedAt"`
}

// DeactivatedTerminal is a terminal switched off by the system checks.
type DeactivatedTerminal struct {
	TerminalID   int64
	TerminalName string
	EventID      int64
	EventName    string
}
