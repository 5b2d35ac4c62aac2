package domain

import "time"

type Event struct {
	ID          int64      `json:"id"`
	EventCode   string     `json:"eventCode"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Venue       string     `json:"venue"`
	StartsAt    time.Time  `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type EventStats struct {
	TotalTables      int `json:"totalTables"`
	TotalInvitations int `json:"totalInvitations"`
	TotalGuests      int `json:"totalGuests"`
	CheckedIn        int `json:"checkedIn"`
	ActiveTerminals  int `json:"activeTerminals"`
	TotalScans       int `json:"totalScans"`
}

// EventAggregate is the full organizer view of one event.
type EventAggregate struct {
	Event       Event        `json:"event"`
	Tables      []Table      `json:"tables"`
	Invitations []Invitation `json:"invitations"`
	Stats       EventStats   `json:"stats"`
	Assignments []Assignment `json:"assignments"`
}

type CreateEventInput struct {
	EventCode   string
	Name        string
	Description string
	Venue       string
	StartsAt    time.Time
	EndsAt      *time.Time
}

// EventChange is a row-level notification about the events table.
type EventChange struct {
	Op        string `json:"op"`
	ID        int64  `json:"id"`
	EventCode string `json:"eventCode"`
}
