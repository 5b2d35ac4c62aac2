package domain

import "time"

type Role string

const (
	RoleOrganizer Role = "organizer"
	RoleStaff     Role = "staff"
)

func (r Role) Valid() bool {
	return r == RoleOrganizer || r == RoleStaff
}

type Assignment struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"eventId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
