package domain

import "time"

type Table struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"eventId"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateTableInput struct {
	Name     string
	Capacity int
}
