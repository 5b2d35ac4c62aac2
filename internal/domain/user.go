package domain

import "time"

// User is a staff account that can be assigned to events.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// Reachable reports whether organizer alerts can be delivered to the user.
func (u *User) Reachable() bool {
	return u.TelegramChatID != nil && *u.TelegramChatID != 0
}

type CreateUserInput struct {
	Username       string
	TelegramChatID *int64
}
