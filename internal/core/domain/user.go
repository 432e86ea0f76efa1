package domain

import "time"

// User models an account that owns sleep records, goals and reminders.
// The password hash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Age          *int      `json:"age"`
	CreatedAt    time.Time `json:"created_at"`
}
