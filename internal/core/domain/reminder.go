package domain

import "time"

// Reminder is a daily time-of-day nudge. Deleting a reminder only flips
// IsActive to false; the row stays in storage.
type Reminder struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ReminderTime string    `json:"reminder_time"` // "HH:MM", 24-hour
	IsActive     bool      `json:"is_active"`
	Message      string    `json:"message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
