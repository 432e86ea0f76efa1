package domain

import "time"

// Goal is a target sleep duration and quality set by a user.
type Goal struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	TargetDuration float64   `json:"target_duration"` // hours, 0–24
	TargetQuality  int       `json:"target_quality"`  // 1–10 scale
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
