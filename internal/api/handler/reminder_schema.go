package handler

import (
	"time"

	"github.com/somnia/sleep-tracker-api/internal/core/domain"
)

type createReminderRequest struct {
	ReminderTime string `json:"reminder_time" validate:"required,datetime=15:04"`
	Message      string `json:"message"       validate:"omitempty,max=200"`
}

type updateReminderRequest struct {
	ReminderTime *string `json:"reminder_time" validate:"omitempty,datetime=15:04"`
	Message      *string `json:"message"       validate:"omitempty,max=200"`
	IsActive     *bool   `json:"is_active"`
}

type reminderResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ReminderTime string    `json:"reminder_time"`
	IsActive     bool      `json:"is_active"`
	Message      string    `json:"message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toReminderResponse(r *domain.Reminder) reminderResponse {
	return reminderResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		ReminderTime: r.ReminderTime,
		IsActive:     r.IsActive,
		Message:      r.Message,
		CreatedAt:    r.CreatedAt.UTC(),
	}
}
