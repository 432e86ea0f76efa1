package ports

import (
	"context"

	"github.com/somnia/sleep-tracker-api/internal/core/domain"
)

type CreateReminderInput struct {
	ReminderTime string
	Message      string
}

// UpdateReminderInput has partial-update semantics: nil fields keep their
// stored values.
type UpdateReminderInput struct {
	ReminderTime *string
	Message      *string
	IsActive     *bool
}

type ReminderService interface {
	Create(ctx context.Context, userID string, in CreateReminderInput) (*domain.Reminder, error)
	Update(ctx context.Context, userID, reminderID string, in UpdateReminderInput) (*domain.Reminder, error)
	// Delete is a soft delete: the reminder is deactivated, not removed.
	Delete(ctx context.Context, userID, reminderID string) error
}
