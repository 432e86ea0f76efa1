package ports

import (
	"context"

	"github.com/somnia/sleep-tracker-api/internal/core/domain"
)

// ReminderRepository persists reminders, scoped to their owner on every
// access. Deactivate implements the soft delete: the row survives with
// is_active set to false.
type ReminderRepository interface {
	Create(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error)
	FindByID(ctx context.Context, reminderID, userID string) (*domain.Reminder, error)
	Update(ctx context.Context, reminder *domain.Reminder) error
	Deactivate(ctx context.Context, reminderID, userID string) error
	DeleteAllByUser(ctx context.Context, userID string) error
}
