package ports

import (
	"context"

	"github.com/somnia/sleep-tracker-api/internal/core/domain"
)

// SleepRepository persists sleep records and their notes. Every read, update
// and delete is filtered by both the record identifier and the owner, so a
// record belonging to someone else behaves exactly like a missing one.
type SleepRepository interface {
	Create(ctx context.Context, record *domain.SleepRecord) (*domain.SleepRecord, error)
	FindByID(ctx context.Context, recordID, userID string) (*domain.SleepRecord, error)
	FindAllByUser(ctx context.Context, userID string) ([]domain.SleepRecord, error)
	Update(ctx context.Context, record *domain.SleepRecord) error
	// Delete removes the record and all notes attached to it.
	Delete(ctx context.Context, recordID, userID string) error
	// DeleteAllByUser removes every record owned by the user, notes included.
	DeleteAllByUser(ctx context.Context, userID string) error
	InsertNote(ctx context.Context, note *domain.Note) (*domain.Note, error)
}
