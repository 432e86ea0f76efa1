package ports

import (
	"context"
	"time"

	"github.com/somnia/sleep-tracker-api/internal/core/domain"
)

// CreateSleepRecordInput carries a new sleep session. Phase durations are
// optional; duration is derived server-side from the start/end pair.
type CreateSleepRecordInput struct {
	SleepStart time.Time
	SleepEnd   time.Time
	Quality    int
	DeepSleep  *float64
	LightSleep *float64
	RemSleep   *float64
}

// UpdateSleepRecordInput has partial-update semantics: nil fields keep their
// stored values. Cross-field rules are re-checked against the merged record.
type UpdateSleepRecordInput struct {
	SleepStart *time.Time
	SleepEnd   *time.Time
	Quality    *int
	DeepSleep  *float64
	LightSleep *float64
	RemSleep   *float64
}

type SleepService interface {
	Create(ctx context.Context, userID string, in CreateSleepRecordInput) (*domain.SleepRecord, error)
	Get(ctx context.Context, userID, recordID string) (*domain.SleepRecord, error)
	// List returns the user's records, newest sleep date first.
	List(ctx context.Context, userID string) ([]domain.SleepRecord, error)
	Update(ctx context.Context, userID, recordID string, in UpdateSleepRecordInput) (*domain.SleepRecord, error)
	Delete(ctx context.Context, userID, recordID string) error
	AddNote(ctx context.Context, userID, recordID, content string) (*domain.Note, error)
}
