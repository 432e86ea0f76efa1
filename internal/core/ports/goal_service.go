package ports

import (
	"context"

	"github.com/somnia/sleep-tracker-api/internal/core/domain"
)

type CreateGoalInput struct {
	TargetDuration float64
	TargetQuality  int
	Description    string
}

// UpdateGoalInput has partial-update semantics: nil fields keep their stored
// values.
type UpdateGoalInput struct {
	TargetDuration *float64
	TargetQuality  *int
	Description    *string
}

type GoalService interface {
	Create(ctx context.Context, userID string, in CreateGoalInput) (*domain.Goal, error)
	Get(ctx context.Context, userID, goalID string) (*domain.Goal, error)
	List(ctx context.Context, userID string) ([]domain.Goal, error)
	Update(ctx context.Context, userID, goalID string, in UpdateGoalInput) (*domain.Goal, error)
	Delete(ctx context.Context, userID, goalID string) error
}
