package ports

import (
	"context"

	"github.com/somnia/sleep-tracker-api/internal/core/domain"
)

// GoalRepository persists goals, scoped to their owner on every access.
type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	FindByID(ctx context.Context, goalID, userID string) (*domain.Goal, error)
	FindAllByUser(ctx context.Context, userID string) ([]domain.Goal, error)
	Update(ctx context.Context, goal *domain.Goal) error
	Delete(ctx context.Context, goalID, userID string) error
	DeleteAllByUser(ctx context.Context, userID string) error
}
