package ports

import (
	"context"

	"github.com/somnia/sleep-tracker-api/internal/core/domain"
)

// UpdateProfileInput carries the fields a user may change on their own
// profile. Nil fields are left untouched.
type UpdateProfileInput struct {
	Email *string
	Age   *int
}

type UserService interface {
	UpdateProfile(ctx context.Context, user *domain.User, in UpdateProfileInput) (*domain.User, error)
	// DeleteAccount removes the user and cascades to every owned sleep
	// record (with notes), goal and reminder.
	DeleteAccount(ctx context.Context, user *domain.User) error
}
