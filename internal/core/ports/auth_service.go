package ports

import (
	"context"

	"github.com/somnia/sleep-tracker-api/internal/core/domain"
)

// RegisterInput carries a new account's details. The password arrives in
// plaintext and is hashed before it reaches any repository.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Age      *int
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login returns a signed access token on success. Unknown usernames and
	// wrong passwords are indistinguishable to the caller.
	Login(ctx context.Context, username, password string) (string, error)
}
