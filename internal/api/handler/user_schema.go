package handler

import (
	"time"

	"github.com/somnia/sleep-tracker-api/internal/core/domain"
)

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Age      *int   `json:"age"      validate:"omitempty,gte=1,lte=150"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type updateProfileRequest struct {
	Email *string `json:"email" validate:"omitempty,email"`
	Age   *int    `json:"age"   validate:"omitempty,gte=1,lte=150"`
}

// userResponse never carries the password hash.
type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Age       *int      `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Age:       u.Age,
		CreatedAt: u.CreatedAt.UTC(),
	}
}
