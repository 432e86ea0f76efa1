package handler

import (
	"time"

	"github.com/somnia/sleep-tracker-api/internal/core/domain"
)

// createGoalRequest keeps target_duration a pointer: a zero-hour target is a
// legal value, so presence and range are checked separately.
type createGoalRequest struct {
	TargetDuration *float64 `json:"target_duration" validate:"required,gte=0,lte=24"`
	TargetQuality  int      `json:"target_quality"  validate:"required,gte=1,lte=10"`
	Description    string   `json:"description"     validate:"omitempty,max=500"`
}

type updateGoalRequest struct {
	TargetDuration *float64 `json:"target_duration" validate:"omitempty,gte=0,lte=24"`
	TargetQuality  *int     `json:"target_quality"  validate:"omitempty,gte=1,lte=10"`
	Description    *string  `json:"description"     validate:"omitempty,max=500"`
}

type goalResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	TargetDuration float64   `json:"target_duration"`
	TargetQuality  int       `json:"target_quality"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func toGoalResponse(g *domain.Goal) goalResponse {
	return goalResponse{
		ID:             g.ID,
		UserID:         g.UserID,
		TargetDuration: g.TargetDuration,
		TargetQuality:  g.TargetQuality,
		Description:    g.Description,
		CreatedAt:      g.CreatedAt.UTC(),
	}
}
