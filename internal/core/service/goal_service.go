package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/somnia/sleep-tracker-api/internal/core/domain"
	"github.com/somnia/sleep-tracker-api/internal/core/ports"
)

// GoalService handles CRUD for sleep goals.
type GoalService struct {
	repo ports.GoalRepository
	log  zerolog.Logger
}

func NewGoalService(repo ports.GoalRepository, log zerolog.Logger) *GoalService {
	return &GoalService{repo: repo, log: log}
}

func (s *GoalService) Create(ctx context.Context, userID string, in ports.CreateGoalInput) (*domain.Goal, error) {
	goal := &domain.Goal{
		UserID:         userID,
		TargetDuration: in.TargetDuration,
		TargetQuality:  in.TargetQuality,
		Description:    in.Description,
		CreatedAt:      time.Now().UTC(),
	}
	return s.repo.Create(ctx, goal)
}

func (s *GoalService) Get(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	return s.repo.FindByID(ctx, goalID, userID)
}

func (s *GoalService) List(ctx context.Context, userID string) ([]domain.Goal, error) {
	return s.repo.FindAllByUser(ctx, userID)
}

func (s *GoalService) Update(ctx context.Context, userID, goalID string, in ports.UpdateGoalInput) (*domain.Goal, error) {
	goal, err := s.repo.FindByID(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	if in.TargetDuration != nil {
		goal.TargetDuration = *in.TargetDuration
	}
	if in.TargetQuality != nil {
		goal.TargetQuality = *in.TargetQuality
	}
	if in.Description != nil {
		goal.Description = *in.Description
	}

	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) Delete(ctx context.Context, userID, goalID string) error {
	return s.repo.Delete(ctx, goalID, userID)
}
