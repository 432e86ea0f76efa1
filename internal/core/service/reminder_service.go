package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/somnia/sleep-tracker-api/internal/core/domain"
	"github.com/somnia/sleep-tracker-api/internal/core/ports"
)

// ReminderService handles reminder creation, updates and soft deletion.
type ReminderService struct {
	repo ports.ReminderRepository
	log  zerolog.Logger
}

func NewReminderService(repo ports.ReminderRepository, log zerolog.Logger) *ReminderService {
	return &ReminderService{repo: repo, log: log}
}

func (s *ReminderService) Create(ctx context.Context, userID string, in ports.CreateReminderInput) (*domain.Reminder, error) {
	reminder := &domain.Reminder{
		UserID:       userID,
		ReminderTime: in.ReminderTime,
		IsActive:     true,
		Message:      in.Message,
		CreatedAt:    time.Now().UTC(),
	}
	return s.repo.Create(ctx, reminder)
}

func (s *ReminderService) Update(ctx context.Context, userID, reminderID string, in ports.UpdateReminderInput) (*domain.Reminder, error) {
	reminder, err := s.repo.FindByID(ctx, reminderID, userID)
	if err != nil {
		return nil, err
	}

	if in.ReminderTime != nil {
		reminder.ReminderTime = *in.ReminderTime
	}
	if in.Message != nil {
		reminder.Message = *in.Message
	}
	if in.IsActive != nil {
		reminder.IsActive = *in.IsActive
	}

	if err := s.repo.Update(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

// Delete deactivates the reminder instead of removing it. Deactivating an
// unknown or foreign reminder reports not-found.
func (s *ReminderService) Delete(ctx context.Context, userID, reminderID string) error {
	return s.repo.Deactivate(ctx, reminderID, userID)
}
