package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/somnia/sleep-tracker-api/internal/core/domain"
	"github.com/somnia/sleep-tracker-api/internal/core/ports"
)

// UserService handles profile updates and account deletion with cascade.
type UserService struct {
	users     ports.UserRepository
	records   ports.SleepRepository
	goals     ports.GoalRepository
	reminders ports.ReminderRepository
	log       zerolog.Logger
}

func NewUserService(
	users ports.UserRepository,
	records ports.SleepRepository,
	goals ports.GoalRepository,
	reminders ports.ReminderRepository,
	log zerolog.Logger,
) *UserService {
	return &UserService{users: users, records: records, goals: goals, reminders: reminders, log: log}
}

// UpdateProfile applies the supplied fields to the user's profile. A new
// email must not belong to any other account.
func (s *UserService) UpdateProfile(ctx context.Context, user *domain.User, in ports.UpdateProfileInput) (*domain.User, error) {
	if in.Email != nil && *in.Email != user.Email {
		existing, err := s.users.FindByEmail(ctx, *in.Email)
		if err == nil && existing.ID != user.ID {
			return nil, domain.ErrEmailTaken
		}
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		user.Email = *in.Email
	}
	if in.Age != nil {
		user.Age = in.Age
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the user together with every sleep record (and its
// notes), goal and reminder the user owns.
func (s *UserService) DeleteAccount(ctx context.Context, user *domain.User) error {
	if err := s.records.DeleteAllByUser(ctx, user.ID); err != nil {
		return err
	}
	if err := s.goals.DeleteAllByUser(ctx, user.ID); err != nil {
		return err
	}
	if err := s.reminders.DeleteAllByUser(ctx, user.ID); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, user.ID); err != nil {
		return err
	}

	s.log.Info().Str("username", user.Username).Msg("account deleted")
	return nil
}
