package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/somnia/sleep-tracker-api/internal/core/domain"
	"github.com/somnia/sleep-tracker-api/internal/core/ports"
)

func newTestUserService(users *stubUserRepo, records *stubSleepRepo, goals *stubGoalRepo, reminders *stubReminderRepo) *UserService {
	return NewUserService(users, records, goals, reminders, zerolog.Nop())
}

func seedUser(t *testing.T, repo *stubUserRepo, username, email string) *domain.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestUserService_UpdateProfile_EmailAndAge(t *testing.T) {
	users := newStubUserRepo()
	svc := newTestUserService(users, newStubSleepRepo(), newStubGoalRepo(), newStubReminderRepo())

	user := seedUser(t, users, "alice", "alice@example.com")

	updated, err := svc.UpdateProfile(context.Background(), user, ports.UpdateProfileInput{
		Email: ptr("alice@new.example.com"),
		Age:   ptr(30),
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.Email != "alice@new.example.com" {
		t.Fatalf("email not updated: %s", updated.Email)
	}
	if updated.Age == nil || *updated.Age != 30 {
		t.Fatalf("age not updated: %v", updated.Age)
	}
}

func TestUserService_UpdateProfile_EmailTaken(t *testing.T) {
	users := newStubUserRepo()
	svc := newTestUserService(users, newStubSleepRepo(), newStubGoalRepo(), newStubReminderRepo())

	alice := seedUser(t, users, "alice", "alice@example.com")
	seedUser(t, users, "bob", "bob@example.com")

	if _, err := svc.UpdateProfile(context.Background(), alice, ports.UpdateProfileInput{
		Email: ptr("bob@example.com"),
	}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_UpdateProfile_SameEmailAccepted(t *testing.T) {
	users := newStubUserRepo()
	svc := newTestUserService(users, newStubSleepRepo(), newStubGoalRepo(), newStubReminderRepo())

	alice := seedUser(t, users, "alice", "alice@example.com")

	if _, err := svc.UpdateProfile(context.Background(), alice, ports.UpdateProfileInput{
		Email: ptr("alice@example.com"),
	}); err != nil {
		t.Fatalf("keeping the same email must not conflict: %v", err)
	}
}

func TestUserService_DeleteAccount_Cascades(t *testing.T) {
	users := newStubUserRepo()
	records := newStubSleepRepo()
	goals := newStubGoalRepo()
	reminders := newStubReminderRepo()
	svc := newTestUserService(users, records, goals, reminders)

	alice := seedUser(t, users, "alice", "alice@example.com")

	rec, _ := records.Create(context.Background(), &domain.SleepRecord{UserID: alice.ID})
	_, _ = records.InsertNote(context.Background(), &domain.Note{SleepRecordID: rec.ID, Content: "n"})
	_, _ = goals.Create(context.Background(), &domain.Goal{UserID: alice.ID, TargetDuration: 8})
	_, _ = reminders.Create(context.Background(), &domain.Reminder{UserID: alice.ID, ReminderTime: "22:30", IsActive: true})

	if err := svc.DeleteAccount(context.Background(), alice); err != nil {
		t.Fatalf("DeleteAccount returned error: %v", err)
	}

	if _, err := users.FindByUsername(context.Background(), "alice"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user still present: %v", err)
	}
	if left, _ := records.FindAllByUser(context.Background(), alice.ID); len(left) != 0 {
		t.Fatalf("%d sleep records survived", len(left))
	}
	if len(records.notes) != 0 {
		t.Fatalf("%d notes survived", len(records.notes))
	}
	if left, _ := goals.FindAllByUser(context.Background(), alice.ID); len(left) != 0 {
		t.Fatalf("%d goals survived", len(left))
	}
	if len(reminders.reminders) != 0 {
		t.Fatalf("%d reminders survived", len(reminders.reminders))
	}
}
