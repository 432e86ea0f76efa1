package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/somnia/sleep-tracker-api/internal/core/domain"
)

const collectionReminders = "reminders"

type ReminderRepository struct {
	col *mongo.Collection
}

func NewReminderRepository(db *mongo.Database) *ReminderRepository {
	return &ReminderRepository{col: db.Collection(collectionReminders)}
}

type mongoReminder struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserID       string             `bson:"user_id"`
	ReminderTime string             `bson:"reminder_time"`
	IsActive     bool               `bson:"is_active"`
	Message      string             `bson:"message,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (m mongoReminder) toDomain() *domain.Reminder {
	return &domain.Reminder{
		ID:           m.ID.Hex(),
		UserID:       m.UserID,
		ReminderTime: m.ReminderTime,
		IsActive:     m.IsActive,
		Message:      m.Message,
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

func (r *ReminderRepository) Create(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoReminder{
		UserID:       reminder.UserID,
		ReminderTime: reminder.ReminderTime,
		IsActive:     reminder.IsActive,
		Message:      reminder.Message,
		CreatedAt:    reminder.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert reminder: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ReminderRepository) FindByID(ctx context.Context, reminderID, userID string) (*domain.Reminder, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(reminderID)
	if err != nil {
		return nil, domain.ErrReminderNotFound
	}

	var m mongoReminder
	err = r.col.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReminderNotFound
		}
		return nil, fmt.Errorf("find reminder: %w", err)
	}
	return m.toDomain(), nil
}

func (r *ReminderRepository) Update(ctx context.Context, reminder *domain.Reminder) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(reminder.ID)
	if err != nil {
		return domain.ErrReminderNotFound
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid, "user_id": reminder.UserID},
		bson.M{"$set": bson.M{
			"reminder_time": reminder.ReminderTime,
			"is_active":     reminder.IsActive,
			"message":       reminder.Message,
		}})
	if err != nil {
		return fmt.Errorf("update reminder: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrReminderNotFound
	}
	return nil
}

// Deactivate flips is_active to false, leaving the row in place. The filter
// does not check is_active, so repeating the call still succeeds.
func (r *ReminderRepository) Deactivate(ctx context.Context, reminderID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(reminderID)
	if err != nil {
		return domain.ErrReminderNotFound
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": bson.M{"is_active": false}})
	if err != nil {
		return fmt.Errorf("deactivate reminder: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrReminderNotFound
	}
	return nil
}

func (r *ReminderRepository) DeleteAllByUser(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("delete reminders: %w", err)
	}
	return nil
}

func (r *ReminderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	})
	return err
}
