package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/somnia/sleep-tracker-api/internal/core/domain"
)

const collectionGoals = "goals"

type GoalRepository struct {
	col *mongo.Collection
}

func NewGoalRepository(db *mongo.Database) *GoalRepository {
	return &GoalRepository{col: db.Collection(collectionGoals)}
}

type mongoGoal struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserID         string             `bson:"user_id"`
	TargetDuration float64            `bson:"target_duration"`
	TargetQuality  int                `bson:"target_quality"`
	Description    string             `bson:"description,omitempty"`
	CreatedAt      time.Time          `bson:"created_at"`
}

func (m mongoGoal) toDomain() *domain.Goal {
	return &domain.Goal{
		ID:             m.ID.Hex(),
		UserID:         m.UserID,
		TargetDuration: m.TargetDuration,
		TargetQuality:  m.TargetQuality,
		Description:    m.Description,
		CreatedAt:      m.CreatedAt.UTC(),
	}
}

func (r *GoalRepository) Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoGoal{
		UserID:         goal.UserID,
		TargetDuration: goal.TargetDuration,
		TargetQuality:  goal.TargetQuality,
		Description:    goal.Description,
		CreatedAt:      goal.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *GoalRepository) FindByID(ctx context.Context, goalID, userID string) (*domain.Goal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(goalID)
	if err != nil {
		return nil, domain.ErrGoalNotFound
	}

	var m mongoGoal
	err = r.col.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, fmt.Errorf("find goal: %w", err)
	}
	return m.toDomain(), nil
}

// FindAllByUser returns the user's goals, newest first.
func (r *GoalRepository) FindAllByUser(ctx context.Context, userID string) ([]domain.Goal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Goal
	for cur.Next(ctx) {
		var m mongoGoal
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode goal: %w", err)
		}
		out = append(out, *m.toDomain())
	}
	return out, cur.Err()
}

func (r *GoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(goal.ID)
	if err != nil {
		return domain.ErrGoalNotFound
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid, "user_id": goal.UserID},
		bson.M{"$set": bson.M{
			"target_duration": goal.TargetDuration,
			"target_quality":  goal.TargetQuality,
			"description":     goal.Description,
		}})
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}

func (r *GoalRepository) Delete(ctx context.Context, goalID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(goalID)
	if err != nil {
		return domain.ErrGoalNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}

func (r *GoalRepository) DeleteAllByUser(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("delete goals: %w", err)
	}
	return nil
}

func (r *GoalRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	return err
}
