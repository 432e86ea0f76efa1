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

const (
	collectionSleepRecords = "sleep_records"
	collectionNotes        = "notes"
)

type SleepRepository struct {
	records *mongo.Collection
	notes   *mongo.Collection
}

func NewSleepRepository(db *mongo.Database) *SleepRepository {
	return &SleepRepository{
		records: db.Collection(collectionSleepRecords),
		notes:   db.Collection(collectionNotes),
	}
}

type mongoSleepRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"user_id"`
	SleepDate  time.Time          `bson:"sleep_date"`
	SleepStart time.Time          `bson:"sleep_start"`
	SleepEnd   time.Time          `bson:"sleep_end"`
	Duration   float64            `bson:"duration"`
	Quality    int                `bson:"quality"`
	DeepSleep  *float64           `bson:"deep_sleep,omitempty"`
	LightSleep *float64           `bson:"light_sleep,omitempty"`
	RemSleep   *float64           `bson:"rem_sleep,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (m mongoSleepRecord) toDomain() *domain.SleepRecord {
	return &domain.SleepRecord{
		ID:         m.ID.Hex(),
		UserID:     m.UserID,
		SleepDate:  m.SleepDate.UTC(),
		SleepStart: m.SleepStart.UTC(),
		SleepEnd:   m.SleepEnd.UTC(),
		Duration:   m.Duration,
		Quality:    m.Quality,
		DeepSleep:  m.DeepSleep,
		LightSleep: m.LightSleep,
		RemSleep:   m.RemSleep,
		CreatedAt:  m.CreatedAt.UTC(),
	}
}

type mongoNote struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	SleepRecordID string             `bson:"sleep_record_id"`
	Content       string             `bson:"content"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func (r *SleepRepository) Create(ctx context.Context, record *domain.SleepRecord) (*domain.SleepRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoSleepRecord{
		UserID:     record.UserID,
		SleepDate:  record.SleepDate,
		SleepStart: record.SleepStart,
		SleepEnd:   record.SleepEnd,
		Duration:   record.Duration,
		Quality:    record.Quality,
		DeepSleep:  record.DeepSleep,
		LightSleep: record.LightSleep,
		RemSleep:   record.RemSleep,
		CreatedAt:  record.CreatedAt,
	}

	res, err := r.records.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert sleep record: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// FindByID retrieves a record scoped to its owner. A record owned by another
// user is reported as not found.
func (r *SleepRepository) FindByID(ctx context.Context, recordID, userID string) (*domain.SleepRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return nil, domain.ErrRecordNotFound
	}

	var m mongoSleepRecord
	err = r.records.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("find sleep record: %w", err)
	}
	return m.toDomain(), nil
}

// FindAllByUser returns the user's records, newest sleep date first.
func (r *SleepRepository) FindAllByUser(ctx context.Context, userID string) ([]domain.SleepRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "sleep_date", Value: -1}})
	cur, err := r.records.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list sleep records: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.SleepRecord
	for cur.Next(ctx) {
		var m mongoSleepRecord
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode sleep record: %w", err)
		}
		out = append(out, *m.toDomain())
	}
	return out, cur.Err()
}

func (r *SleepRepository) Update(ctx context.Context, record *domain.SleepRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(record.ID)
	if err != nil {
		return domain.ErrRecordNotFound
	}

	res, err := r.records.UpdateOne(ctx,
		bson.M{"_id": oid, "user_id": record.UserID},
		bson.M{"$set": bson.M{
			"sleep_start": record.SleepStart,
			"sleep_end":   record.SleepEnd,
			"duration":    record.Duration,
			"quality":     record.Quality,
			"deep_sleep":  record.DeepSleep,
			"light_sleep": record.LightSleep,
			"rem_sleep":   record.RemSleep,
		}})
	if err != nil {
		return fmt.Errorf("update sleep record: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// Delete removes the record and every note attached to it.
func (r *SleepRepository) Delete(ctx context.Context, recordID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return domain.ErrRecordNotFound
	}

	res, err := r.records.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete sleep record: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRecordNotFound
	}

	if _, err := r.notes.DeleteMany(ctx, bson.M{"sleep_record_id": recordID}); err != nil {
		return fmt.Errorf("delete notes: %w", err)
	}
	return nil
}

// DeleteAllByUser removes every record the user owns, notes included.
func (r *SleepRepository) DeleteAllByUser(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.records.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return fmt.Errorf("list sleep records: %w", err)
	}
	defer cur.Close(ctx)

	var ids []string
	for cur.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return fmt.Errorf("decode sleep record id: %w", err)
		}
		ids = append(ids, doc.ID.Hex())
	}
	if err := cur.Err(); err != nil {
		return err
	}

	if len(ids) > 0 {
		if _, err := r.notes.DeleteMany(ctx, bson.M{"sleep_record_id": bson.M{"$in": ids}}); err != nil {
			return fmt.Errorf("delete notes: %w", err)
		}
	}
	if _, err := r.records.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("delete sleep records: %w", err)
	}
	return nil
}

func (r *SleepRepository) InsertNote(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoNote{
		SleepRecordID: note.SleepRecordID,
		Content:       note.Content,
		CreatedAt:     note.CreatedAt,
	}

	res, err := r.notes.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}

	return &domain.Note{
		ID:            res.InsertedID.(primitive.ObjectID).Hex(),
		SleepRecordID: doc.SleepRecordID,
		Content:       doc.Content,
		CreatedAt:     doc.CreatedAt,
	}, nil
}

// EnsureIndexes creates the lookup indexes for records and notes.
func (r *SleepRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.records.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "sleep_date", Value: -1}}},
	})
	if err != nil {
		return err
	}

	_, err = r.notes.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "sleep_record_id", Value: 1}}},
	})
	return err
}
