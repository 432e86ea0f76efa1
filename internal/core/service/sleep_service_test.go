package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/somnia/sleep-tracker-api/internal/core/domain"
	"github.com/somnia/sleep-tracker-api/internal/core/ports"
)

type stubSleepRepo struct {
	records map[string]*domain.SleepRecord
	notes   []*domain.Note
	nextID  int
}

func newStubSleepRepo() *stubSleepRepo {
	return &stubSleepRepo{records: make(map[string]*domain.SleepRecord)}
}

func cloneRecord(r *domain.SleepRecord) *domain.SleepRecord {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}

func (r *stubSleepRepo) Create(_ context.Context, record *domain.SleepRecord) (*domain.SleepRecord, error) {
	copy := cloneRecord(record)
	r.nextID++
	copy.ID = "rec-" + strconv.Itoa(r.nextID)
	r.records[copy.ID] = cloneRecord(copy)
	return copy, nil
}

func (r *stubSleepRepo) FindByID(_ context.Context, recordID, userID string) (*domain.SleepRecord, error) {
	rec, ok := r.records[recordID]
	if !ok || rec.UserID != userID {
		return nil, domain.ErrRecordNotFound
	}
	return cloneRecord(rec), nil
}

func (r *stubSleepRepo) FindAllByUser(_ context.Context, userID string) ([]domain.SleepRecord, error) {
	var out []domain.SleepRecord
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *stubSleepRepo) Update(_ context.Context, record *domain.SleepRecord) error {
	existing, ok := r.records[record.ID]
	if !ok || existing.UserID != record.UserID {
		return domain.ErrRecordNotFound
	}
	r.records[record.ID] = cloneRecord(record)
	return nil
}

func (r *stubSleepRepo) Delete(_ context.Context, recordID, userID string) error {
	rec, ok := r.records[recordID]
	if !ok || rec.UserID != userID {
		return domain.ErrRecordNotFound
	}
	delete(r.records, recordID)
	kept := r.notes[:0]
	for _, n := range r.notes {
		if n.SleepRecordID != recordID {
			kept = append(kept, n)
		}
	}
	r.notes = kept
	return nil
}

func (r *stubSleepRepo) DeleteAllByUser(_ context.Context, userID string) error {
	for id, rec := range r.records {
		if rec.UserID == userID {
			_ = r.Delete(context.Background(), id, userID)
		}
	}
	return nil
}

func (r *stubSleepRepo) InsertNote(_ context.Context, note *domain.Note) (*domain.Note, error) {
	copy := *note
	r.nextID++
	copy.ID = "note-" + strconv.Itoa(r.nextID)
	r.notes = append(r.notes, &copy)
	return &copy, nil
}

// memStatsCache records cache traffic so tests can assert on invalidations.
type memStatsCache struct {
	entries       map[string][]byte
	invalidations int
}

func newMemStatsCache() *memStatsCache {
	return &memStatsCache{entries: make(map[string][]byte)}
}

func (c *memStatsCache) Get(_ context.Context, userID string) ([]byte, error) {
	if payload, ok := c.entries[userID]; ok {
		return payload, nil
	}
	return nil, nil
}

func (c *memStatsCache) Set(_ context.Context, userID string, payload []byte) error {
	c.entries[userID] = payload
	return nil
}

func (c *memStatsCache) Invalidate(_ context.Context, userID string) error {
	delete(c.entries, userID)
	c.invalidations++
	return nil
}

func newTestSleepService(repo *stubSleepRepo, cache *memStatsCache) *SleepService {
	return NewSleepService(repo, cache, zerolog.Nop())
}

func ptr[T any](v T) *T { return &v }

func sleepSpan(hours float64) (time.Time, time.Time) {
	start := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	return start, start.Add(time.Duration(hours * float64(time.Hour)))
}

func TestSleepService_Create_DerivesDuration(t *testing.T) {
	repo := newStubSleepRepo()
	svc := newTestSleepService(repo, newMemStatsCache())

	start, end := sleepSpan(7.5)
	record, err := svc.Create(context.Background(), "user-1", ports.CreateSleepRecordInput{
		SleepStart: start,
		SleepEnd:   end,
		Quality:    8,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if record.Duration != 7.5 {
		t.Fatalf("expected duration 7.5, got %v", record.Duration)
	}
	if record.UserID != "user-1" {
		t.Fatalf("unexpected owner: %s", record.UserID)
	}
	if record.SleepDate.IsZero() {
		t.Fatalf("expected sleep_date to be set")
	}
}

func TestSleepService_Create_EndBeforeStart(t *testing.T) {
	svc := newTestSleepService(newStubSleepRepo(), newMemStatsCache())

	start, end := sleepSpan(8)
	_, err := svc.Create(context.Background(), "user-1", ports.CreateSleepRecordInput{
		SleepStart: end,
		SleepEnd:   start,
		Quality:    8,
	})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "sleep_end" {
		t.Fatalf("expected sleep_end violation, got %s", verr.Field)
	}
}

func TestSleepService_Create_PhasesExceedDuration(t *testing.T) {
	svc := newTestSleepService(newStubSleepRepo(), newMemStatsCache())

	start, end := sleepSpan(6)
	_, err := svc.Create(context.Background(), "user-1", ports.CreateSleepRecordInput{
		SleepStart: start,
		SleepEnd:   end,
		Quality:    8,
		DeepSleep:  ptr(3.0),
		LightSleep: ptr(3.0),
		RemSleep:   ptr(1.0),
	})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "rem_sleep" {
		t.Fatalf("expected rem_sleep violation, got %s", verr.Field)
	}
}

func TestSleepService_Create_PhasesEqualDurationAccepted(t *testing.T) {
	svc := newTestSleepService(newStubSleepRepo(), newMemStatsCache())

	start, end := sleepSpan(8)
	if _, err := svc.Create(context.Background(), "user-1", ports.CreateSleepRecordInput{
		SleepStart: start,
		SleepEnd:   end,
		Quality:    8,
		DeepSleep:  ptr(4.0),
		LightSleep: ptr(3.0),
		RemSleep:   ptr(1.0),
	}); err != nil {
		t.Fatalf("expected phases equal to duration to pass, got %v", err)
	}
}

func TestSleepService_Get_ForeignRecord(t *testing.T) {
	repo := newStubSleepRepo()
	svc := newTestSleepService(repo, newMemStatsCache())

	start, end := sleepSpan(8)
	record, err := svc.Create(context.Background(), "user-1", ports.CreateSleepRecordInput{
		SleepStart: start, SleepEnd: end, Quality: 8,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.Get(context.Background(), "user-2", record.ID); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for foreign owner, got %v", err)
	}
}

func TestSleepService_Update_RecomputesDuration(t *testing.T) {
	repo := newStubSleepRepo()
	svc := newTestSleepService(repo, newMemStatsCache())

	start, end := sleepSpan(8)
	record, err := svc.Create(context.Background(), "user-1", ports.CreateSleepRecordInput{
		SleepStart: start, SleepEnd: end, Quality: 8,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	newEnd := start.Add(6 * time.Hour)
	updated, err := svc.Update(context.Background(), "user-1", record.ID, ports.UpdateSleepRecordInput{
		SleepEnd: &newEnd,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Duration != 6 {
		t.Fatalf("expected recomputed duration 6, got %v", updated.Duration)
	}
}

func TestSleepService_Update_MergedStateRevalidated(t *testing.T) {
	repo := newStubSleepRepo()
	svc := newTestSleepService(repo, newMemStatsCache())

	start, end := sleepSpan(8)
	record, err := svc.Create(context.Background(), "user-1", ports.CreateSleepRecordInput{
		SleepStart: start, SleepEnd: end, Quality: 8, DeepSleep: ptr(4.0),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// Stored deep sleep of 4h plus the new phases would exceed the 8h span.
	_, err = svc.Update(context.Background(), "user-1", record.ID, ports.UpdateSleepRecordInput{
		LightSleep: ptr(3.0),
		RemSleep:   ptr(2.0),
	})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError on merged record, got %v", err)
	}
	if verr.Field != "rem_sleep" {
		t.Fatalf("expected rem_sleep violation, got %s", verr.Field)
	}
}

func TestSleepService_Update_UnknownRecord(t *testing.T) {
	svc := newTestSleepService(newStubSleepRepo(), newMemStatsCache())

	if _, err := svc.Update(context.Background(), "user-1", "missing", ports.UpdateSleepRecordInput{
		Quality: ptr(5),
	}); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestSleepService_MutationsInvalidateStatsCache(t *testing.T) {
	repo := newStubSleepRepo()
	cache := newMemStatsCache()
	svc := newTestSleepService(repo, cache)

	start, end := sleepSpan(8)
	record, err := svc.Create(context.Background(), "user-1", ports.CreateSleepRecordInput{
		SleepStart: start, SleepEnd: end, Quality: 8,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if cache.invalidations != 1 {
		t.Fatalf("expected 1 invalidation after create, got %d", cache.invalidations)
	}

	if err := svc.Delete(context.Background(), "user-1", record.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if cache.invalidations != 2 {
		t.Fatalf("expected 2 invalidations after delete, got %d", cache.invalidations)
	}
}

func TestSleepService_AddNote(t *testing.T) {
	repo := newStubSleepRepo()
	svc := newTestSleepService(repo, newMemStatsCache())

	start, end := sleepSpan(8)
	record, err := svc.Create(context.Background(), "user-1", ports.CreateSleepRecordInput{
		SleepStart: start, SleepEnd: end, Quality: 8,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	note, err := svc.AddNote(context.Background(), "user-1", record.ID, "slept well")
	if err != nil {
		t.Fatalf("AddNote returned error: %v", err)
	}
	if note.SleepRecordID != record.ID {
		t.Fatalf("note attached to %s, want %s", note.SleepRecordID, record.ID)
	}

	if _, err := svc.AddNote(context.Background(), "user-2", record.ID, "intruder"); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for foreign record, got %v", err)
	}
}

func TestSleepService_DeleteRemovesNotes(t *testing.T) {
	repo := newStubSleepRepo()
	svc := newTestSleepService(repo, newMemStatsCache())

	start, end := sleepSpan(8)
	record, err := svc.Create(context.Background(), "user-1", ports.CreateSleepRecordInput{
		SleepStart: start, SleepEnd: end, Quality: 8,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.AddNote(context.Background(), "user-1", record.ID, "note"); err != nil {
		t.Fatalf("AddNote returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), "user-1", record.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(repo.notes) != 0 {
		t.Fatalf("expected notes to be removed with the record, %d left", len(repo.notes))
	}
}
