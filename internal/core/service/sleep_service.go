package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/somnia/sleep-tracker-api/internal/core/domain"
	"github.com/somnia/sleep-tracker-api/internal/core/ports"
)

// SleepService orchestrates the sleep-record lifecycle: cross-field
// validation, duration derivation, ownership-scoped access, note attachment
// and statistics-cache invalidation.
type SleepService struct {
	repo  ports.SleepRepository
	cache StatsCache
	log   zerolog.Logger
}

func NewSleepService(repo ports.SleepRepository, cache StatsCache, log zerolog.Logger) *SleepService {
	return &SleepService{repo: repo, cache: cache, log: log}
}

func (s *SleepService) Create(ctx context.Context, userID string, in ports.CreateSleepRecordInput) (*domain.SleepRecord, error) {
	if verr := domain.ValidateSleepSpan(in.SleepStart, in.SleepEnd, in.DeepSleep, in.LightSleep, in.RemSleep); verr != nil {
		return nil, verr
	}

	now := time.Now().UTC()
	record := &domain.SleepRecord{
		UserID:     userID,
		SleepDate:  now,
		SleepStart: in.SleepStart,
		SleepEnd:   in.SleepEnd,
		Duration:   domain.SleepDuration(in.SleepStart, in.SleepEnd),
		Quality:    in.Quality,
		DeepSleep:  in.DeepSleep,
		LightSleep: in.LightSleep,
		RemSleep:   in.RemSleep,
		CreatedAt:  now,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, userID)
	s.log.Info().Str("record_id", created.ID).Str("user_id", userID).Msg("sleep record created")
	return created, nil
}

func (s *SleepService) Get(ctx context.Context, userID, recordID string) (*domain.SleepRecord, error) {
	return s.repo.FindByID(ctx, recordID, userID)
}

func (s *SleepService) List(ctx context.Context, userID string) ([]domain.SleepRecord, error) {
	return s.repo.FindAllByUser(ctx, userID)
}

// Update applies the supplied fields, re-runs the cross-field checks on the
// merged record and recomputes the duration when the span changed.
func (s *SleepService) Update(ctx context.Context, userID, recordID string, in ports.UpdateSleepRecordInput) (*domain.SleepRecord, error) {
	record, err := s.repo.FindByID(ctx, recordID, userID)
	if err != nil {
		return nil, err
	}

	if in.SleepStart != nil {
		record.SleepStart = *in.SleepStart
	}
	if in.SleepEnd != nil {
		record.SleepEnd = *in.SleepEnd
	}
	if in.Quality != nil {
		record.Quality = *in.Quality
	}
	if in.DeepSleep != nil {
		record.DeepSleep = in.DeepSleep
	}
	if in.LightSleep != nil {
		record.LightSleep = in.LightSleep
	}
	if in.RemSleep != nil {
		record.RemSleep = in.RemSleep
	}

	if verr := domain.ValidateSleepSpan(record.SleepStart, record.SleepEnd, record.DeepSleep, record.LightSleep, record.RemSleep); verr != nil {
		return nil, verr
	}
	if in.SleepStart != nil || in.SleepEnd != nil {
		record.Duration = domain.SleepDuration(record.SleepStart, record.SleepEnd)
	}

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, userID)
	return record, nil
}

func (s *SleepService) Delete(ctx context.Context, userID, recordID string) error {
	if err := s.repo.Delete(ctx, recordID, userID); err != nil {
		return err
	}
	s.invalidateStats(ctx, userID)
	return nil
}

// AddNote attaches a note to one of the user's records. The ownership check
// happens by fetching the record first, so a foreign record yields not-found.
func (s *SleepService) AddNote(ctx context.Context, userID, recordID, content string) (*domain.Note, error) {
	record, err := s.repo.FindByID(ctx, recordID, userID)
	if err != nil {
		return nil, err
	}

	note := &domain.Note{
		SleepRecordID: record.ID,
		Content:       content,
		CreatedAt:     time.Now().UTC(),
	}
	return s.repo.InsertNote(ctx, note)
}

// invalidateStats drops the cached aggregate after a mutation. Cache failures
// never surface to the caller.
func (s *SleepService) invalidateStats(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to invalidate statistics cache")
	}
}
