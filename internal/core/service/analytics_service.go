package service

import (
	"context"
	"encoding/json"
	"math"

	"github.com/rs/zerolog"

	"github.com/somnia/sleep-tracker-api/internal/core/ports"
)

// AnalyticsService computes aggregate statistics and rule-based
// recommendations over a user's sleep records. Statistics are cached per user
// and invalidated by SleepService on every mutation.
type AnalyticsService struct {
	records ports.SleepRepository
	cache   StatsCache
	log     zerolog.Logger
}

func NewAnalyticsService(records ports.SleepRepository, cache StatsCache, log zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{records: records, cache: cache, log: log}
}

func (s *AnalyticsService) Statistics(ctx context.Context, userID string) (*ports.Statistics, error) {
	if cached := s.cachedStats(ctx, userID); cached != nil {
		return cached, nil
	}

	records, err := s.records.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &ports.Statistics{}, nil
	}

	var totalDuration, totalQuality float64
	maxDuration := records[0].Duration
	minDuration := records[0].Duration
	for _, r := range records {
		totalDuration += r.Duration
		totalQuality += float64(r.Quality)
		if r.Duration > maxDuration {
			maxDuration = r.Duration
		}
		if r.Duration < minDuration {
			minDuration = r.Duration
		}
	}

	n := float64(len(records))
	stats := &ports.Statistics{
		TotalRecords:    len(records),
		AverageDuration: round2(totalDuration / n),
		AverageQuality:  round2(totalQuality / n),
		MaxDuration:     round2(maxDuration),
		MinDuration:     round2(minDuration),
	}

	s.storeStats(ctx, userID, stats)
	return stats, nil
}

func (s *AnalyticsService) Recommendations(ctx context.Context, userID string) (*ports.Recommendations, error) {
	records, err := s.records.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &ports.Recommendations{
			Recommendations: []string{"Start logging your sleep to receive personal recommendations"},
		}, nil
	}

	var totalDuration, totalQuality float64
	for _, r := range records {
		totalDuration += r.Duration
		totalQuality += float64(r.Quality)
	}
	n := float64(len(records))
	avgDuration := totalDuration / n
	avgQuality := totalQuality / n

	var recs []string
	switch {
	case avgDuration < 7:
		recs = append(recs, "Try to get at least 7-8 hours of sleep per night")
	case avgDuration > 9:
		recs = append(recs, "You may be sleeping too much, try cutting back to around 8 hours")
	default:
		recs = append(recs, "Great sleep duration, keep it up!")
	}

	switch {
	case avgQuality < 5:
		recs = append(recs,
			"Your sleep quality is low. Try airing out the bedroom before bed",
			"Avoid screens for an hour before going to sleep")
	case avgQuality < 7:
		recs = append(recs, "Sleep quality is average and could improve. Keep a consistent sleep schedule")
	default:
		recs = append(recs, "Excellent sleep quality!")
	}

	recs = append(recs, "Try to go to bed at the same time every day")

	return &ports.Recommendations{
		AverageDuration: round2(avgDuration),
		AverageQuality:  round2(avgQuality),
		Recommendations: recs,
	}, nil
}

// cachedStats returns the cached aggregate, or nil on miss or any cache
// problem. Cache failures are logged and otherwise ignored.
func (s *AnalyticsService) cachedStats(ctx context.Context, userID string) *ports.Statistics {
	if s.cache == nil {
		return nil
	}
	payload, err := s.cache.Get(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("statistics cache read failed")
		return nil
	}
	if payload == nil {
		return nil
	}
	var stats ports.Statistics
	if err := json.Unmarshal(payload, &stats); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("statistics cache entry corrupt")
		return nil
	}
	return &stats
}

func (s *AnalyticsService) storeStats(ctx context.Context, userID string, stats *ports.Statistics) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, userID, payload); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("statistics cache write failed")
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
