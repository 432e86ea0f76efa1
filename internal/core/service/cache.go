package service

import "context"

// StatsCache abstracts the per-user statistics cache (Redis). Implementations
// must treat a missing key as (nil, nil), not as an error.
type StatsCache interface {
	Get(ctx context.Context, userID string) ([]byte, error)
	Set(ctx context.Context, userID string, payload []byte) error
	Invalidate(ctx context.Context, userID string) error
}
