package ports

import "context"

// Statistics is the aggregate view over a user's sleep records. Averages and
// extremes are rounded to two decimals.
type Statistics struct {
	TotalRecords    int     `json:"total_records"`
	AverageDuration float64 `json:"average_duration"`
	AverageQuality  float64 `json:"average_quality"`
	MaxDuration     float64 `json:"max_duration"`
	MinDuration     float64 `json:"min_duration"`
}

// Recommendations pairs the computed averages with rule-based advice texts.
type Recommendations struct {
	AverageDuration float64  `json:"average_duration"`
	AverageQuality  float64  `json:"average_quality"`
	Recommendations []string `json:"recommendations"`
}

type AnalyticsService interface {
	Statistics(ctx context.Context, userID string) (*Statistics, error)
	Recommendations(ctx context.Context, userID string) (*Recommendations, error)
}
