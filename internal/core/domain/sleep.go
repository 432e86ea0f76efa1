package domain

import (
	"fmt"
	"time"
)

// SleepRecord is one logged sleep session. Duration is always derived from
// the start/end pair and never taken from client input.
type SleepRecord struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	SleepDate  time.Time `json:"sleep_date"`
	SleepStart time.Time `json:"sleep_start"`
	SleepEnd   time.Time `json:"sleep_end"`
	Duration   float64   `json:"duration"`
	Quality    int       `json:"quality"` // 1–10 scale
	DeepSleep  *float64  `json:"deep_sleep"`
	LightSleep *float64  `json:"light_sleep"`
	RemSleep   *float64  `json:"rem_sleep"`
	CreatedAt  time.Time `json:"created_at"`
}

// Note is a free-text annotation attached to a single sleep record.
type Note struct {
	ID            string    `json:"id"`
	SleepRecordID string    `json:"sleep_record_id"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
}

// SleepDuration returns the length of the session in hours.
func SleepDuration(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}

// ValidateSleepSpan enforces the cross-field rules on a (possibly merged)
// record: end must be strictly after start, and the supplied phase durations
// must fit inside the total duration. Missing phases count as zero; a phase
// sum exactly equal to the duration is accepted.
func ValidateSleepSpan(start, end time.Time, deep, light, rem *float64) *ValidationError {
	if !end.After(start) {
		return NewValidationError("sleep_end", "must be after sleep_start")
	}

	total := SleepDuration(start, end)
	phases := phaseOrZero(deep) + phaseOrZero(light) + phaseOrZero(rem)
	if phases > total {
		return NewValidationError("rem_sleep", fmt.Sprintf(
			"sleep phases add up to %.2f h, exceeding the total duration of %.2f h", phases, total))
	}
	return nil
}

func phaseOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
