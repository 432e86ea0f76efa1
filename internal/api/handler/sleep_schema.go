package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createSleepRecordRequest struct {
	SleepStart time.Time `json:"sleep_start" validate:"required"`
	SleepEnd   time.Time `json:"sleep_end"   validate:"required"`
	Quality    int       `json:"quality"     validate:"required,gte=1,lte=10"`
	DeepSleep  *float64  `json:"deep_sleep"  validate:"omitempty,gte=0"`
	LightSleep *float64  `json:"light_sleep" validate:"omitempty,gte=0"`
	RemSleep   *float64  `json:"rem_sleep"   validate:"omitempty,gte=0"`
}

// updateSleepRecordRequest has partial-update semantics: absent fields keep
// their stored values. Range checks only apply to fields actually supplied.
type updateSleepRecordRequest struct {
	SleepStart *time.Time `json:"sleep_start"`
	SleepEnd   *time.Time `json:"sleep_end"`
	Quality    *int       `json:"quality"     validate:"omitempty,gte=1,lte=10"`
	DeepSleep  *float64   `json:"deep_sleep"  validate:"omitempty,gte=0"`
	LightSleep *float64   `json:"light_sleep" validate:"omitempty,gte=0"`
	RemSleep   *float64   `json:"rem_sleep"   validate:"omitempty,gte=0"`
}

type createNoteRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

type sleepRecordResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	SleepDate  time.Time `json:"sleep_date"`
	SleepStart time.Time `json:"sleep_start"`
	SleepEnd   time.Time `json:"sleep_end"`
	Duration   float64   `json:"duration"`
	Quality    int       `json:"quality"`
	DeepSleep  *float64  `json:"deep_sleep"`
	LightSleep *float64  `json:"light_sleep"`
	RemSleep   *float64  `json:"rem_sleep"`
	CreatedAt  time.Time `json:"created_at"`
}

type noteResponse struct {
	ID            string    `json:"id"`
	SleepRecordID string    `json:"sleep_record_id"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
}
