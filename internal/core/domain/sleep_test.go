package domain

import (
	"testing"
	"time"
)

func span(hours float64) (time.Time, time.Time) {
	start := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	return start, start.Add(time.Duration(hours * float64(time.Hour)))
}

func fptr(v float64) *float64 { return &v }

func TestSleepDuration(t *testing.T) {
	start, end := span(7.5)
	if d := SleepDuration(start, end); d != 7.5 {
		t.Fatalf("expected 7.5, got %v", d)
	}
}

func TestValidateSleepSpan_EndNotAfterStart(t *testing.T) {
	start, _ := span(8)

	if err := ValidateSleepSpan(start, start, nil, nil, nil); err == nil || err.Field != "sleep_end" {
		t.Fatalf("expected sleep_end violation for equal times, got %v", err)
	}

	if err := ValidateSleepSpan(start, start.Add(-time.Hour), nil, nil, nil); err == nil || err.Field != "sleep_end" {
		t.Fatalf("expected sleep_end violation for reversed span, got %v", err)
	}
}

func TestValidateSleepSpan_Phases(t *testing.T) {
	start, end := span(8)

	if err := ValidateSleepSpan(start, end, fptr(4), fptr(3), fptr(1)); err != nil {
		t.Fatalf("phase sum equal to duration must pass: %v", err)
	}

	if err := ValidateSleepSpan(start, end, fptr(4), fptr(3), fptr(1.5)); err == nil || err.Field != "rem_sleep" {
		t.Fatalf("expected rem_sleep violation, got %v", err)
	}

	// Missing phases count as zero.
	if err := ValidateSleepSpan(start, end, nil, fptr(8), nil); err != nil {
		t.Fatalf("single phase filling the span must pass: %v", err)
	}
}
