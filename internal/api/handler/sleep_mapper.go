package handler

import (
	"github.com/somnia/sleep-tracker-api/internal/core/domain"
	"github.com/somnia/sleep-tracker-api/internal/core/ports"
)

// --- Request → Service input ---

func toSleepCreateInput(req createSleepRecordRequest) ports.CreateSleepRecordInput {
	return ports.CreateSleepRecordInput{
		SleepStart: req.SleepStart,
		SleepEnd:   req.SleepEnd,
		Quality:    req.Quality,
		DeepSleep:  req.DeepSleep,
		LightSleep: req.LightSleep,
		RemSleep:   req.RemSleep,
	}
}

func toSleepUpdateInput(req updateSleepRecordRequest) ports.UpdateSleepRecordInput {
	return ports.UpdateSleepRecordInput{
		SleepStart: req.SleepStart,
		SleepEnd:   req.SleepEnd,
		Quality:    req.Quality,
		DeepSleep:  req.DeepSleep,
		LightSleep: req.LightSleep,
		RemSleep:   req.RemSleep,
	}
}

// --- Domain → HTTP response ---

func toSleepResponse(r *domain.SleepRecord) sleepRecordResponse {
	return sleepRecordResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		SleepDate:  r.SleepDate.UTC(),
		SleepStart: r.SleepStart.UTC(),
		SleepEnd:   r.SleepEnd.UTC(),
		Duration:   r.Duration,
		Quality:    r.Quality,
		DeepSleep:  r.DeepSleep,
		LightSleep: r.LightSleep,
		RemSleep:   r.RemSleep,
		CreatedAt:  r.CreatedAt.UTC(),
	}
}

func toSleepListResponse(records []domain.SleepRecord) []sleepRecordResponse {
	out := make([]sleepRecordResponse, len(records))
	for i := range records {
		out[i] = toSleepResponse(&records[i])
	}
	return out
}

func toNoteResponse(n *domain.Note) noteResponse {
	return noteResponse{
		ID:            n.ID,
		SleepRecordID: n.SleepRecordID,
		Content:       n.Content,
		CreatedAt:     n.CreatedAt.UTC(),
	}
}
