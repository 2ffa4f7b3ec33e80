package api

import (
	"encoding/json"
	"net/http"

	"github.com/shaiso/Mnemo/internal/music"
	"github.com/shaiso/Mnemo/internal/telemetry"
)

// GenerateMusic создаёт учебный трек.
// POST /api/music/generate
func (h *Handler) GenerateMusic(w http.ResponseWriter, r *http.Request) {
	var req MusicGenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}

	if req.Genre == "" {
		BadRequest(w, "genre is required")
		return
	}
	if req.Topic == "" {
		BadRequest(w, "topic is required")
		return
	}

	result, err := h.music.Generate(r.Context(), &music.GenerateRequest{
		Genre:        req.Genre,
		Duration:     req.Duration,
		Topic:        req.Topic,
		CustomPrompt: req.CustomPrompt,
		TestMode:     req.TestMode,
		Poll:         true,
	})
	if HandleProviderError(w, h.logger, err) {
		return
	}

	telemetry.WithTrackID(h.logger, result.TrackID).Info("track generated",
		"status", result.Status,
		"genre", result.Genre,
	)

	Success(w, MusicResultToResponse(result))
}

// GetTask возвращает статус composition task провайдера.
// GET /api/music/tasks/{task_id}
func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID := r.PathValue("task_id")
	if taskID == "" {
		BadRequest(w, "task id is required")
		return
	}

	task, err := h.music.TaskStatus(r.Context(), taskID)
	if HandleProviderError(w, h.logger, err) {
		return
	}

	Success(w, TaskToResponse(task))
}

// GetTrack возвращает статус трека с текстом песни.
// GET /api/music/track/{track_id}
func (h *Handler) GetTrack(w http.ResponseWriter, r *http.Request) {
	trackID := r.PathValue("track_id")
	if trackID == "" {
		BadRequest(w, "track id is required")
		return
	}

	result, err := h.music.TrackStatus(r.Context(), trackID)
	if HandleProviderError(w, h.logger, err) {
		return
	}

	Success(w, TrackResultToResponse(result))
}
