package api

import (
	"github.com/shaiso/Mnemo/internal/beatoven"
	"github.com/shaiso/Mnemo/internal/music"
)

// MusicGenerationRequest — запрос POST /api/music/generate.
type MusicGenerationRequest struct {
	Genre        string `json:"genre"`
	Duration     int    `json:"duration"`
	Topic        string `json:"topic"`
	CustomPrompt string `json:"custom_prompt,omitempty"`
	TestMode     bool   `json:"test_mode,omitempty"`
}

// MusicGenerationResponse — ответ POST /api/music/generate.
type MusicGenerationResponse struct {
	OutputURL      string `json:"output_url"`
	Genre          string `json:"genre"`
	PromptUsed     string `json:"prompt_used"`
	TrackID        string `json:"track_id,omitempty"`
	TaskID         string `json:"task_id,omitempty"`
	Status         string `json:"status"`
	Version        int    `json:"version,omitempty"`
	BeatovenStatus string `json:"beatoven_status,omitempty"`
	Title          string `json:"title"`
	Lyrics         string `json:"lyrics"`
}

// MusicResultToResponse конвертирует результат сервиса в DTO.
func MusicResultToResponse(result *music.Result) MusicGenerationResponse {
	return MusicGenerationResponse{
		OutputURL:      result.OutputURL,
		Genre:          result.Genre,
		PromptUsed:     result.PromptUsed,
		TrackID:        result.TrackID,
		TaskID:         result.TaskID,
		Status:         string(result.Status),
		Version:        result.Version,
		BeatovenStatus: result.ProviderStatus,
		Title:          result.Title,
		Lyrics:         result.Lyrics,
	}
}

// TaskStatusResponse — ответ GET /api/music/tasks/{task_id}.
type TaskStatusResponse struct {
	TaskID    string            `json:"task_id"`
	Status    string            `json:"status"`
	TrackURL  string            `json:"track_url,omitempty"`
	Stems     map[string]string `json:"stems,omitempty"`
	ProjectID string            `json:"project_id,omitempty"`
	TrackID   string            `json:"track_id,omitempty"`
}

// TaskToResponse конвертирует task провайдера в DTO.
func TaskToResponse(task *beatoven.Task) TaskStatusResponse {
	return TaskStatusResponse{
		TaskID:    task.TaskID,
		Status:    task.Status,
		TrackURL:  task.TrackURL,
		Stems:     task.Stems,
		ProjectID: task.ProjectID,
		TrackID:   task.TrackID,
	}
}

// TrackStatusResponse — ответ GET /api/music/track/{track_id}.
type TrackStatusResponse struct {
	TrackID    string `json:"track_id"`
	Status     string `json:"status"`
	PreviewURL string `json:"preview_url,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
	Title      string `json:"title"`
	Lyrics     string `json:"lyrics"`
	IsReady    bool   `json:"is_ready"`
}

// TrackResultToResponse конвертирует статус трека в DTO.
func TrackResultToResponse(result *music.TrackResult) TrackStatusResponse {
	return TrackStatusResponse{
		TrackID:    result.TrackID,
		Status:     result.Status,
		PreviewURL: result.PreviewURL,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
		Title:      result.Title,
		Lyrics:     result.Lyrics,
		IsReady:    result.IsReady,
	}
}

// GenerateRequest — запрос POST /api/generate.
type GenerateRequest struct {
	Input         string `json:"input"`
	Model         string `json:"model,omitempty"`
	Genre         string `json:"genre,omitempty"`
	Duration      int    `json:"duration,omitempty"`
	LearningTopic string `json:"learning_topic,omitempty"`
	TestMode      bool   `json:"test_mode,omitempty"`
}

// GenerateResponse — ответ POST /api/generate.
type GenerateResponse struct {
	Output    string `json:"output"`
	Type      string `json:"type"`
	ModelUsed string `json:"model_used"`
	Title     string `json:"title,omitempty"`
	Lyrics    string `json:"lyrics,omitempty"`
	VideoURL  string `json:"video_url,omitempty"`
}

// HealthResponse — ответ GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}

// ModelsResponse — ответ GET /api/models.
type ModelsResponse struct {
	Models any `json:"models"`
}
