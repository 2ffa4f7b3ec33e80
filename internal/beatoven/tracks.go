package beatoven

import (
	"context"
	"net/http"
	"strings"

	"github.com/shaiso/Mnemo/internal/domain"
)

// CreateTrackRequest — заявка на композицию трека.
type CreateTrackRequest struct {
	Name         string `json:"name"`
	Duration     int    `json:"duration"`
	Genre        string `json:"genre"`
	CustomPrompt string `json:"customPrompt,omitempty"`
}

// Track — трек провайдера.
type Track struct {
	ID         string
	TaskID     string
	Name       string
	Duration   int
	Genre      string
	Status     string
	Version    int
	PreviewURL string
	CreatedAt  string
	UpdatedAt  string
}

// Ready возвращает true, если трек скомпонован и доступен как MP3.
func (t *Track) Ready() bool {
	return t.Status == domain.ProviderStatusCompleted &&
		strings.HasSuffix(t.PreviewURL, ".mp3")
}

// Failed возвращает true, если генерация завершилась неудачей.
func (t *Track) Failed() bool {
	return t.Status == domain.ProviderStatusFailed ||
		t.Status == domain.ProviderStatusError
}

// Task — статус composition task провайдера.
type Task struct {
	TaskID    string
	Status    string
	TrackURL  string
	Stems     map[string]string
	ProjectID string
	TrackID   string
}

// CreateTrack отправляет заявку на композицию.
//
// Провайдер должен вернуть track id и task id, но написание полей
// нестабильно — извлечение перебирает варианты и в крайнем случае
// синтезирует task id (см. extract.go).
func (c *Client) CreateTrack(ctx context.Context, req *CreateTrackRequest) (*Track, error) {
	data, err := c.doJSON(ctx, http.MethodPost, "/v1/tracks", req)
	if err != nil {
		return nil, err
	}

	track := trackFromData(data)
	track.TaskID = ExtractTaskID(data, track.ID)

	c.logger.Debug("track created",
		"track_id", track.ID,
		"task_id", track.TaskID,
		"status", track.Status,
	)

	return track, nil
}

// GetTrack возвращает текущий статус трека.
func (c *Client) GetTrack(ctx context.Context, trackID string) (*Track, error) {
	data, err := c.doJSON(ctx, http.MethodGet, "/v1/tracks/"+trackID, nil)
	if err != nil {
		return nil, err
	}
	return trackFromData(data), nil
}

// GetTask возвращает текущий статус composition task.
func (c *Client) GetTask(ctx context.Context, taskID string) (*Task, error) {
	data, err := c.doJSON(ctx, http.MethodGet, "/v1/tasks/"+taskID, nil)
	if err != nil {
		return nil, err
	}

	task := &Task{
		TaskID: taskID,
		Status: getString(data, "status"),
	}

	// Результаты task лежат во вложенном объекте meta.
	if meta, ok := data["meta"].(map[string]any); ok {
		task.TrackURL = getString(meta, "track_url")
		task.ProjectID = getString(meta, "project_id")
		task.TrackID = getString(meta, "track_id")
		task.Stems = stringMap(meta, "stems_url")
	}

	return task, nil
}

// trackFromData строит Track из сырого ответа провайдера.
func trackFromData(data map[string]any) *Track {
	return &Track{
		ID:         getString(data, "id"),
		Name:       getString(data, "name"),
		Duration:   getInt(data, "duration"),
		Genre:      getString(data, "genre"),
		Status:     getString(data, "status"),
		Version:    getInt(data, "version"),
		PreviewURL: getString(data, "previewUrl"),
		CreatedAt:  getString(data, "createdAt"),
		UpdatedAt:  getString(data, "updatedAt"),
	}
}
