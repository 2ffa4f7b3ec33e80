package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// --- Response types (дублируются из api/dto.go, CLI не импортирует internal/api) ---

// ModelResponse — модель из API.
type ModelResponse struct {
	ID       string `json:"id"`
	Provider string `json:"provider"`
	Type     string `json:"type"`
}

// GenreResponse — жанр из API.
type GenreResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MusicGenerationResponse — результат генерации трека из API.
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

// TaskStatusResponse — статус composition task из API.
type TaskStatusResponse struct {
	TaskID    string            `json:"task_id"`
	Status    string            `json:"status"`
	TrackURL  string            `json:"track_url,omitempty"`
	Stems     map[string]string `json:"stems,omitempty"`
	ProjectID string            `json:"project_id,omitempty"`
	TrackID   string            `json:"track_id,omitempty"`
}

// TrackStatusResponse — статус трека из API.
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

// --- Request types ---

// MusicGenerationRequest — заявка на генерацию трека.
type MusicGenerationRequest struct {
	Genre        string `json:"genre"`
	Duration     int    `json:"duration,omitempty"`
	Topic        string `json:"topic"`
	CustomPrompt string `json:"custom_prompt,omitempty"`
	TestMode     bool   `json:"test_mode,omitempty"`
}

// --- API error envelope ---

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// --- Client ---

// Client — HTTP-клиент для Mnemo API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиент для API.
//
// Таймаут покрывает и poll-цикл провайдера на стороне сервера,
// поэтому он заметно больше обычного.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 3 * time.Minute,
		},
	}
}

// ListModels возвращает каталог моделей.
func (c *Client) ListModels() ([]ModelResponse, error) {
	var envelope struct {
		Models []ModelResponse `json:"models"`
	}
	err := c.get("/api/models", &envelope)
	return envelope.Models, err
}

// ListGenres возвращает каталог жанров.
func (c *Client) ListGenres() ([]GenreResponse, error) {
	var genres []GenreResponse
	err := c.get("/api/music/genres", &genres)
	return genres, err
}

// GenerateMusic запускает генерацию трека.
func (c *Client) GenerateMusic(req MusicGenerationRequest) (*MusicGenerationResponse, error) {
	var result MusicGenerationResponse
	err := c.post("/api/music/generate", req, &result)
	return &result, err
}

// GetTask возвращает статус composition task.
func (c *Client) GetTask(taskID string) (*TaskStatusResponse, error) {
	var result TaskStatusResponse
	err := c.get("/api/music/tasks/"+taskID, &result)
	return &result, err
}

// GetTrack возвращает статус трека.
func (c *Client) GetTrack(trackID string) (*TrackStatusResponse, error) {
	var result TrackStatusResponse
	err := c.get("/api/music/track/"+trackID, &result)
	return &result, err
}

// --- HTTP helpers ---

func (c *Client) get(path string, result any) error {
	return c.doJSON(http.MethodGet, path, nil, result)
}

func (c *Client) post(path string, body any, result any) error {
	return c.doJSON(http.MethodPost, path, body, result)
}

// doJSON выполняет запрос и декодирует плоский JSON-ответ.
func (c *Client) doJSON(method, path string, body any, result any) error {
	resp, err := c.do(method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkError(resp); err != nil {
		return err
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) do(method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// checkError разбирает envelope ошибки API.
func (c *Client) checkError(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	var er errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil || er.Error.Message == "" {
		return fmt.Errorf("API error: HTTP %d", resp.StatusCode)
	}

	return fmt.Errorf("%s (%s)", er.Error.Message, er.Error.Code)
}
