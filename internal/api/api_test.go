package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shaiso/Mnemo/internal/beatoven"
	"github.com/shaiso/Mnemo/internal/lyrics"
	"github.com/shaiso/Mnemo/internal/mcp"
	"github.com/shaiso/Mnemo/internal/music"
	"github.com/shaiso/Mnemo/internal/store"
)

// newTestServer поднимает API поверх провайдера в TEST_MODE:
// ни одного живого HTTP-вызова наружу.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	provider := beatoven.NewClient(beatoven.Config{
		BaseURL: "http://localhost:0",
		APIKey:  beatoven.TestModeKey,
	})
	engine := lyrics.NewEngine()
	registry := store.NewRegistry(time.Hour)
	svc := music.NewService(provider, engine, registry, nil)

	handler := NewHandler(Config{
		Music:     svc,
		Router:    mcp.NewRouter(),
		OpenAIKey: "openai-key",
		GoogleKey: "google-key",
	})

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body HealthResponse
	decodeBody(t, resp, &body)
	if body.Status != "ok" {
		t.Errorf("unexpected health status %q", body.Status)
	}
}

func TestListModels(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/models")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var body struct {
		Models []struct {
			ID   string `json:"id"`
			Type string `json:"type"`
		} `json:"models"`
	}
	decodeBody(t, resp, &body)

	if len(body.Models) != 5 {
		t.Fatalf("expected 5 models, got %d", len(body.Models))
	}
	if body.Models[4].ID != "beatoven" || body.Models[4].Type != "music" {
		t.Errorf("unexpected last model %+v", body.Models[4])
	}
}

func TestListGenres(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/music/genres")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var body []struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &body)

	if len(body) != 8 {
		t.Errorf("expected 8 genres, got %d", len(body))
	}
}

func TestGenerateMusic_TestMode(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/music/generate", "application/json",
		strings.NewReader(`{"genre":"hip_hop","duration":60,"topic":"photosynthesis","test_mode":true}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}

	var body MusicGenerationResponse
	decodeBody(t, resp, &body)

	if body.OutputURL != beatoven.SampleTrackURL {
		t.Errorf("unexpected output url %q", body.OutputURL)
	}
	if !strings.HasPrefix(body.TaskID, "test-task-hip_hop-") {
		t.Errorf("unexpected task id %q", body.TaskID)
	}
	if body.Status != "completed" {
		t.Errorf("unexpected status %q", body.Status)
	}
	if body.Title != "Learning about photosynthesis" {
		t.Errorf("unexpected title %q", body.Title)
	}
	if !strings.Contains(body.Lyrics, "[Chorus]") {
		t.Error("lyrics should contain assembled sections")
	}
}

func TestGenerateMusic_Validation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing genre", `{"topic":"gravity"}`},
		{"missing topic", `{"genre":"pop"}`},
		{"malformed json", `{"genre":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/music/generate", "application/json",
				strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("unexpected status %d", resp.StatusCode)
			}

			var body ErrorResponse
			decodeBody(t, resp, &body)
			if body.Error.Code != ErrCodeBadRequest {
				t.Errorf("unexpected error code %q", body.Error.Code)
			}
		})
	}
}

func TestGetTask_Synthetic(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/music/tasks/test-task-pop-1715000000")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}

	var body TaskStatusResponse
	decodeBody(t, resp, &body)

	if body.Status != "composed" {
		t.Errorf("unexpected status %q", body.Status)
	}
	if body.TrackURL != beatoven.SampleTrackURL {
		t.Errorf("unexpected track url %q", body.TrackURL)
	}
	if len(body.Stems) != 4 {
		t.Errorf("expected 4 stems, got %d", len(body.Stems))
	}
}

func TestGetTrack_Synthetic(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/music/track/test-track-country-1715000000")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}

	var body TrackStatusResponse
	decodeBody(t, resp, &body)

	if !body.IsReady {
		t.Error("synthetic track should be ready")
	}
	if body.Status != "COMPLETED" {
		t.Errorf("unexpected status %q", body.Status)
	}
	if body.Lyrics == "" {
		t.Error("lyrics should be regenerated for the track")
	}
}

func TestGenerate_Dispatch(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name      string
		body      string
		wantType  string
		wantModel string
	}{
		{"image keyword", `{"input":"draw me a picture of a cat"}`, "image", "gpt-image-1"},
		{"video keyword", `{"input":"make a video about space"}`, "video", "veo2"},
		{"short text", `{"input":"hello"}`, "text", "gemini"},
		{"explicit model", `{"input":"hello","model":"o4-mini"}`, "text", "o4-mini"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/generate", "application/json",
				strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("unexpected status %d", resp.StatusCode)
			}

			var body GenerateResponse
			decodeBody(t, resp, &body)

			if body.Type != tt.wantType {
				t.Errorf("unexpected type %q", body.Type)
			}
			if body.ModelUsed != tt.wantModel {
				t.Errorf("unexpected model %q", body.ModelUsed)
			}
		})
	}
}

func TestGenerate_Music(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/generate", "application/json",
		strings.NewReader(`{"input":"write a song","genre":"country","learning_topic":"water cycle","test_mode":true}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}

	var body GenerateResponse
	decodeBody(t, resp, &body)

	if body.Type != "music" || body.ModelUsed != "beatoven" {
		t.Errorf("unexpected dispatch %+v", body)
	}
	if body.Title != "Learning about water cycle" {
		t.Errorf("unexpected title %q", body.Title)
	}
	if body.Lyrics == "" {
		t.Error("music response should carry lyrics")
	}
}

func TestGenerate_UnknownModel(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/generate", "application/json",
		strings.NewReader(`{"input":"hello","model":"gpt-99"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unexpected status %d", resp.StatusCode)
	}
}

func TestGenerate_MissingProviderKey(t *testing.T) {
	provider := beatoven.NewClient(beatoven.Config{
		BaseURL: "http://localhost:0",
		APIKey:  beatoven.TestModeKey,
	})
	svc := music.NewService(provider, lyrics.NewEngine(), store.NewRegistry(time.Hour), nil)

	// Google-ключ не настроен: текстовая модель по умолчанию недоступна
	handler := NewHandler(Config{
		Music:  svc,
		Router: mcp.NewRouter(),
	})

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	resp, err := http.Post(srv.URL+"/api/generate", "application/json",
		strings.NewReader(`{"input":"hello"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body ErrorResponse
	decodeBody(t, resp, &body)
	if !strings.Contains(body.Error.Message, "Google") {
		t.Errorf("error should name the provider, got %q", body.Error.Message)
	}
}

func TestGenerateMusic_MissingBeatovenKey(t *testing.T) {
	provider := beatoven.NewClient(beatoven.Config{BaseURL: "http://localhost:0"})
	svc := music.NewService(provider, lyrics.NewEngine(), store.NewRegistry(time.Hour), nil)

	handler := NewHandler(Config{Music: svc, Router: mcp.NewRouter()})
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	resp, err := http.Post(srv.URL+"/api/music/generate", "application/json",
		strings.NewReader(`{"genre":"pop","topic":"gravity"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("unexpected status %d", resp.StatusCode)
	}
}
