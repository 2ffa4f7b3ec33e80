package beatoven

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// newTestClient создаёт клиент, направленный на httptest-сервер,
// с минимальными задержками poll-цикла.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Config{
		BaseURL:          srv.URL,
		APIKey:           "test-key",
		RetryMax:         1,
		PollMaxAttempts:  3,
		PollInitialDelay: time.Millisecond,
		PollMaxDelay:     2 * time.Millisecond,
	})
}

func TestCreateTrack(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/tracks" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}

		var req CreateTrackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Genre != "hip-hop" {
			t.Errorf("unexpected genre %q", req.Genre)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"id":      "80555995-62c1",
			"task_id": "80555995-62c1_1",
			"name":    req.Name,
			"status":  "composing",
			"version": 1,
		})
	})

	track, err := client.CreateTrack(context.Background(), &CreateTrackRequest{
		Name:     "Learning about gravity",
		Duration: 60,
		Genre:    "hip-hop",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if track.ID != "80555995-62c1" {
		t.Errorf("unexpected track id %q", track.ID)
	}
	if track.TaskID != "80555995-62c1_1" {
		t.Errorf("unexpected task id %q", track.TaskID)
	}
	if track.Status != "composing" {
		t.Errorf("unexpected status %q", track.Status)
	}
}

func TestCreateTrack_SynthesizesTaskID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Провайдер не вернул ни task_id, ни его вариантов
		json.NewEncoder(w).Encode(map[string]any{"id": "trk", "status": "composing"})
	})

	track, err := client.CreateTrack(context.Background(), &CreateTrackRequest{Name: "t"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if track.TaskID != "trk_1" {
		t.Errorf("expected synthesized task id trk_1, got %q", track.TaskID)
	}
}

func TestCreateTrack_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad genre", http.StatusUnprocessableEntity)
	})

	_, err := client.CreateTrack(context.Background(), &CreateTrackRequest{Name: "t"})

	apiErr, ok := AsError(err)
	if !ok {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("unexpected status %d", apiErr.HTTPStatus)
	}
	if apiErr.Retryable() {
		t.Error("422 should not be retryable")
	}
}

func TestCreateTrack_MissingKey(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://localhost:0"})

	_, err := client.CreateTrack(context.Background(), &CreateTrackRequest{Name: "t"})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestCreateTrack_EmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := client.CreateTrack(context.Background(), &CreateTrackRequest{Name: "t"})
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestGetTask(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/tasks/task_1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status": "composed",
			"meta": map[string]any{
				"track_url":  "https://cdn.example.com/track.mp3",
				"project_id": "proj-1",
				"track_id":   "trk-1",
				"stems_url": map[string]any{
					"bass":   "https://cdn.example.com/bass.mp3",
					"chords": "https://cdn.example.com/chords.mp3",
				},
			},
		})
	})

	task, err := client.GetTask(context.Background(), "task_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if task.Status != "composed" {
		t.Errorf("unexpected status %q", task.Status)
	}
	if task.TrackURL != "https://cdn.example.com/track.mp3" {
		t.Errorf("unexpected track url %q", task.TrackURL)
	}
	if len(task.Stems) != 2 {
		t.Errorf("expected 2 stems, got %d", len(task.Stems))
	}
	if task.ProjectID != "proj-1" || task.TrackID != "trk-1" {
		t.Errorf("meta fields not extracted: %+v", task)
	}
}

func TestPollTrack_CompletesAfterRetries(t *testing.T) {
	var calls atomic.Int32

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		resp := map[string]any{"id": "trk", "status": "composing"}
		if n >= 2 {
			resp["status"] = "COMPLETED"
			resp["previewUrl"] = "https://cdn.example.com/trk.mp3"
		}
		json.NewEncoder(w).Encode(resp)
	})

	track, err := client.PollTrack(context.Background(), "trk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !track.Ready() {
		t.Errorf("track should be ready, got status %q url %q", track.Status, track.PreviewURL)
	}
	if calls.Load() != 2 {
		t.Errorf("expected 2 polls, got %d", calls.Load())
	}
}

func TestPollTrack_Failed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": "trk", "status": "FAILED"})
	})

	_, err := client.PollTrack(context.Background(), "trk")
	if !errors.Is(err, ErrGenerationFailed) {
		t.Errorf("expected ErrGenerationFailed, got %v", err)
	}
}

func TestPollTrack_Exhausted(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": "trk", "status": "composing"})
	})

	track, err := client.PollTrack(context.Background(), "trk")
	if err != nil {
		t.Fatalf("exhausted poll is not an error, got %v", err)
	}
	if track == nil || track.Status != "composing" {
		t.Errorf("expected last known track, got %+v", track)
	}
}

func TestPollTrack_ContextCancelled(t *testing.T) {
	client := NewClient(Config{
		BaseURL:          "http://localhost:0",
		APIKey:           "k",
		PollInitialDelay: 50 * time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.PollTrack(ctx, "trk")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestNextDelay_Capped(t *testing.T) {
	d := 3 * time.Second
	for i := 0; i < 10; i++ {
		d = nextDelay(d, 15*time.Second)
		if d > 15*time.Second {
			t.Fatalf("delay exceeded cap: %v", d)
		}
	}
	if d != 15*time.Second {
		t.Errorf("delay should converge to cap, got %v", d)
	}
}
