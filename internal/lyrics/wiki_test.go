package lyrics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestWiki(t *testing.T, handler http.HandlerFunc) *WikiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewWikiClient(srv.URL)
}

func TestWikiSummary(t *testing.T) {
	wiki := newTestWiki(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch q.Get("list") {
		case "search":
			if q.Get("srsearch") != "black holes" {
				t.Errorf("unexpected search query %q", q.Get("srsearch"))
			}
			json.NewEncoder(w).Encode(map[string]any{
				"query": map[string]any{
					"search": []map[string]any{{"title": "Black hole"}},
				},
			})
		default:
			if q.Get("titles") != "Black hole" {
				t.Errorf("unexpected extract title %q", q.Get("titles"))
			}
			json.NewEncoder(w).Encode(map[string]any{
				"query": map[string]any{
					"pages": map[string]any{
						"123": map[string]any{"extract": "A black hole is a region of spacetime."},
					},
				},
			})
		}
	})

	summary, err := wiki.Summary(context.Background(), "black holes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "A black hole is a region of spacetime." {
		t.Errorf("unexpected summary %q", summary)
	}
}

func TestWikiSummary_NoResults(t *testing.T) {
	wiki := newTestWiki(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"query": map[string]any{"search": []any{}},
		})
	})

	_, err := wiki.Summary(context.Background(), "nonexistent topic")
	if !errors.Is(err, ErrNoResults) {
		t.Errorf("expected ErrNoResults, got %v", err)
	}
}

func TestWikiSummary_EmptyExtract(t *testing.T) {
	wiki := newTestWiki(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("list") == "search" {
			json.NewEncoder(w).Encode(map[string]any{
				"query": map[string]any{
					"search": []map[string]any{{"title": "Stub"}},
				},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"query": map[string]any{
				"pages": map[string]any{"1": map[string]any{"extract": "  "}},
			},
		})
	})

	_, err := wiki.Summary(context.Background(), "stub")
	if !errors.Is(err, ErrNoResults) {
		t.Errorf("expected ErrNoResults, got %v", err)
	}
}

func TestWikiSummary_ServerError(t *testing.T) {
	wiki := newTestWiki(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	})

	_, err := wiki.Summary(context.Background(), "anything")
	if !errors.Is(err, ErrWikiRequest) {
		t.Errorf("expected ErrWikiRequest, got %v", err)
	}
}
