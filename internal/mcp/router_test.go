package mcp

import (
	"errors"
	"strings"
	"testing"

	"github.com/shaiso/Mnemo/internal/domain"
)

func TestRouter_Resolve_Auto(t *testing.T) {
	r := NewRouter()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "image keyword",
			input:    "draw me a picture of a cell",
			expected: domain.ModelImage,
		},
		{
			name:     "image keyword alt",
			input:    "generate an IMAGE of the water cycle",
			expected: domain.ModelImage,
		},
		{
			name:     "video keyword",
			input:    "make an animation about gravity",
			expected: domain.ModelVideo,
		},
		{
			name:     "music keyword",
			input:    "write a song about photosynthesis",
			expected: domain.ModelMusic,
		},
		{
			name:     "melody keyword",
			input:    "a catchy melody for fractions",
			expected: domain.ModelMusic,
		},
		{
			name:     "long input goes to large text model",
			input:    strings.Repeat("explain this concept in depth ", 5),
			expected: domain.ModelTextLarge,
		},
		{
			name:     "short input goes to default text model",
			input:    "what is DNA?",
			expected: domain.ModelTextSmall,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := r.Resolve(tt.input, ModelAuto)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m.ID != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, m.ID)
			}
		})
	}
}

func TestRouter_Resolve_Explicit(t *testing.T) {
	r := NewRouter()

	// Явная модель проходит без эвристики
	m, err := r.Resolve("draw me a picture", domain.ModelMusic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID != domain.ModelMusic {
		t.Errorf("explicit model should pass through, got %s", m.ID)
	}

	// Пустая модель эквивалентна auto
	m, err = r.Resolve("what is DNA?", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID != domain.ModelTextSmall {
		t.Errorf("empty model should resolve via heuristic, got %s", m.ID)
	}
}

func TestRouter_Resolve_Unknown(t *testing.T) {
	r := NewRouter()

	_, err := r.Resolve("anything", "gpt-99")
	if !errors.Is(err, ErrUnknownModel) {
		t.Errorf("expected ErrUnknownModel, got %v", err)
	}
}

func TestRouter_Register(t *testing.T) {
	r := NewRouter()

	custom := domain.Model{ID: "custom-model", Provider: "Test", Type: domain.ModelTypeText}
	r.Register(custom)

	if !r.Has("custom-model") {
		t.Error("registered model should be resolvable")
	}

	m, err := r.Get("custom-model")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Provider != "Test" {
		t.Errorf("unexpected provider %s", m.Provider)
	}
}
