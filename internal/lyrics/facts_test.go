package lyrics

import (
	"strings"
	"testing"
)

func TestNormalizeTopic(t *testing.T) {
	tests := []struct {
		name  string
		topic string
		want  string
	}{
		{"lowercase", "Photosynthesis", "photosynthesis"},
		{"punctuation stripped", "What is DNA?!", "what is dna"},
		{"whitespace collapsed", "  the   water\tcycle ", "the water cycle"},
		{"digits kept", "World War 2", "world war 2"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTopic(tt.topic); got != tt.want {
				t.Errorf("NormalizeTopic(%q) = %q, want %q", tt.topic, got, tt.want)
			}
		})
	}
}

func TestLookupFacts(t *testing.T) {
	tests := []struct {
		name  string
		topic string
		found bool
	}{
		{"exact match", "photosynthesis", true},
		{"case insensitive", "Photosynthesis", true},
		{"key inside topic", "how does the water cycle work", true},
		{"topic inside key", "pythagorean", true},
		{"unknown", "quantum chromodynamics", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts, ok := LookupFacts(tt.topic)
			if ok != tt.found {
				t.Fatalf("LookupFacts(%q) found = %v, want %v", tt.topic, ok, tt.found)
			}
			if ok && facts == "" {
				t.Error("found facts should not be empty")
			}
		})
	}
}

func TestLookupFacts_LongestKeyWins(t *testing.T) {
	// Тема задевает сразу два ключа каталога; побеждает более длинный,
	// и результат не зависит от порядка обхода map.
	for i := 0; i < 20; i++ {
		facts, ok := LookupFacts("solar system states of matter")
		if !ok {
			t.Fatal("expected a catalog match")
		}
		if !strings.Contains(facts, "solid, liquid or gas") {
			t.Fatalf("run %d: expected states-of-matter facts, got %q", i, facts)
		}
	}
}

func TestTruncateFacts(t *testing.T) {
	t.Run("short text untouched", func(t *testing.T) {
		if got := TruncateFacts("Short fact.", 240); got != "Short fact." {
			t.Errorf("unexpected result %q", got)
		}
	})

	t.Run("cuts at sentence boundary", func(t *testing.T) {
		text := strings.Repeat("x", 100) + ". " + strings.Repeat("y", 200)
		got := TruncateFacts(text, 240)
		if !strings.HasSuffix(got, ".") {
			t.Errorf("expected sentence boundary cut, got %q", got)
		}
		if len([]rune(got)) > 240 {
			t.Errorf("result exceeds budget: %d runes", len([]rune(got)))
		}
	})

	t.Run("ellipsis without boundary", func(t *testing.T) {
		got := TruncateFacts(strings.Repeat("z", 300), 240)
		if !strings.HasSuffix(got, "...") {
			t.Errorf("expected ellipsis, got suffix %q", got[len(got)-5:])
		}
	})
}
