package defs

import (
	"os"
	"path/filepath"
	"testing"
)

type fixedPicker int

func (f fixedPicker) Intn(n int) int { return int(f) % n }

func TestDefaultJokes(t *testing.T) {
	jokes := DefaultJokes()
	if len(jokes) != 20 {
		t.Fatalf("len = %d, want 20", len(jokes))
	}
	if got := jokes.Pick(fixedPicker(0)); got != jokes[0] {
		t.Errorf("Pick(0) = %q", got)
	}
}

func TestParseJokes_RejectsEmpty(t *testing.T) {
	if _, err := ParseJokes([]byte(`["", ""]`)); err == nil {
		t.Error("expected error for empty bank")
	}
	if _, err := ParseJokes([]byte(`{`)); err == nil {
		t.Error("expected error for bad json")
	}
}

func TestLoadJokes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jokes.json")
	if err := os.WriteFile(path, []byte(`["one", "", "two"]`), 0o600); err != nil {
		t.Fatal(err)
	}
	jokes, err := LoadJokes(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jokes) != 2 || jokes.Pick(fixedPicker(1)) != "two" {
		t.Errorf("jokes = %v", jokes)
	}
}

func TestJokes_PickEmpty(t *testing.T) {
	if got := Jokes(nil).Pick(fixedPicker(3)); got != "" {
		t.Errorf("Pick on empty = %q", got)
	}
}
