package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-lines/internal/registry"
	"github.com/vovakirdan/tui-lines/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, rec := range []storage.ScoreRecord{
		{GameID: "lines", Score: 40, Moves: 12, Player: "ann"},
		{GameID: "lines", Score: 90, Moves: 30, Player: "bob"},
		{GameID: "lines_mini", Score: 15, Moves: 8},
	} {
		if _, err := store.SaveScore(rec); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	return store
}

func lookup(t *testing.T, id string) registry.GameInfo {
	t.Helper()
	info, ok := registry.Lookup(id)
	if !ok {
		t.Fatalf("variant %q is not registered", id)
	}
	return info
}

func TestPrintScores(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want []string
	}{
		{"ranked", "lines", []string{"1     90", "2     40", "bob", "Best: 90  Games: 2"}},
		{"anonymous player", "lines_mini", []string{"1     15", "  -  "}},
		{"empty", "lines_big", []string{"No scores recorded yet.", "lines play lines_big"}},
	}

	store := seededStore(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := printScores(&buf, store, lookup(t, tt.id), 10); err != nil {
				t.Fatalf("printScores() failed: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output missing %q:\n%s", w, buf.String())
				}
			}
		})
	}
}

func TestPrintAllStats(t *testing.T) {
	store := seededStore(t)

	var buf bytes.Buffer
	if err := printAllStats(&buf, store); err != nil {
		t.Fatalf("printAllStats() failed: %v", err)
	}
	out := buf.String()

	first := strings.Index(out, "  lines ")
	second := strings.Index(out, "  lines_mini ")
	if first < 0 || second < 0 || first > second {
		t.Errorf("variants missing or out of order:\n%s", out)
	}
	if strings.Contains(out, "lines_big") {
		t.Errorf("unplayed variant listed:\n%s", out)
	}
}

func TestClearScores(t *testing.T) {
	store := seededStore(t)

	var buf bytes.Buffer
	if err := clearScores(&buf, store, lookup(t, "lines")); err != nil {
		t.Fatalf("clearScores() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Cleared 2 scores") {
		t.Errorf("output = %q", buf.String())
	}

	if best, _ := store.HighScore("lines"); best != 0 {
		t.Errorf("HighScore(lines) after clear = %d, want 0", best)
	}
	if best, _ := store.HighScore("lines_mini"); best != 15 {
		t.Errorf("HighScore(lines_mini) = %d, want 15; other variants must be kept", best)
	}
}
