package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-lines/internal/storage"
)

func pressKey(t *testing.T, m ScoreboardModel, k tea.KeyMsg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(k)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update() returned %T, want ScoreboardModel", next)
	}
	return sb
}

func TestScoreboardRows(t *testing.T) {
	store := openTestStore(t)
	records := []storage.ScoreRecord{
		{GameID: "lines", Score: 12, Moves: 30, Player: "ann"},
		{GameID: "lines", Score: 40, Moves: 55},
		{GameID: "lines_big", Score: 7, Moves: 12, Player: "bo"},
	}
	for _, r := range records {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, NewSession("ann", nil), 100, 30)
	if m.current().id != "lines" {
		t.Fatalf("first page = %q, want lines", m.current().id)
	}

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("lines has %d rows, want 2", len(rows))
	}
	want := []string{"#1", "40", "55", "-"}
	for i, w := range want {
		if rows[0][i] != w {
			t.Errorf("row 0 column %d = %q, want %q", i, rows[0][i], w)
		}
	}
	if rows[1][3] != "ann" {
		t.Errorf("row 1 player = %q, want ann", rows[1][3])
	}
	if !strings.Contains(m.summary, "Best 40") || !strings.Contains(m.summary, "2 games") {
		t.Errorf("summary = %q", m.summary)
	}

	// lines_big sorts right after lines.
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	rows = m.table.Rows()
	if m.current().id != "lines_big" || len(rows) != 1 || rows[0][3] != "bo" {
		t.Errorf("after tab: page %q rows %v", m.current().id, rows)
	}
}

func TestScoreboardSessionPage(t *testing.T) {
	store := openTestStore(t)
	sess := NewSession("ann", nil)
	records := []storage.ScoreRecord{
		{GameID: "lines", Score: 12, Moves: 30, Player: "ann", Session: sess.ID},
		{GameID: "lines_mini", Score: 25, Moves: 18, Player: "ann", Session: sess.ID},
		{GameID: "lines", Score: 99, Moves: 60, Player: "bo", Session: uuid.New()},
	}
	for _, r := range records {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// The session page is last, so shift+tab wraps to it.
	m := pressKey(t, NewScoreboardModel(store, sess, 100, 30), tea.KeyMsg{Type: tea.KeyShiftTab})
	if !m.current().isSession() {
		t.Fatalf("page = %q, want the session page", m.current().title)
	}

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("session has %d rows, want 2", len(rows))
	}
	// Newest first.
	if rows[0][0] != "2" || rows[0][1] != "lines_mini" || rows[0][2] != "25" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1][1] != "lines" || rows[1][2] != "12" {
		t.Errorf("row 1 = %v", rows[1])
	}
	if m.summary != "ann: 2 games saved, best 25" {
		t.Errorf("summary = %q", m.summary)
	}

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.current().id != "lines" || len(m.table.Rows()) != 2 {
		t.Errorf("tab from the session page: page %q rows %v", m.current().id, m.table.Rows())
	}
}

func TestScoreboardTableHeight(t *testing.T) {
	tests := []struct {
		name   string
		height int
		want   int
	}{
		{"tiny", 8, 3},
		{"regular", 24, 14},
		{"tall", 80, maxTableHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(nil, NewSession("", nil), 80, 24)
			next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: tt.height})
			if got := next.(ScoreboardModel).tableHeight(); got != tt.want {
				t.Errorf("table height = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, NewSession("", nil), 60, 20)
	if len(m.table.Rows()) != 0 {
		t.Error("no store should mean no rows")
	}
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("empty page should say so")
	}

	if !pressKey(t, m, tea.KeyMsg{Type: tea.KeyEsc}).IsGoingBack() {
		t.Error("esc should go back")
	}
	if !pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}).IsQuitting() {
		t.Error("q should quit")
	}
}
