package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-lines/internal/core"
	"github.com/vovakirdan/tui-lines/internal/games/lines"
	"github.com/vovakirdan/tui-lines/internal/games/lines/engine"
	"github.com/vovakirdan/tui-lines/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) (Model, *lines.Game) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g, err := lines.NewVariant("lines")
	if err != nil {
		t.Fatalf("NewVariant() failed: %v", err)
	}
	cfg := core.DefaultConfig()
	cfg.Seed = 5

	m := NewModel(g, store, cfg, NewSession("tester", nil))
	m.Init()
	return m, g
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update() returned %T, want Model", next)
		}
	}
	return m
}

func TestModelMovesCursor(t *testing.T) {
	m, g := newTestModel(t, nil)

	send(t, m, tea.KeyMsg{Type: tea.KeyUp}, TickMsg{})
	if g.Cursor() != engine.At(3, 4) {
		t.Errorf("cursor = %v, want {3,4}", g.Cursor())
	}
}

func TestModelMouseClickSelects(t *testing.T) {
	m, g := newTestModel(t, nil)
	target := g.Snapshot().Pieces[0].Cell

	// 80 columns: first cell drawn at (26, 4), three columns per cell.
	click := tea.MouseMsg{
		X:      26 + target.Col*3,
		Y:      4 + target.Row,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
	send(t, m, click, TickMsg{})

	if sel := g.Snapshot().Selection; sel == nil || *sel != target {
		t.Errorf("selection = %v, want %v", sel, target)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, g := newTestModel(t, nil)
	before := g.BoardString()

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if g.BoardString() != before {
		t.Error("resize restarted the game")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen is %dx%d, want 120x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if !next.(Model).IsQuitting() {
		t.Error("model should be quitting")
	}
	if next.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestModelBackOnlyWhenIdle(t *testing.T) {
	m, _ := newTestModel(t, nil)
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	m = send(t, m, TickMsg{}, esc)
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, TickMsg{}, esc)
	if !m.BackToMenu() {
		t.Error("back should leave a paused game")
	}
	if m.IsQuitting() {
		t.Error("back inside a session should not quit")
	}
}

func TestModelShowsHighScore(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(storage.ScoreRecord{GameID: "lines", Score: 42}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	m, _ := newTestModel(t, store)
	m.View()
	if !strings.Contains(m.screen.String(), "Best: 42") {
		t.Errorf("HUD should show the saved best:\n%s", m.screen.String())
	}
}

func TestModelSaveScore(t *testing.T) {
	store := openTestStore(t)
	m, _ := newTestModel(t, store)
	m.gameState = core.GameState{Score: 17, Moves: 9, GameOver: true}

	m.saveScore()

	scores, err := store.TopScores("lines", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("got %d scores, want 1", len(scores))
	}
	got := scores[0]
	if got.Score != 17 || got.Moves != 9 || got.Player != "tester" {
		t.Errorf("saved %+v, want score 17, moves 9, player tester", got)
	}
	if got.Session == uuid.Nil || got.Session != m.session.ID {
		t.Errorf("session = %v, want %v", got.Session, m.session.ID)
	}

	m.gameState.Score = 0
	m.saveScore()
	if scores, _ := store.TopScores("lines", 10); len(scores) != 1 {
		t.Error("a zero score should not be saved")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(3, 0, 'x', core.ColorRed)
	s.SetCell(0, 1, core.Cell{Rune: 'B', Color: core.ColorGreen, Bold: true})

	out := RenderScreen(s)
	rows := strings.Split(out, "\n")
	if len(rows) != 2 {
		t.Fatalf("RenderScreen() produced %d rows, want 2", len(rows))
	}
	for _, want := range []string{"ab", "x", "B"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}
