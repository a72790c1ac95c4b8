package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lines/internal/core"
	"github.com/vovakirdan/tui-lines/internal/games/lines"
	"github.com/vovakirdan/tui-lines/internal/games/lines/engine"
)

func startGame(t *testing.T, seed int64) *lines.Game {
	t.Helper()
	g, err := lines.NewVariant("lines")
	if err != nil {
		t.Fatalf("NewVariant() failed: %v", err)
	}
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

// script returns one rejected move followed by one legal move.
func script(t *testing.T, g *lines.Game) []lines.MoveCommand {
	t.Helper()
	eng := g.Engine()
	size := g.Config().Board.Size

	var empty []engine.Cell
	for r := range size {
		for c := range size {
			if _, ok := eng.PieceAt(engine.At(r, c)); !ok {
				empty = append(empty, engine.At(r, c))
			}
		}
	}
	if len(empty) < 2 {
		t.Fatal("board needs two empty cells")
	}

	from := eng.Snapshot()[0].Cell
	for _, to := range empty {
		if eng.Route(from, to) != nil {
			return []lines.MoveCommand{
				{From: empty[0], To: empty[1]},
				{From: from, To: to},
			}
		}
	}
	t.Fatal("first piece cannot move anywhere")
	return nil
}

func TestReplay(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	g := startGame(t, 11)
	cmds := script(t, g)

	var out bytes.Buffer
	res := replay(&out, g, cmds, log.New(io.Discard))

	if res.Applied != 1 || res.Rejected != 1 {
		t.Errorf("replay() = %+v, want 1 applied and 1 rejected", res)
	}
	if g.State().Moves != 1 {
		t.Errorf("Moves = %d, want 1", g.State().Moves)
	}

	text := out.String()
	if !strings.HasPrefix(text, "Start\n") {
		t.Errorf("output should start with the initial board:\n%s", text)
	}
	if strings.Contains(text, "Move 1:") {
		t.Error("rejected move should not print a board")
	}
	if !strings.Contains(text, "Move 2: "+cmds[1].String()) {
		t.Errorf("output missing the applied move:\n%s", text)
	}
	if !strings.HasSuffix(text, "after 1 moves\n") {
		t.Errorf("output should end with the summary:\n%s", text)
	}
}

func TestReplayIsDeterministic(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	run := func() string {
		g := startGame(t, 23)
		var out bytes.Buffer
		replay(&out, g, script(t, g), log.New(io.Discard))
		return out.String()
	}

	first, second := run(), run()
	if first != second {
		t.Errorf("same seed and moves gave different output:\n%s\n---\n%s", first, second)
	}
}

func TestReason(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := startGame(t, 1)
	_, err := g.Move(lines.MoveCommand{From: engine.At(-1, 0), To: engine.At(0, 0)})
	if err == nil {
		t.Fatal("move from outside the board should fail")
	}
	if got := reason(err); got != engine.ReasonOutOfBounds.String() {
		t.Errorf("reason() = %q, want %q", got, engine.ReasonOutOfBounds.String())
	}
}
