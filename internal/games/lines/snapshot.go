package lines

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-lines/internal/games/lines/engine"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game for determinism tests and replay output.
type Snapshot struct {
	Tick      uint64
	Variant   string
	Score     int
	Moves     int
	FreeSlots int
	Pieces    []engine.Placement
	Upcoming  []engine.Piece
	Selection *engine.Cell
	Cursor    engine.Cell
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.tooSmall():
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	var sel *engine.Cell
	if c, ok := g.eng.Selection(); ok {
		sel = &c
	}

	return Snapshot{
		Tick:      g.tick,
		Variant:   g.variant.ID,
		Score:     g.eng.Score(),
		Moves:     g.eng.Moves(),
		FreeSlots: g.eng.FreeSlots(),
		Pieces:    g.eng.Snapshot(),
		Upcoming:  g.eng.PeekUpcoming(g.cfg.Board.Preview),
		Selection: sel,
		Cursor:    g.cursor,
		State:     state,
	}
}

// BoardString renders the board as plain text: piece colors as digits,
// empty cells as dots, with row and column indices.
func (g *Game) BoardString() string {
	size := g.cfg.Board.Size
	var sb strings.Builder

	sb.WriteString("    ")
	for col := range size {
		sb.WriteString(pad(strconv.Itoa(col)))
	}
	sb.WriteByte('\n')

	for row := range size {
		sb.WriteString(pad(strconv.Itoa(row)))
		sb.WriteByte(' ')
		for col := range size {
			if p, ok := g.eng.PieceAt(engine.At(row, col)); ok {
				sb.WriteString(pad(strconv.Itoa(int(p))))
			} else {
				sb.WriteString(pad("."))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// pad right-aligns s in a three-column field.
func pad(s string) string {
	if len(s) >= 3 {
		return s
	}
	return strings.Repeat(" ", 3-len(s)) + s
}
