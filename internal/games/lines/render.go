package lines

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-lines/internal/core"
	"github.com/vovakirdan/tui-lines/internal/games/lines/engine"
)

const (
	cellWidth = 3 // bracket, glyph, bracket
	hudHeight = 3
	minWidth  = 40
)

// layout is where the board box sits on screen.
type layout struct {
	boxX, boxY int
	boxW, boxH int
}

func (g *Game) layout() layout {
	size := g.cfg.Board.Size
	l := layout{
		boxW: size*cellWidth + 2,
		boxH: size + 2,
		boxY: hudHeight,
	}
	l.boxX = (g.screenW - l.boxW) / 2
	return l
}

// origin returns the screen position of the first cell.
func (l layout) origin() (int, int) {
	return l.boxX + 1, l.boxY + 1
}

func (g *Game) tooSmall() bool {
	l := g.layout()
	return g.screenW < max(l.boxW, minWidth) || g.screenH < l.boxY+l.boxH+2
}

// CellAt maps a screen position to the board cell drawn there.
func (g *Game) CellAt(x, y int) (engine.Cell, bool) {
	if g.tooSmall() {
		return engine.Cell{}, false
	}
	size := g.cfg.Board.Size
	ox, oy := g.layout().origin()
	if !core.NewRect(ox, oy, size*cellWidth, size).Contains(x, y) {
		return engine.Cell{}, false
	}
	return engine.At(y-oy, (x-ox)/cellWidth), true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall() {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	g.renderHUD(dst, l)
	g.renderBoard(dst, l)

	footer := l.boxY + l.boxH
	if g.message != "" {
		dst.DrawTextColored(centered(g.screenW, g.message), footer, g.message, core.ColorYellow)
	}
	hint := g.Controls()
	dst.DrawTextColored(centered(g.screenW, hint), footer+1, hint, core.ColorGray)

	g.renderOverlays(dst, l)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHUD(dst *core.Screen, l layout) {
	left, right := l.boxX, l.boxX+l.boxW

	dst.DrawTextCentered(0, g.variant.Title)

	score := fmt.Sprintf("Score: %d", g.eng.Score())
	dst.DrawText(left, 1, score)
	best := fmt.Sprintf("Best: %d", max(g.highScore, g.eng.Score()))
	dst.DrawText(right-len(best), 1, best)

	dst.DrawText(left, 2, "Next:")
	for i, p := range g.eng.PeekUpcoming(g.cfg.Board.Preview) {
		dst.SetColored(left+6+i*2, 2, core.PieceRune(int(p)), core.PieceColor(int(p)))
	}
	moves := fmt.Sprintf("Moves: %d", g.eng.Moves())
	dst.DrawText(right-len(moves), 2, moves)
}

func (g *Game) renderBoard(dst *core.Screen, l layout) {
	dst.DrawBox(core.NewRect(l.boxX, l.boxY, l.boxW, l.boxH), core.ColorGray)

	reachable := make(map[engine.Cell]bool)
	for _, c := range g.eng.Reachable() {
		reachable[c] = true
	}
	selected, hasSelection := g.eng.Selection()
	ox, oy := l.origin()
	size := g.cfg.Board.Size

	for row := range size {
		for col := range size {
			c := engine.At(row, col)
			x, y := ox+col*cellWidth, oy+row

			switch p, ok := g.eng.PieceAt(c); {
			case slices.Contains(g.flash, c):
				dst.SetCell(x+1, y, core.Cell{Rune: '✱', Color: core.ColorBrightWhite, Bold: true})
			case ok:
				dst.SetCell(x+1, y, core.Cell{
					Rune:  core.PieceRune(int(p)),
					Color: core.PieceColor(int(p)),
					Bold:  hasSelection && c == selected,
				})
			case reachable[c]:
				dst.SetColored(x+1, y, '·', core.ColorBrightWhite)
			default:
				dst.SetColored(x+1, y, '·', core.ColorGray)
			}

			isSelected := hasSelection && c == selected
			switch {
			case c == g.cursor && isSelected:
				dst.SetColored(x, y, '[', core.ColorYellow)
				dst.SetColored(x+2, y, ']', core.ColorYellow)
			case c == g.cursor:
				dst.SetColored(x, y, '[', core.ColorBrightWhite)
				dst.SetColored(x+2, y, ']', core.ColorBrightWhite)
			case isSelected:
				dst.SetColored(x, y, '<', core.ColorYellow)
				dst.SetColored(x+2, y, '>', core.ColorYellow)
			}
		}
	}
}

func (g *Game) renderOverlays(dst *core.Screen, l layout) {
	cx := l.boxX + l.boxW/2
	cy := l.boxY + l.boxH/2

	switch {
	case g.gameOver:
		drawOverlay(dst, cx, cy, "BOARD FULL", fmt.Sprintf("Score: %d", g.eng.Score()), "Press R to restart")
	case g.paused:
		drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a boxed block of centered lines.
func drawOverlay(dst *core.Screen, cx, cy int, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}

	box := core.NewRect(cx-(width+4)/2, cy-(len(lines)+2)/2, width+4, len(lines)+2)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		dst.DrawText(cx-len(line)/2, box.Y+1+i, line)
	}
}

func centered(width int, text string) int {
	return max((width-len([]rune(text)))/2, 0)
}
