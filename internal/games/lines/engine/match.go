package engine

// Axis is one of the four lines through a cell.
type Axis int

const (
	AxisVertical   Axis = iota // up / down
	AxisHorizontal             // left / right
	AxisRising                 // ↗ / ↙
	AxisFalling                // ↘ / ↖
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	case AxisRising:
		return "rising"
	case AxisFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// axes lists, per axis, the forward step; the backward step is its negation.
var axes = [4]struct {
	axis   Axis
	dr, dc int
}{
	{AxisVertical, 1, 0},
	{AxisHorizontal, 0, 1},
	{AxisRising, -1, 1},
	{AxisFalling, 1, 1},
}

// Run is a set of same-colored cells collinear with a reference cell.
// The reference cell itself is not part of Cells.
type Run struct {
	Axis  Axis
	Cells []Cell
}

// FindRuns scans the four axes through cell and returns every axis whose
// matching neighbors, together with cell, form a line of at least runLength.
func FindRuns(b *Board, cell Cell, runLength int) ([]Run, error) {
	if !b.InBounds(cell) {
		return nil, ErrOutOfBounds
	}
	piece, ok := b.At(cell)
	if !ok {
		return nil, ErrEmptyCell
	}

	var runs []Run
	for _, ax := range axes {
		cells := scan(b, cell, piece, ax.dr, ax.dc)
		cells = append(cells, scan(b, cell, piece, -ax.dr, -ax.dc)...)
		if len(cells) >= runLength-1 {
			runs = append(runs, Run{Axis: ax.axis, Cells: cells})
		}
	}
	return runs, nil
}

// scan walks from cell (exclusive) in one direction while pieces match.
func scan(b *Board, cell Cell, piece Piece, dr, dc int) []Cell {
	var out []Cell
	for c := cell.Add(dr, dc); ; c = c.Add(dr, dc) {
		p, ok := b.At(c)
		if !ok || p != piece {
			return out
		}
		out = append(out, c)
	}
}
