package engine

import "fmt"

// Cell is a (row, col) position on the board.
// Row increases downward, Col increases to the right.
type Cell struct {
	Row int
	Col int
}

// At is a convenience constructor for Cell.
func At(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// Valid reports whether the cell lies on a size×size board.
func (c Cell) Valid(size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}

// Add returns the cell offset by (dr, dc).
func (c Cell) Add(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// String formats the cell as {row,col}, the same shape the move command accepts.
func (c Cell) String() string {
	return fmt.Sprintf("{%d,%d}", c.Row, c.Col)
}

// neighbors lists the orthogonal offsets in enqueue order: top, right, bottom, left.
var neighbors = [4][2]int{
	{-1, 0},
	{0, 1},
	{1, 0},
	{0, -1},
}
