package engine

// Piece is a color identifier in [0, K) where K is Rules.Colors.
type Piece int

// Joker is reserved for a wildcard piece. Nothing produces it and matching
// treats it like any other color id.
const Joker Piece = -1

// Valid reports whether the piece is a regular color for a game with the given
// number of colors.
func (p Piece) Valid(colors int) bool {
	return p >= 0 && int(p) < colors
}

// Placement pairs an occupied cell with the piece on it.
type Placement struct {
	Cell  Cell
	Piece Piece
}
