package core

// Color is a foreground color for a screen cell.
// The platform maps each value to an ANSI color when drawing.
type Color uint8

// Palette entries. The first seven bright colors are used for pieces.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorBrightWhite
)

// pieceColors is the order in which piece indices are colored.
var pieceColors = []Color{
	ColorRed,
	ColorGreen,
	ColorYellow,
	ColorBlue,
	ColorMagenta,
	ColorCyan,
	ColorOrange,
	ColorWhite,
}

// PieceColor returns the display color for piece index i.
// Indices beyond the palette wrap around; negative indices map to ColorGray.
func PieceColor(i int) Color {
	if i < 0 {
		return ColorGray
	}
	return pieceColors[i%len(pieceColors)]
}

// PieceRunes gives each piece index a distinct glyph so colors can be told
// apart on monochrome terminals.
var PieceRunes = []rune{'●', '■', '▲', '◆', '★', '♥', '♣', '✚'}

// PieceRune returns the glyph for piece index i, wrapping like PieceColor.
func PieceRune(i int) rune {
	if i < 0 {
		return '✱'
	}
	return PieceRunes[i%len(PieceRunes)]
}
