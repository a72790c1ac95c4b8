package lines

import (
	"fmt"

	"github.com/vovakirdan/tui-lines/internal/config"
	"github.com/vovakirdan/tui-lines/internal/registry"
)

// Variant is a registered board setup. Variants other than the default
// override the board dimensions of the loaded configuration.
type Variant struct {
	ID          string
	Title       string
	Description string
	apply       func(*config.BoardConfig)
}

var variants = []Variant{
	{
		ID:          "lines",
		Title:       "Lines",
		Description: "Classic board, line up five of a color",
	},
	{
		ID:          "lines_mini",
		Title:       "Lines Mini",
		Description: "7x7 board with five colors",
		apply: func(b *config.BoardConfig) {
			b.Size, b.Colors, b.InitialPieces = 7, 5, 6
		},
	},
	{
		ID:          "lines_big",
		Title:       "Lines Big",
		Description: "12x12 board with eight colors",
		apply: func(b *config.BoardConfig) {
			b.Size, b.Colors, b.InitialPieces = 12, 8, 16
		},
	},
}

func init() {
	for _, v := range variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// Variants returns the registered variants in menu order.
func Variants() []Variant {
	return append([]Variant(nil), variants...)
}

// LookupVariant finds a variant by ID.
func LookupVariant(id string) (Variant, bool) {
	for _, v := range variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// NewVariant creates a game for a variant ID.
func NewVariant(id string) (*Game, error) {
	v, ok := LookupVariant(id)
	if !ok {
		return nil, fmt.Errorf("lines: unknown variant %q", id)
	}
	return New(v), nil
}
