package engine

// Source supplies uniform random integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// slot is one board position; piece is meaningful only when filled.
type slot struct {
	filled bool
	piece  Piece
}

// Board is a size×size grid of optional pieces.
// Slots are stored in row-major order: index = row*size + col.
// freeSlots always equals the number of empty slots and is kept up to date by
// Place and Remove rather than by scanning.
type Board struct {
	size      int
	slots     []slot
	freeSlots int
	rng       Source
}

// NewBoard creates an empty board. rng drives PlaceRandom.
func NewBoard(size int, rng Source) *Board {
	return &Board{
		size:      size,
		slots:     make([]slot, size*size),
		freeSlots: size * size,
		rng:       rng,
	}
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// FreeSlots returns the number of empty slots.
func (b *Board) FreeSlots() int {
	return b.freeSlots
}

// OccupiedCount returns the number of filled slots.
func (b *Board) OccupiedCount() int {
	return b.size*b.size - b.freeSlots
}

// InBounds reports whether c lies on the board.
func (b *Board) InBounds(c Cell) bool {
	return c.Valid(b.size)
}

func (b *Board) index(c Cell) int {
	return c.Row*b.size + c.Col
}

// Get reads a slot. The bool is false when the slot is empty.
func (b *Board) Get(c Cell) (Piece, bool, error) {
	if !b.InBounds(c) {
		return 0, false, ErrOutOfBounds
	}
	s := b.slots[b.index(c)]
	return s.piece, s.filled, nil
}

// At reads a slot, treating out-of-bounds cells as empty.
func (b *Board) At(c Cell) (Piece, bool) {
	p, ok, err := b.Get(c)
	if err != nil {
		return 0, false
	}
	return p, ok
}

// IsEmpty reports whether c is on the board and holds no piece.
func (b *Board) IsEmpty(c Cell) bool {
	if !b.InBounds(c) {
		return false
	}
	return !b.slots[b.index(c)].filled
}

// Place puts a piece into an empty slot.
func (b *Board) Place(c Cell, p Piece) error {
	if !b.InBounds(c) {
		return ErrOutOfBounds
	}
	i := b.index(c)
	if b.slots[i].filled {
		return ErrSlotOccupied
	}
	b.slots[i] = slot{filled: true, piece: p}
	b.freeSlots--
	return nil
}

// Remove clears an occupied slot.
func (b *Board) Remove(c Cell) error {
	if !b.InBounds(c) {
		return ErrOutOfBounds
	}
	i := b.index(c)
	if !b.slots[i].filled {
		return ErrSlotEmpty
	}
	b.slots[i] = slot{}
	b.freeSlots++
	return nil
}

// PlaceRandom puts p on an empty slot chosen uniformly at random and returns
// the chosen cell. An index in [0, FreeSlots()) is drawn once and mapped to the
// matching empty slot by a single row-major scan.
func (b *Board) PlaceRandom(p Piece) (Cell, error) {
	if b.freeSlots == 0 {
		return Cell{}, ErrBoardFull
	}

	target := b.rng.Intn(b.freeSlots)
	seen := 0
	for i, s := range b.slots {
		if s.filled {
			continue
		}
		if seen == target {
			b.slots[i] = slot{filled: true, piece: p}
			b.freeSlots--
			return At(i/b.size, i%b.size), nil
		}
		seen++
	}

	// Unreachable while freeSlots matches the grid.
	return Cell{}, ErrBoardFull
}

// Occupied returns every filled slot in row-major order.
func (b *Board) Occupied() []Placement {
	out := make([]Placement, 0, b.OccupiedCount())
	for i, s := range b.slots {
		if s.filled {
			out = append(out, Placement{Cell: At(i/b.size, i%b.size), Piece: s.piece})
		}
	}
	return out
}

// Clear empties every slot.
func (b *Board) Clear() {
	for i := range b.slots {
		b.slots[i] = slot{}
	}
	b.freeSlots = b.size * b.size
}
