package engine

// PieceQueue is the stream of pieces still to be placed.
// Pieces are drawn when they first enter the cache, so peeking ahead never
// changes what a later Take returns.
type PieceQueue struct {
	colors int
	rng    Source
	cache  []Piece
}

// NewPieceQueue creates a queue drawing colors uniformly from [0, colors).
func NewPieceQueue(colors int, rng Source) *PieceQueue {
	return &PieceQueue{
		colors: colors,
		rng:    rng,
	}
}

// Peek returns the next n pieces without consuming them.
func (q *PieceQueue) Peek(n int) []Piece {
	if n <= 0 {
		return nil
	}
	for len(q.cache) < n {
		q.cache = append(q.cache, Piece(q.rng.Intn(q.colors)))
	}
	out := make([]Piece, n)
	copy(out, q.cache[:n])
	return out
}

// Take returns and removes the next n pieces.
func (q *PieceQueue) Take(n int) []Piece {
	out := q.Peek(n)
	if n > 0 {
		q.cache = append(q.cache[:0], q.cache[n:]...)
	}
	return out
}

// Len returns how many pieces are currently cached.
func (q *PieceQueue) Len() int {
	return len(q.cache)
}
