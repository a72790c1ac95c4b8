// Package engine implements the lines puzzle: a square board of colored
// pieces, moves along open orthogonal paths, and clearing of straight runs.
//
// The package is deterministic for a given random source and has no UI
// dependencies. An Engine is not safe for concurrent use; hosts serve one
// engine from one goroutine.
package engine

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// ScoringPolicy selects how cleared pieces are scored.
type ScoringPolicy string

const (
	// ScorePerCell awards one point per distinct cleared cell, the moved piece included.
	ScorePerCell ScoringPolicy = "per_cell"
	// ScoreClassic awards two points per clearing move plus two per cell of
	// each run; the moved piece is not counted and shared cells count twice.
	ScoreClassic ScoringPolicy = "classic"
)

// Rules are the fixed parameters of a game.
type Rules struct {
	Size          int           // Board dimension
	Colors        int           // Number of piece colors
	InitialPieces int           // Pieces placed by Reset
	SpawnCount    int           // Pieces spawned after a move that clears nothing
	RunLength     int           // Minimum line length that clears, reference cell included
	Scoring       ScoringPolicy // How clears are scored
}

// DefaultRules returns the classic 9×9, seven-color game.
func DefaultRules() Rules {
	return Rules{
		Size:          9,
		Colors:        7,
		InitialPieces: 10,
		SpawnCount:    3,
		RunLength:     5,
		Scoring:       ScorePerCell,
	}
}

// Validate checks that a game with these rules can be played.
func (r Rules) Validate() error {
	switch {
	case r.Size < 1:
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidRules, r.Size)
	case r.Colors < 1:
		return fmt.Errorf("%w: colors must be positive, got %d", ErrInvalidRules, r.Colors)
	case r.RunLength < 2 || r.RunLength > r.Size:
		return fmt.Errorf("%w: run length %d does not fit a %d board", ErrInvalidRules, r.RunLength, r.Size)
	case r.InitialPieces < 0 || r.InitialPieces > r.Size*r.Size:
		return fmt.Errorf("%w: initial pieces %d out of range", ErrInvalidRules, r.InitialPieces)
	case r.SpawnCount < 0:
		return fmt.Errorf("%w: spawn count must not be negative", ErrInvalidRules)
	}
	switch r.Scoring {
	case ScorePerCell, ScoreClassic:
	default:
		return fmt.Errorf("%w: unknown scoring policy %q", ErrInvalidRules, r.Scoring)
	}
	return nil
}

// Outcome reports what a single Activate or Move changed.
type Outcome struct {
	Dirty     []Cell // Cells to repaint, without duplicates
	Moved     bool   // A piece was relocated
	Cleared   []Cell // Cells cleared by runs, the moved piece included
	Runs      []Run  // Runs found at the destination
	Spawned   []Cell // Cells that received new pieces
	Gained    int    // Points awarded by this operation
	Score     int    // Score after the operation
	Selection *Cell  // Current selection, nil when none
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for move diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSpawnCounter overrides the number of pieces spawned after a move.
// It is called with the score and completed move count before spawning.
func WithSpawnCounter(f func(score, moves int) int) Option {
	return func(e *Engine) {
		e.spawnCounter = f
	}
}

// Engine owns the board, the piece queue, the score and the selection.
type Engine struct {
	rules  Rules
	rng    *rand.Rand
	logger *log.Logger

	board     *Board
	queue     *PieceQueue
	score     int
	moves     int
	selected  Cell
	hasSelect bool

	spawnCounter func(score, moves int) int
	dirty        []Cell
}

// New creates an engine and deals the opening pieces.
func New(rules Rules, rng *rand.Rand, opts ...Option) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}

	e := &Engine{
		rules:  rules,
		rng:    rng,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.Reset()
	return e, nil
}

// Reset rebuilds the board and queue, clears score and selection, and places
// the opening pieces. It returns the cells that received pieces.
func (e *Engine) Reset() []Cell {
	e.board = NewBoard(e.rules.Size, e.rng)
	e.queue = NewPieceQueue(e.rules.Colors, e.rng)
	e.score = 0
	e.moves = 0
	e.hasSelect = false
	e.dirty = nil

	placed := e.spawn(e.rules.InitialPieces)
	e.logger.Debug("game reset", "size", e.rules.Size, "colors", e.rules.Colors, "pieces", len(placed))
	return placed
}

// Rules returns the rules the engine was built with.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Moves returns the number of completed moves.
func (e *Engine) Moves() int {
	return e.moves
}

// FreeSlots returns the number of empty cells.
func (e *Engine) FreeSlots() int {
	return e.board.FreeSlots()
}

// GameOver reports whether the board is full, leaving no legal move.
func (e *Engine) GameOver() bool {
	return e.board.FreeSlots() == 0
}

// Selection returns the selected cell, if any.
func (e *Engine) Selection() (Cell, bool) {
	return e.selected, e.hasSelect
}

// PieceAt returns the piece on c, if any. Out-of-bounds cells read as empty.
func (e *Engine) PieceAt(c Cell) (Piece, bool) {
	return e.board.At(c)
}

// PeekUpcoming returns the next n pieces the engine will spawn.
func (e *Engine) PeekUpcoming(n int) []Piece {
	return e.queue.Peek(n)
}

// Snapshot returns every occupied cell in row-major order.
func (e *Engine) Snapshot() []Placement {
	return e.board.Occupied()
}

// Reachable returns the empty cells the selected piece can move to.
func (e *Engine) Reachable() []Cell {
	if !e.hasSelect {
		return nil
	}
	m, err := DistancesFrom(e.board, e.selected)
	if err != nil {
		return nil
	}
	return m.Cells()
}

// Route returns a shortest path from start to end, or nil if the move is illegal.
func (e *Engine) Route(start, end Cell) []Cell {
	m, err := FindReachable(e.board, start, end)
	if err != nil {
		return nil
	}
	return m.Path(end)
}

// Activate handles a click on cell and advances the selection state machine.
// Rejected moves return an error but still consume the selection.
func (e *Engine) Activate(cell Cell) (Outcome, error) {
	e.dirty = e.dirty[:0]

	if !e.board.InBounds(cell) {
		return e.outcome(), ErrOutOfBounds
	}
	_, occupied := e.board.At(cell)

	if !e.hasSelect {
		if !occupied {
			return e.outcome(), fmt.Errorf("%w at %s", ErrNothingSelected, cell)
		}
		e.selected, e.hasSelect = cell, true
		e.markDirty(cell)
		return e.outcome(), nil
	}

	prev := e.selected
	if occupied {
		if cell == prev {
			e.hasSelect = false
			e.markDirty(cell)
			return e.outcome(), nil
		}
		e.selected = cell
		e.markDirty(prev, cell)
		return e.outcome(), nil
	}

	e.hasSelect = false
	out, err := e.move(prev, cell)
	if err != nil {
		// The highlight on the old selection goes away.
		e.markDirty(prev)
		out = e.outcome()
	}
	return out, err
}

// Move relocates the piece on start to end along an open path, then clears
// runs or spawns new pieces. Any selection is cleared.
func (e *Engine) Move(start, end Cell) (Outcome, error) {
	e.dirty = e.dirty[:0]
	if e.hasSelect {
		e.hasSelect = false
		e.markDirty(e.selected)
	}
	out, err := e.move(start, end)
	if err != nil {
		return e.outcome(), err
	}
	return out, nil
}

func (e *Engine) move(start, end Cell) (Outcome, error) {
	if _, err := FindReachable(e.board, start, end); err != nil {
		e.logger.Debug("move rejected", "from", start, "to", end, "error", err)
		return Outcome{}, err
	}

	piece, _ := e.board.At(start)
	if err := e.board.Place(end, piece); err != nil {
		return Outcome{}, err
	}
	if err := e.board.Remove(start); err != nil {
		return Outcome{}, err
	}
	e.moves++
	e.markDirty(start, end)

	runs, err := FindRuns(e.board, end, e.rules.RunLength)
	if err != nil {
		return Outcome{}, err
	}

	if len(runs) > 0 {
		cleared := e.clear(end, runs)
		gained := e.award(runs, cleared)
		e.logger.Info("runs cleared", "at", end, "runs", len(runs), "cells", len(cleared), "points", gained)

		out := e.outcome()
		out.Moved = true
		out.Runs = runs
		out.Cleared = cleared
		out.Gained = gained
		return out, nil
	}

	count := e.rules.SpawnCount
	if e.spawnCounter != nil {
		count = e.spawnCounter(e.score, e.moves)
	}
	spawned := e.spawn(count)

	out := e.outcome()
	out.Moved = true
	out.Spawned = spawned
	return out, nil
}

// clear removes the reference cell and every distinct cell across runs.
func (e *Engine) clear(end Cell, runs []Run) []Cell {
	seen := map[Cell]bool{end: true}
	cleared := []Cell{end}
	for _, r := range runs {
		for _, c := range r.Cells {
			if !seen[c] {
				seen[c] = true
				cleared = append(cleared, c)
			}
		}
	}

	for _, c := range cleared {
		// Every cleared cell was just read as occupied.
		_ = e.board.Remove(c)
		e.markDirty(c)
	}
	return cleared
}

// award adds points for a clear and returns them.
func (e *Engine) award(runs []Run, cleared []Cell) int {
	gained := 0
	switch e.rules.Scoring {
	case ScoreClassic:
		gained = 2
		for _, r := range runs {
			gained += 2 * len(r.Cells)
		}
	default:
		gained = len(cleared)
	}
	e.score += gained
	return gained
}

// spawn draws n pieces and places each at random. Pieces that find no free
// slot are dropped.
func (e *Engine) spawn(n int) []Cell {
	var placed []Cell
	for _, p := range e.queue.Take(n) {
		c, err := e.board.PlaceRandom(p)
		if err != nil {
			continue
		}
		placed = append(placed, c)
		e.markDirty(c)
	}
	return placed
}

func (e *Engine) markDirty(cells ...Cell) {
	for _, c := range cells {
		dup := false
		for _, d := range e.dirty {
			if d == c {
				dup = true
				break
			}
		}
		if !dup {
			e.dirty = append(e.dirty, c)
		}
	}
}

func (e *Engine) outcome() Outcome {
	out := Outcome{
		Dirty: append([]Cell(nil), e.dirty...),
		Score: e.score,
	}
	if e.hasSelect {
		sel := e.selected
		out.Selection = &sel
	}
	return out
}
