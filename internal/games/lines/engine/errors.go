package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the board, router, detector and engine.
var (
	ErrOutOfBounds     = errors.New("engine: cell out of bounds")
	ErrSlotEmpty       = errors.New("engine: slot is empty")
	ErrSlotOccupied    = errors.New("engine: slot is occupied")
	ErrBoardFull       = errors.New("engine: board is full")
	ErrEmptyCell       = errors.New("engine: no piece at reference cell")
	ErrInvalidMove     = errors.New("engine: invalid move")
	ErrNothingSelected = errors.New("engine: no piece to select")
	ErrInvalidRules    = errors.New("engine: invalid rules")
)

// MoveReason tells why a move was rejected.
type MoveReason int

const (
	ReasonOutOfBounds MoveReason = iota
	ReasonNoPieceAtStart
	ReasonOccupiedDestination
	ReasonUnreachable
)

// String returns a short description of the reason.
func (r MoveReason) String() string {
	switch r {
	case ReasonOutOfBounds:
		return "out of bounds"
	case ReasonNoPieceAtStart:
		return "no piece at start"
	case ReasonOccupiedDestination:
		return "destination occupied"
	case ReasonUnreachable:
		return "destination unreachable"
	default:
		return "unknown"
	}
}

// MoveError describes a rejected move. It matches ErrInvalidMove with errors.Is.
type MoveError struct {
	Reason MoveReason
	Start  Cell
	End    Cell
}

func (e *MoveError) Error() string {
	switch e.Reason {
	case ReasonOutOfBounds:
		return fmt.Sprintf("engine: move out of bounds: %s %s", e.Start, e.End)
	case ReasonNoPieceAtStart:
		return fmt.Sprintf("engine: no piece at start %s", e.Start)
	case ReasonOccupiedDestination:
		return fmt.Sprintf("engine: a piece already sits at %s", e.End)
	default:
		return fmt.Sprintf("engine: no open path from %s to %s", e.Start, e.End)
	}
}

// Is makes errors.Is(err, ErrInvalidMove) true for every MoveError.
func (e *MoveError) Is(target error) bool {
	return target == ErrInvalidMove
}

func moveError(reason MoveReason, start, end Cell) error {
	return &MoveError{Reason: reason, Start: start, End: end}
}
