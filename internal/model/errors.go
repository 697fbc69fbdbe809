package model

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a coordinate falls outside the board.
	ErrOutOfRange = errors.New("position out of range")
	// ErrIllegalMove is returned when a proposed move is not in the legal set.
	ErrIllegalMove = errors.New("illegal move")
	// ErrNothingToUndo is returned by Undo on an empty move log.
	ErrNothingToUndo = errors.New("nothing to undo")
)

// OutOfRangeError reports the offending coordinates of a rejected position.
type OutOfRangeError struct {
	X int
	Y int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("position (%d, %d) out of range [0,%d]", e.X, e.Y, BoardSize-1)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// IllegalMoveError carries the rejected move so callers can render it.
// Piece is nil when no piece stood on From.
type IllegalMoveError struct {
	Piece *Piece
	From  Position
	To    Position
}

func (e *IllegalMoveError) Error() string {
	if e.Piece == nil {
		return fmt.Sprintf("illegal move: no piece at %s", e.From)
	}
	return fmt.Sprintf("illegal move: %s can not move from %s to %s", e.Piece, e.From, e.To)
}

func (e *IllegalMoveError) Unwrap() error {
	return ErrIllegalMove
}
