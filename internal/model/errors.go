package model

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedSquare = errors.New("malformed square")
	ErrOutOfBounds     = errors.New("square out of bounds")
	ErrInvalidFEN      = errors.New("invalid FEN")
	ErrInvalidPiece    = errors.New("invalid piece")

	ErrGameOver      = errors.New("game is over")
	ErrEmptySquare   = errors.New("no piece at from square")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrIllegalMove   = errors.New("illegal move")
	ErrGameFull      = errors.New("game is full")
	ErrNotInGame     = errors.New("player not in game")
	ErrAlreadyQueued = errors.New("player already in queue")
)

// MoveError records why a move request was rejected.
type MoveError struct {
	From string
	To   string
	Err  error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %s-%s: %v", e.From, e.To, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
