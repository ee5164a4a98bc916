package model

import "errors"

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
	ErrGameFull     = errors.New("game is full")
	ErrNotInGame    = errors.New("player not in game")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrNoPiece      = errors.New("no piece at from square")
	ErrIllegalMove  = errors.New("invalid move, not legal")
	ErrOutOfBounds  = errors.New("invalid move, out of bounds")

	ErrDuplicateConnection = errors.New("connection already exists")
)
