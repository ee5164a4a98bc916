package model

import "fmt"

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

const boardSize = 8

// BoardState is the 8x8 grid, indexed [Y][X]. Row 0 is black's back rank.
type BoardState struct {
	Board [boardSize][boardSize]*Piece `json:"board"`
}

type Piece struct {
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	HasMoved bool      `json:"hasMoved"`
}

func NewPiece(t PieceType, c Color) *Piece {
	return &Piece{Type: t, Color: c}
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String returns the square name, e.g. {4,7} is "e1".
func (p Position) String() string {
	return fmt.Sprintf("%c%d", p.X+'a', boardSize-p.Y)
}

func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < boardSize && p.Y >= 0 && p.Y < boardSize
}

// ParseSquare converts a square name like "e4" to a Position.
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrOutOfBounds, s)
	}
	pos := Position{X: int(s[0] - 'a'), Y: boardSize - int(s[1]-'0')}
	if !pos.InBounds() {
		return Position{}, fmt.Errorf("%w: %q", ErrOutOfBounds, s)
	}
	return pos, nil
}

// MustSquare is ParseSquare for fixed, known-good names.
func MustSquare(s string) Position {
	pos, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return pos
}

// PieceAt returns the piece on pos, or nil for an empty or off-board square.
func (b *BoardState) PieceAt(pos Position) *Piece {
	if !pos.InBounds() {
		return nil
	}
	return b.Board[pos.Y][pos.X]
}

func (b *BoardState) IsEmpty(pos Position) bool {
	return b.PieceAt(pos) == nil
}

func (b *BoardState) Set(pos Position, piece *Piece) {
	b.Board[pos.Y][pos.X] = piece
}

// Clear empties pos and returns whatever stood there.
func (b *BoardState) Clear(pos Position) *Piece {
	piece := b.Board[pos.Y][pos.X]
	b.Board[pos.Y][pos.X] = nil
	return piece
}

// NewEmptyBoard returns a board with no pieces, for fabricated positions.
func NewEmptyBoard() *BoardState {
	return &BoardState{}
}

var backRank = [boardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func newBoard() *BoardState {
	board := NewEmptyBoard()
	for x := 0; x < boardSize; x++ {
		board.Board[0][x] = NewPiece(backRank[x], Black)
		board.Board[1][x] = NewPiece(Pawn, Black)
		board.Board[6][x] = NewPiece(Pawn, White)
		board.Board[7][x] = NewPiece(backRank[x], White)
	}
	return board
}

// NewStandardBoard returns the standard starting arrangement.
func NewStandardBoard() *BoardState {
	return newBoard()
}
