package model

// WSMove is a move request as it arrives from a client.
type WSMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// MoveRecord is the last accepted move. Piece is a snapshot taken after
// the move, so its HasMoved is always true.
type MoveRecord struct {
	Piece Piece    `json:"piece"`
	From  Position `json:"from"`
	To    Position `json:"to"`
}

type SpecialMove int

const (
	SpecialNone SpecialMove = iota
	SpecialEnPassant
	SpecialCastling
)

func (s SpecialMove) String() string {
	switch s {
	case SpecialEnPassant:
		return "enPassant"
	case SpecialCastling:
		return "castling"
	default:
		return "none"
	}
}
