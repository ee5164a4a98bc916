package model

// pawnDirection is the row step of a forward pawn move. White advances
// toward row 0.
func pawnDirection(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

func pawnHomeRow(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

// ValidateMove reports whether moving may go from start to end under its
// movement rules. target is whatever stands on end, nil for an empty square.
// It does not look at check, and it does not recognise castling or en
// passant; see GameState.LegalityVerdict for that.
func (b *BoardState) ValidateMove(start, end Position, moving, target *Piece) bool {
	if moving == nil || start == end || !start.InBounds() || !end.InBounds() {
		return false
	}
	// can't capture own pieces
	if target != nil && target.Color == moving.Color {
		return false
	}

	switch moving.Type {
	case Pawn:
		return b.validatePawnMove(start, end, moving.Color, target != nil)
	case Rook:
		return b.validateRookMove(start, end)
	case Knight:
		return validateKnightMove(start, end)
	case Bishop:
		return b.validateBishopMove(start, end)
	case Queen:
		return b.validateQueenMove(start, end)
	case King:
		return validateKingMove(start, end)
	default:
		return false
	}
}

func (b *BoardState) validatePawnMove(start, end Position, color Color, isCapture bool) bool {
	dx, dy := delta(start, end)
	dir := pawnDirection(color)

	if isCapture {
		return dy == dir && abs(dx) == 1
	}
	if dx != 0 {
		return false
	}
	if dy == dir {
		return true
	}
	return start.Y == pawnHomeRow(color) && dy == 2*dir && !b.IsPieceBetween(start, end)
}

func (b *BoardState) validateRookMove(start, end Position) bool {
	return IsStraight(start, end) && !b.IsPieceBetween(start, end)
}

func validateKnightMove(start, end Position) bool {
	dx, dy := delta(start, end)
	dx, dy = abs(dx), abs(dy)
	return (dx == 2 && dy == 1) || (dx == 1 && dy == 2)
}

// validateBishopMove also checks the diagonal for blockers.
func (b *BoardState) validateBishopMove(start, end Position) bool {
	return IsDiagonal(start, end) && !b.IsPieceBetween(start, end)
}

func (b *BoardState) validateQueenMove(start, end Position) bool {
	return b.validateRookMove(start, end) || b.validateBishopMove(start, end)
}

func validateKingMove(start, end Position) bool {
	dx, dy := delta(start, end)
	return abs(dx) <= 1 && abs(dy) <= 1
}
