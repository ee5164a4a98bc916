package model

// ClassifySpecialMove tells the accept-move path which applier to use.
func (s *GameState) ClassifySpecialMove(start, end Position, moving *Piece) SpecialMove {
	switch {
	case s.IsEnPassant(start, end, moving):
		return SpecialEnPassant
	case s.IsCastling(start, end, moving):
		return SpecialCastling
	default:
		return SpecialNone
	}
}

// IsEnPassant reports whether a pawn stepping from start to end captures
// the pawn that advanced two rows on the previous ply and now stands
// beside it.
func (s *GameState) IsEnPassant(start, end Position, moving *Piece) bool {
	if moving == nil || moving.Type != Pawn {
		return false
	}
	if abs(end.X-start.X) != 1 || !s.Board.IsEmpty(end) {
		return false
	}
	last := s.LastMove
	return last != nil &&
		last.Piece.Type == Pawn &&
		abs(last.From.Y-last.To.Y) == 2 &&
		last.To.X == end.X &&
		last.To.Y == start.Y
}

// IsCastling reports whether a king stepping two files from start toward an
// unmoved rook on the same row, with nothing in between, is a castle.
func (s *GameState) IsCastling(start, end Position, moving *Piece) bool {
	if moving == nil || moving.Type != King {
		return false
	}
	if start.Y != end.Y || abs(end.X-start.X) != 2 || moving.HasMoved {
		return false
	}
	rookPos := castleRookSquare(start, end)
	rook := s.Board.PieceAt(rookPos)
	return rook != nil &&
		rook.Type == Rook &&
		rook.Color == moving.Color &&
		!rook.HasMoved &&
		!s.Board.IsPieceBetween(start, rookPos)
}

// castleRookSquare is the corner the king is castling toward.
func castleRookSquare(start, end Position) Position {
	if end.X > start.X {
		return Position{X: boardSize - 1, Y: start.Y}
	}
	return Position{X: 0, Y: start.Y}
}

// ApplyRegularMove moves the piece on start to end, capturing anything
// there, and records the move. With start empty it returns a zero record and
// leaves the state alone.
func (s *GameState) ApplyRegularMove(start, end Position) MoveRecord {
	if s.Board.PieceAt(start) == nil {
		return MoveRecord{}
	}
	piece := s.Board.Clear(start)
	s.Board.Set(end, piece)
	piece.HasMoved = true
	return s.recordMove(piece, start, end)
}

// ApplyEnPassant removes the passed pawn, which stands on the mover's row
// and the destination file, then moves the capturing pawn.
func (s *GameState) ApplyEnPassant(start, end Position) MoveRecord {
	if s.Board.PieceAt(start) == nil {
		return MoveRecord{}
	}
	s.Board.Clear(Position{X: end.X, Y: start.Y})
	pawn := s.Board.Clear(start)
	s.Board.Set(end, pawn)
	pawn.HasMoved = true
	return s.recordMove(pawn, start, end)
}

// ApplyCastling moves the king two files and the rook to the square the
// king passed over. Without both a king and a rook in place it returns a
// zero record and leaves the state alone.
func (s *GameState) ApplyCastling(start, end Position) MoveRecord {
	rookFrom := castleRookSquare(start, end)
	rookTo := Position{X: end.X - sign(end.X-start.X), Y: start.Y}
	if s.Board.PieceAt(start) == nil || s.Board.PieceAt(rookFrom) == nil {
		return MoveRecord{}
	}

	king := s.Board.Clear(start)
	s.Board.Set(end, king)
	rook := s.Board.Clear(rookFrom)
	s.Board.Set(rookTo, rook)

	king.HasMoved = true
	rook.HasMoved = true
	return s.recordMove(king, start, end)
}

func (s *GameState) recordMove(piece *Piece, start, end Position) MoveRecord {
	record := MoveRecord{Piece: *piece, From: start, To: end}
	s.LastMove = &record
	return record
}
