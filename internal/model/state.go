package model

type GameState struct {
	Board          *BoardState `json:"boardState"`
	ToMove         Color       `json:"toMove"`
	LastMove       *MoveRecord `json:"lastMove"`
	SelectedSquare *Position   `json:"selectedSquare"`
	LegalMoves     []Position  `json:"legalMoves"`
	Players        struct {
		White ClientPlayer `json:"white"`
		Black ClientPlayer `json:"black"`
	} `json:"players"`
}

// NewGameState returns a game at the standard starting position, white to move.
func NewGameState() *GameState {
	return NewGameStateFrom(newBoard())
}

// NewGameStateFrom wraps a fabricated board. White moves first.
func NewGameStateFrom(board *BoardState) *GameState {
	return &GameState{
		Board:      board,
		ToMove:     White,
		LegalMoves: make([]Position, 0),
	}
}

// Clone copies the state deeply enough that the copy shares no pieces,
// squares or slices with s.
func (s *GameState) Clone() GameState {
	c := *s
	board := *s.Board
	for y := range board.Board {
		for x, piece := range board.Board[y] {
			if piece != nil {
				p := *piece
				board.Board[y][x] = &p
			}
		}
	}
	c.Board = &board
	if s.LastMove != nil {
		last := *s.LastMove
		c.LastMove = &last
	}
	if s.SelectedSquare != nil {
		selected := *s.SelectedSquare
		c.SelectedSquare = &selected
	}
	c.LegalMoves = append(make([]Position, 0, len(s.LegalMoves)), s.LegalMoves...)
	return c
}

func (s *GameState) CurrentPlayer() Color {
	return s.ToMove
}

// AdvanceTurn passes the move to the other side. It runs exactly once per
// accepted move.
func (s *GameState) AdvanceTurn() {
	s.ToMove = s.ToMove.Opposite()
}

// LegalityVerdict decides whether the piece on start may move to end in the
// current position. Castling and en passant are recognised here; every
// other move is left to ValidateMove.
func (s *GameState) LegalityVerdict(start, end Position) bool {
	if !start.InBounds() || !end.InBounds() {
		return false
	}
	moving := s.Board.PieceAt(start)
	if moving == nil {
		return false
	}
	switch s.ClassifySpecialMove(start, end, moving) {
	case SpecialCastling:
		return true
	case SpecialEnPassant:
		passed := s.Board.PieceAt(Position{X: end.X, Y: start.Y})
		return s.Board.ValidateMove(start, end, moving, passed)
	default:
		return s.Board.ValidateMove(start, end, moving, s.Board.PieceAt(end))
	}
}

// LegalMovesFrom lists every destination the piece on start may move to.
func (s *GameState) LegalMovesFrom(start Position) []Position {
	moves := make([]Position, 0)
	for y := 0; y < boardSize; y++ {
		for x := 0; x < boardSize; x++ {
			end := Position{X: x, Y: y}
			if s.LegalityVerdict(start, end) {
				moves = append(moves, end)
			}
		}
	}
	return moves
}

// AcceptMove validates and applies a move declared by mover, then hands the
// turn over. It returns false, leaving the state untouched, for any move
// that is not legal for mover right now.
func (s *GameState) AcceptMove(start, end Position, mover Color) bool {
	moving := s.Board.PieceAt(start)
	if moving == nil || moving.Color != mover || mover != s.ToMove {
		return false
	}
	if !s.LegalityVerdict(start, end) {
		return false
	}

	switch s.ClassifySpecialMove(start, end, moving) {
	case SpecialEnPassant:
		s.ApplyEnPassant(start, end)
	case SpecialCastling:
		s.ApplyCastling(start, end)
	default:
		s.ApplyRegularMove(start, end)
	}
	s.AdvanceTurn()
	return true
}
