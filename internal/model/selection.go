package model

type SelectResult string

const (
	SelectIgnored    SelectResult = "ignored"
	SelectSelected   SelectResult = "selected"
	SelectDeselected SelectResult = "deselected"
	SelectMoved      SelectResult = "moved"
	SelectRejected   SelectResult = "rejected"
)

// Select handles a click on pos by mover. Clicks by the side not to move are
// ignored and leave any selection in place. With nothing selected it picks up
// one of mover's pieces. With a selection it either
// deselects (same square) or tries the move, clearing the selection
// afterwards either way.
func (s *GameState) Select(pos Position, mover Color) SelectResult {
	if !pos.InBounds() || mover != s.ToMove {
		return SelectIgnored
	}

	if s.SelectedSquare == nil {
		piece := s.Board.PieceAt(pos)
		if piece == nil || piece.Color != s.ToMove || piece.Color != mover {
			return SelectIgnored
		}
		selected := pos
		s.SelectedSquare = &selected
		s.LegalMoves = s.LegalMovesFrom(pos)
		return SelectSelected
	}

	from := *s.SelectedSquare
	s.clearSelection()
	if from == pos {
		return SelectDeselected
	}
	if s.AcceptMove(from, pos, mover) {
		return SelectMoved
	}
	return SelectRejected
}

func (s *GameState) clearSelection() {
	s.SelectedSquare = nil
	s.LegalMoves = make([]Position, 0)
}
