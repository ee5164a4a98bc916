package model

import "testing"

// boardWith builds a board holding exactly the given pieces, keyed by
// square name.
func boardWith(t *testing.T, pieces map[string]*Piece) *BoardState {
	t.Helper()
	board := NewEmptyBoard()
	for square, piece := range pieces {
		pos, err := ParseSquare(square)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", square, err)
		}
		board.Set(pos, piece)
	}
	return board
}

// play applies moves given as "e2e4" strings, failing the test on the
// first one that is refused. The mover is whoever is to move.
func play(t *testing.T, s *GameState, moves ...string) {
	t.Helper()
	for _, m := range moves {
		from, to := MustSquare(m[:2]), MustSquare(m[2:])
		if !s.AcceptMove(from, to, s.ToMove) {
			t.Fatalf("AcceptMove(%s) refused", m)
		}
	}
}
