package model

import "testing"

var allPieceTypes = []PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

func TestValidateMoveRejectsSelfCapture(t *testing.T) {
	for _, pt := range allPieceTypes {
		for _, color := range []Color{White, Black} {
			moving := NewPiece(pt, color)
			start := Position{X: 3, Y: 4}
			board := NewEmptyBoard()
			board.Set(start, moving)
			for y := 0; y < 8; y++ {
				for x := 0; x < 8; x++ {
					end := Position{X: x, Y: y}
					if board.ValidateMove(start, end, moving, NewPiece(Pawn, color)) {
						t.Errorf("%s %s %s-%s captured its own piece", color, pt, start, end)
					}
				}
			}
		}
	}
}

func TestValidateMoveKnight(t *testing.T) {
	board := NewEmptyBoard()
	start := MustSquare("d4")
	knight := NewPiece(Knight, White)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			end := Position{X: x, Y: y}
			dx, dy := abs(x-start.X), abs(y-start.Y)
			want := (dx == 1 && dy == 2) || (dx == 2 && dy == 1)
			if got := board.ValidateMove(start, end, knight, nil); got != want {
				t.Errorf("knight %s-%s = %v, want %v", start, end, got, want)
			}
		}
	}
}

func TestValidateMoveSlidersOnEmptyBoard(t *testing.T) {
	board := NewEmptyBoard()
	start := MustSquare("d4")
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			end := Position{X: x, Y: y}
			dx, dy := abs(x-start.X), abs(y-start.Y)
			moved := dx != 0 || dy != 0
			diagonal := moved && dx == dy
			straight := moved && (dx == 0 || dy == 0)

			if got := board.ValidateMove(start, end, NewPiece(Bishop, Black), nil); got != diagonal {
				t.Errorf("bishop %s-%s = %v, want %v", start, end, got, diagonal)
			}
			if got := board.ValidateMove(start, end, NewPiece(Rook, Black), nil); got != straight {
				t.Errorf("rook %s-%s = %v, want %v", start, end, got, straight)
			}
			if got := board.ValidateMove(start, end, NewPiece(Queen, Black), nil); got != (diagonal || straight) {
				t.Errorf("queen %s-%s = %v, want %v", start, end, got, diagonal || straight)
			}
		}
	}
}

func TestValidateMoveBlocked(t *testing.T) {
	tests := []struct {
		name     string
		moving   PieceType
		from, to string
		blocker  string
		want     bool
	}{
		{"rook clear", Rook, "a1", "a8", "", true},
		{"rook blocked", Rook, "a1", "a8", "a5", false},
		{"rook blocker beyond target", Rook, "a1", "a4", "a6", true},
		{"rook captures blocker", Rook, "a1", "a5", "a5", true},
		{"bishop clear", Bishop, "c1", "h6", "", true},
		{"bishop blocked", Bishop, "c1", "h6", "e3", false},
		{"queen diagonal blocked", Queen, "d1", "h5", "f3", false},
		{"queen straight blocked", Queen, "d1", "d8", "d4", false},
		{"queen captures on diagonal", Queen, "d1", "h5", "h5", true},
		{"knight jumps", Knight, "b1", "c3", "b2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pieces := map[string]*Piece{tt.from: NewPiece(tt.moving, White)}
			if tt.blocker != "" {
				pieces[tt.blocker] = NewPiece(Pawn, Black)
			}
			board := boardWith(t, pieces)
			from, to := MustSquare(tt.from), MustSquare(tt.to)

			got := board.ValidateMove(from, to, board.PieceAt(from), board.PieceAt(to))
			if got != tt.want {
				t.Errorf("ValidateMove(%s-%s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestValidateMovePawn(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]*Piece
		from   string
		to     string
		want   bool
	}{
		{"white single step", nil, "e2", "e3", true},
		{"white double step from home row", nil, "e2", "e4", true},
		{"white triple step", nil, "e2", "e5", false},
		{"white backwards", nil, "e3", "e2", false},
		{"white double step off home row", nil, "e3", "e5", false},
		{"white double step blocked", map[string]*Piece{"e3": NewPiece(Knight, Black)}, "e2", "e4", false},
		{"white double step onto piece", map[string]*Piece{"e4": NewPiece(Knight, Black)}, "e2", "e4", false},
		{"white single step onto piece", map[string]*Piece{"e3": NewPiece(Knight, Black)}, "e2", "e3", false},
		{"white capture", map[string]*Piece{"d3": NewPiece(Knight, Black)}, "e2", "d3", true},
		{"white diagonal to empty", nil, "e2", "d3", false},
		{"white capture backwards", map[string]*Piece{"d1": NewPiece(Knight, Black)}, "e2", "d1", false},
		{"black single step", nil, "d7", "d6", true},
		{"black double step from home row", nil, "d7", "d5", true},
		{"black double step off home row", nil, "d6", "d4", false},
		{"black capture", map[string]*Piece{"c6": NewPiece(Knight, White)}, "d7", "c6", true},
		{"black moving up the board", nil, "d7", "d8", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := MustSquare(tt.from)
			color := White
			if from.Y < 4 {
				color = Black
			}
			pieces := map[string]*Piece{tt.from: NewPiece(Pawn, color)}
			for sq, p := range tt.pieces {
				pieces[sq] = p
			}
			board := boardWith(t, pieces)
			to := MustSquare(tt.to)

			got := board.ValidateMove(from, to, board.PieceAt(from), board.PieceAt(to))
			if got != tt.want {
				t.Errorf("ValidateMove(%s-%s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

// Two kings alone on the board: one step in any direction, never two.
func TestValidateMoveKingAlone(t *testing.T) {
	board := boardWith(t, map[string]*Piece{
		"e1": NewPiece(King, White),
		"e8": NewPiece(King, Black),
	})
	e1 := MustSquare("e1")
	if e1 != (Position{X: 4, Y: 7}) {
		t.Fatalf("e1 = %+v, want {4 7}", e1)
	}
	state := NewGameStateFrom(board)

	tests := []struct {
		to   string
		want bool
	}{
		{"d2", true},
		{"f2", true},
		{"e2", true},
		{"f1", true},
		{"g1", false},
		{"c1", false},
		{"e3", false},
		{"g3", false},
	}
	for _, tt := range tests {
		to := MustSquare(tt.to)
		if got := board.ValidateMove(e1, to, board.PieceAt(e1), board.PieceAt(to)); got != tt.want {
			t.Errorf("ValidateMove(e1-%s) = %v, want %v", tt.to, got, tt.want)
		}
		if got := state.LegalityVerdict(e1, to); got != tt.want {
			t.Errorf("LegalityVerdict(e1-%s) = %v, want %v", tt.to, got, tt.want)
		}
	}
}

func TestValidateMoveUnknownPiece(t *testing.T) {
	board := NewEmptyBoard()
	piece := &Piece{Type: PieceType("archbishop"), Color: White}
	if board.ValidateMove(MustSquare("a1"), MustSquare("a2"), piece, nil) {
		t.Error("unknown piece type moved")
	}
}

func TestValidateMoveDegenerate(t *testing.T) {
	board := NewEmptyBoard()
	a1 := MustSquare("a1")
	if board.ValidateMove(a1, a1, NewPiece(Queen, White), nil) {
		t.Error("zero-length move accepted")
	}
	if board.ValidateMove(a1, MustSquare("a2"), nil, nil) {
		t.Error("move without a piece accepted")
	}
	if board.ValidateMove(a1, Position{X: 0, Y: 8}, NewPiece(Rook, White), nil) {
		t.Error("off-board move accepted")
	}
}
