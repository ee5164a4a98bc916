// Package render turns game state into pictures for clients. Piece glyphs
// exist only here; the rules engine works on structured pieces.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/benbeisheim/chess-backend/internal/model"
)

const DefaultSquareSize = 48

var glyphs = map[model.Color]map[model.PieceType]string{
	model.White: {
		model.King: "♔", model.Queen: "♕", model.Rook: "♖",
		model.Bishop: "♗", model.Knight: "♘", model.Pawn: "♙",
	},
	model.Black: {
		model.King: "♚", model.Queen: "♛", model.Rook: "♜",
		model.Bishop: "♝", model.Knight: "♞", model.Pawn: "♟",
	},
}

// Glyph returns the Unicode chess symbol for piece, or "" for an empty square.
func Glyph(piece *model.Piece) string {
	if piece == nil {
		return ""
	}
	return glyphs[piece.Color][piece.Type]
}

const (
	lightSquare    = "fill:#ffffff"
	darkSquare     = "fill:#9ca3af"
	selectedSquare = "fill:#93c5fd"
	lastMoveSquare = "fill:#fde68a"
	whitePiece     = "fill:#000000"
	blackPiece     = "fill:#991b1b"
)

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// WriteSVG draws state's board with row 0 at the top. The selected square
// and the squares of the last move are tinted.
func WriteSVG(w io.Writer, state model.GameState, squareSize int) error {
	if squareSize <= 0 {
		squareSize = DefaultSquareSize
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	side := 8 * squareSize
	canvas.Start(side, side)
	canvas.Title(fmt.Sprintf("%s to move", state.ToMove))

	fontStyle := fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central", squareSize*3/4)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			pos := model.Position{X: x, Y: y}
			canvas.Rect(x*squareSize, y*squareSize, squareSize, squareSize, squareStyle(state, pos))

			piece := state.Board.PieceAt(pos)
			if piece == nil {
				continue
			}
			color := whitePiece
			if piece.Color == model.Black {
				color = blackPiece
			}
			canvas.Text(x*squareSize+squareSize/2, y*squareSize+squareSize/2, Glyph(piece), fontStyle+";"+color)
		}
	}
	canvas.End()
	return ew.err
}

func squareStyle(state model.GameState, pos model.Position) string {
	switch {
	case state.SelectedSquare != nil && *state.SelectedSquare == pos:
		return selectedSquare
	case state.LastMove != nil && (state.LastMove.From == pos || state.LastMove.To == pos):
		return lastMoveSquare
	case (pos.X+pos.Y)%2 == 0:
		return lightSquare
	default:
		return darkSquare
	}
}
