// Package diagram renders a position as an SVG board.
package diagram

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/jwkunz/plum-chess-sub001/internal/board"
	"github.com/jwkunz/plum-chess-sub001/internal/game"
)

const (
	cell   = 60
	margin = 20
)

const (
	lightFill = "fill:#f0d9b5"
	darkFill  = "fill:#b58863"
)

// glyphs holds the unicode figurines, [Team][PieceType].
var glyphs = [2][6]string{
	{"♙", "♘", "♗", "♖", "♕", "♔"},
	{"♟", "♞", "♝", "♜", "♛", "♚"},
}

// Render writes the position as an SVG document, rank 8 at the top.
func Render(w io.Writer, p *game.Position) {
	size := 8*cell + 2*margin
	canvas := svg.New(w)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:#ffffff")

	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			x := margin + file*cell
			y := margin + (7-rank)*cell

			fill := darkFill
			if (file+rank)%2 == 1 {
				fill = lightFill
			}
			canvas.Rect(x, y, cell, cell, fill)

			sq := board.NewSquare(file, rank)
			if rec, ok := p.Register.PieceAt(sq); ok {
				canvas.Text(x+cell/2, y+cell/2+cell/6, glyphs[rec.Team][rec.Type],
					"text-anchor:middle;font-size:42px")
			}
		}
	}

	// Coordinate labels along the bottom and left edges.
	for file := 0; file < 8; file++ {
		canvas.Text(margin+file*cell+cell/2, size-margin/4, string(rune('a'+file)),
			"text-anchor:middle;font-size:12px")
	}
	for rank := 0; rank < 8; rank++ {
		canvas.Text(margin/2, margin+(7-rank)*cell+cell/2, string(rune('1'+rank)),
			"text-anchor:middle;font-size:12px")
	}

	canvas.End()
}
