// Package movegen enumerates pseudo-legal moves: destinations consistent with
// each piece's movement pattern and blocking/capture rules, without regard to
// check, pins, castling or en passant. The board is treated as a read-only
// input; nothing here applies a move.
package movegen

import "github.com/kapu/chess-moves-go/internal/board"

// Piece is a transient query subject built during collection. It references
// an occupied square matching its color and kind at construction time; it is
// not stored on the board.
type Piece struct {
	Color board.Color
	Kind  board.Kind
	Col   int
	Row   int
}

// Square returns the piece's origin in algebraic notation.
func (p Piece) Square() string {
	return board.Algebraic(p.Col, p.Row)
}

// Move is one pseudo-legal destination. Captured is meaningful only when
// Captures is set. Promotion is set only for a pawn move whose target row is
// the far rank for that pawn's color; the promotion piece itself is not
// chosen here.
type Move struct {
	Col       int
	Row       int
	Captures  bool
	Captured  board.Kind
	Promotion bool
}

// Square returns the move target in algebraic notation.
func (m Move) Square() string {
	return board.Algebraic(m.Col, m.Row)
}

// PieceMoves pairs one collected piece with its move list, in the order the
// generator produced them.
type PieceMoves struct {
	Piece Piece
	Moves []Move
}

// vector is a (Δcolumn, Δrow) direction step.
type vector struct {
	dc, dr int
}

// Direction tables: up, right, down, left, then up-right, down-right,
// down-left, up-left. Move output order follows this table order, so it
// stays fixed.
var (
	crossDirs    = []vector{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	diagonalDirs = []vector{{1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
	royalDirs    = []vector{{0, -1}, {1, 0}, {0, 1}, {-1, 0}, {1, -1}, {1, 1}, {-1, 1}, {-1, -1}}

	// All eight L-shaped knight offsets. Each is distinct; a table that
	// repeats one offset while dropping another silently loses a direction.
	knightOffsets = []vector{
		{-1, -2}, {1, -2},
		{2, -1}, {2, 1},
		{1, 2}, {-1, 2},
		{-2, -1}, {-2, 1},
	}
)
