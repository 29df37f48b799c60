package movegen

import (
	"fmt"

	"github.com/kapu/chess-moves-go/internal/board"
)

// Moves computes the full pseudo-legal move set for one piece. Dispatch is an
// exhaustive switch over the closed Kind set.
func Moves(b *board.Board, p Piece) []Move {
	switch p.Kind {
	case board.Rook:
		return slide(b, p, crossDirs, 7)
	case board.Bishop:
		return slide(b, p, diagonalDirs, 7)
	case board.Queen:
		return slide(b, p, royalDirs, 7)
	case board.King:
		return slide(b, p, royalDirs, 1)
	case board.Knight:
		return knightMoves(b, p)
	case board.Pawn:
		return pawnMoves(b, p)
	}
	panic(fmt.Sprintf("movegen: unhandled piece kind %d", p.Kind))
}

func knightMoves(b *board.Board, p Piece) []Move {
	var moves []Move
	for _, off := range knightOffsets {
		moves = append(moves, walk(b, p, off, 1)...)
	}
	return moves
}

// pawnMoves handles the one asymmetric piece. White advances toward row 0,
// Black toward row 7. Forward steps never capture: any occupant, own or
// enemy, blocks, so a capture emitted by the forward walk is discarded — and
// since the walk stops at the first occupant, a blocked intermediate square
// also suppresses the double step from the start row. The forward diagonals
// are capture-only. Any resulting move onto the far rank is flagged as a
// promotion.
func pawnMoves(b *board.Board, p Piece) []Move {
	forward := vector{0, -1}
	captures := []vector{{1, -1}, {-1, -1}}
	startRow, promotionRow := 6, 0
	if p.Color == board.Black {
		forward = vector{0, 1}
		captures = []vector{{1, 1}, {-1, 1}}
		startRow, promotionRow = 1, 7
	}

	maxSteps := 1
	if p.Row == startRow {
		maxSteps = 2
	}

	var moves []Move
	for _, m := range walk(b, p, forward, maxSteps) {
		if !m.Captures {
			moves = append(moves, m)
		}
	}
	for _, dir := range captures {
		for _, m := range walk(b, p, dir, 1) {
			if m.Captures {
				moves = append(moves, m)
			}
		}
	}
	for i := range moves {
		if moves[i].Row == promotionRow {
			moves[i].Promotion = true
		}
	}
	return moves
}
