package movegen

import "github.com/kapu/chess-moves-go/internal/board"

// walk traces one ray from the piece's square: repeatedly apply the direction
// vector, emitting a move per empty square, until the board edge, maxSteps,
// or the first occupant. An enemy occupant yields a final capturing move; a
// friendly occupant ends the ray without a move. Moves come back in
// increasing distance from the origin.
func walk(b *board.Board, p Piece, dir vector, maxSteps int) []Move {
	var moves []Move
	col, row := p.Col, p.Row
	for step := 0; step < maxSteps; step++ {
		col += dir.dc
		row += dir.dr
		if !board.InBounds(col, row) {
			break
		}
		sq := b.SquareAt(col, row)
		if !sq.Occupied {
			moves = append(moves, Move{Col: col, Row: row})
			continue
		}
		if sq.Color != p.Color {
			moves = append(moves, Move{Col: col, Row: row, Captures: true, Captured: sq.Kind})
		}
		break
	}
	return moves
}

// slide runs the walker over a direction table, concatenating rays in table
// order. Serves the sliding pieces (maxSteps 7) and the king (maxSteps 1).
func slide(b *board.Board, p Piece, dirs []vector, maxSteps int) []Move {
	var moves []Move
	for _, dir := range dirs {
		moves = append(moves, walk(b, p, dir, maxSteps)...)
	}
	return moves
}
