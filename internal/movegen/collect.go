package movegen

import "github.com/kapu/chess-moves-go/internal/board"

// Collect scans all 64 squares and returns one Piece per occupant of the
// given color. Black's rows are visited from row 7 up to row 0 and White's
// from row 0 down to row 7, so each side's most advanced pieces come first;
// columns go left to right. The order only shapes presentation, never the
// move sets themselves.
func Collect(b *board.Board, c board.Color) []Piece {
	var pieces []Piece
	for i := 0; i < 8; i++ {
		row := i
		if c == board.Black {
			row = 7 - i
		}
		for col := 0; col < 8; col++ {
			sq := b.SquareAt(col, row)
			if sq.Occupied && sq.Color == c {
				pieces = append(pieces, Piece{Color: sq.Color, Kind: sq.Kind, Col: col, Row: row})
			}
		}
	}
	return pieces
}

// Generate is the whole pass: collect one side's pieces and compute each
// piece's move list. Pure in (board, color); calling it twice yields the
// same result in the same order.
func Generate(b *board.Board, c board.Color) []PieceMoves {
	pieces := Collect(b, c)
	result := make([]PieceMoves, 0, len(pieces))
	for _, p := range pieces {
		result = append(result, PieceMoves{Piece: p, Moves: Moves(b, p)})
	}
	return result
}
