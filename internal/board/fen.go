package board

import (
	"fmt"
	"strings"

	nchess "github.com/corentings/chess/v2"
)

// FromFEN builds a board from a FEN string. Only the piece placement matters
// here; side to move, castling rights and the en-passant square are accepted
// but ignored, since generation is pseudo-legal and the caller supplies the
// color to enumerate separately. A bare placement field is padded into a full
// FEN before parsing.
func FromFEN(fen string) (*Board, error) {
	fen = strings.TrimSpace(fen)
	if fen == "" {
		return nil, fmt.Errorf("empty FEN")
	}
	if !strings.Contains(fen, " ") {
		fen += " w - - 0 1"
	}

	opt, err := nchess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse FEN: %w", err)
	}
	pos := nchess.NewGame(opt).Position()

	var squares [8][8]Square
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			piece := pos.Board().Piece(nchess.NewSquare(nchess.File(file), nchess.Rank(rank)))
			if piece == nchess.NoPiece {
				continue
			}
			// nchess rank 0 is rank 1; our row 0 is rank 8.
			squares[7-rank][file] = Occupy(colorFrom(piece.Color()), kindFrom(piece.Type()))
		}
	}
	return New(squares), nil
}

func colorFrom(c nchess.Color) Color {
	if c == nchess.White {
		return White
	}
	return Black
}

func kindFrom(t nchess.PieceType) Kind {
	switch t {
	case nchess.Knight:
		return Knight
	case nchess.Bishop:
		return Bishop
	case nchess.Rook:
		return Rook
	case nchess.Queen:
		return Queen
	case nchess.King:
		return King
	default:
		return Pawn
	}
}
