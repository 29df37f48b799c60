package board

import "testing"

func TestFromFENStartPosition(t *testing.T) {
	fromFEN, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	fromGrid, err := ParseGrid(startRows)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if fromFEN.SquareAt(col, row) != fromGrid.SquareAt(col, row) {
				t.Errorf("square (%d,%d): FEN %+v, grid %+v",
					col, row, fromFEN.SquareAt(col, row), fromGrid.SquareAt(col, row))
			}
		}
	}
}

func TestFromFENBarePlacement(t *testing.T) {
	b, err := FromFEN("8/8/8/8/8/8/8/R7")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	sq := b.SquareAt(0, 7)
	if !sq.Occupied || sq.Color != White || sq.Kind != Rook {
		t.Fatalf("square (0,7) = %+v, want white rook", sq)
	}
}

func TestFromFENInvalid(t *testing.T) {
	for _, fen := range []string{"", "not a fen", "9/8/8/8/8/8/8/8 w - - 0 1"} {
		if _, err := FromFEN(fen); err == nil {
			t.Errorf("FromFEN(%q) should fail", fen)
		}
	}
}
