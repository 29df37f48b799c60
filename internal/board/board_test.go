package board

import (
	"errors"
	"testing"
)

func TestAlgebraic(t *testing.T) {
	cases := []struct {
		col, row int
		want     string
	}{
		{0, 0, "a8"},
		{6, 0, "g8"},
		{7, 0, "h8"},
		{0, 7, "a1"},
		{7, 7, "h1"},
		{4, 4, "e4"},
	}
	for _, tc := range cases {
		if got := Algebraic(tc.col, tc.row); got != tc.want {
			t.Errorf("Algebraic(%d,%d) = %q, want %q", tc.col, tc.row, got, tc.want)
		}
	}
}

func TestSquareAtBoundsPanic(t *testing.T) {
	b := New([8][8]Square{})
	for _, coord := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {-1, 8}} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("SquareAt(%d,%d) did not panic", coord[0], coord[1])
				}
				err, ok := r.(error)
				if !ok {
					t.Fatalf("SquareAt(%d,%d) panicked with %T, want error", coord[0], coord[1], r)
				}
				var be *BoundsError
				if !errors.As(err, &be) {
					t.Fatalf("SquareAt(%d,%d) panicked with %v, want *BoundsError", coord[0], coord[1], err)
				}
			}()
			b.SquareAt(coord[0], coord[1])
		}()
	}
}

func TestSquareAtInRange(t *testing.T) {
	var squares [8][8]Square
	squares[3][2] = Occupy(Black, Queen)
	b := New(squares)

	sq := b.SquareAt(2, 3)
	if !sq.Occupied || sq.Color != Black || sq.Kind != Queen {
		t.Fatalf("SquareAt(2,3) = %+v, want occupied black queen", sq)
	}
	if b.SquareAt(0, 0).Occupied {
		t.Fatalf("SquareAt(0,0) should be empty")
	}
}

func TestNewCopiesSquares(t *testing.T) {
	var squares [8][8]Square
	b := New(squares)
	squares[0][0] = Occupy(White, Rook)
	if b.SquareAt(0, 0).Occupied {
		t.Fatalf("board shared state with the caller's array")
	}
}
