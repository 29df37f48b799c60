package board

import "fmt"

// Color identifies the side a piece belongs to.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Code returns the single-letter color code used by the grid format.
func (c Color) Code() string {
	if c == White {
		return "w"
	}
	return "b"
}

func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// Kind is the closed set of piece types.
type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{"pawn", "knight", "bishop", "rook", "queen", "king"}
var kindTitles = [...]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
var kindCodes = [...]string{"p", "n", "b", "r", "q", "k"}

func (k Kind) String() string { return kindNames[k] }

// Title returns the capitalized piece name used in reports.
func (k Kind) Title() string { return kindTitles[k] }

// Code returns the single-letter piece code used by the grid format.
func (k Kind) Code() string { return kindCodes[k] }

// Square is one cell of the board: empty, or holding a colored piece.
type Square struct {
	Occupied bool
	Color    Color
	Kind     Kind
}

// Occupy builds an occupied square.
func Occupy(c Color, k Kind) Square {
	return Square{Occupied: true, Color: c, Kind: k}
}

func (s Square) token() string {
	if !s.Occupied {
		return emptyToken
	}
	return s.Color.Code() + s.Kind.Code()
}

// Board is a frozen 8×8 grid. Row 0 is rank 8 (the top of the input grid),
// row 7 is rank 1; column 0 is file a. A Board is never mutated after
// construction: move generation only reads it.
type Board struct {
	squares [8][8]Square // [row][col]
}

// New builds a board from an already-validated square grid. The array is
// copied, so the caller keeps no handle into the board's state.
func New(squares [8][8]Square) *Board {
	return &Board{squares: squares}
}

// BoundsError reports a dereference outside [0,7]×[0,7]. Off-board access is
// a caller defect, not an input condition, so SquareAt panics with it rather
// than clamping or returning a default.
type BoundsError struct {
	Col, Row int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("board access out of bounds: column %d, row %d", e.Col, e.Row)
}

// InBounds reports whether (col,row) addresses a real square. Callers are
// expected to check this before SquareAt.
func InBounds(col, row int) bool {
	return col >= 0 && col <= 7 && row >= 0 && row <= 7
}

// SquareAt returns the square at (col,row). Panics with *BoundsError when the
// coordinate is off the board.
func (b *Board) SquareAt(col, row int) Square {
	if !InBounds(col, row) {
		panic(&BoundsError{Col: col, Row: row})
	}
	return b.squares[row][col]
}
