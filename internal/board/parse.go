package board

import (
	"fmt"
	"strings"
)

const emptyToken = "x"

// TokenError reports a malformed cell token in the input grid.
type TokenError struct {
	Token string
	Col   int
	Row   int
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("invalid board token %q at column %d, row %d", e.Token, e.Col, e.Row)
}

var colorCodes = map[string]Color{"w": White, "b": Black}

var kindsByCode = map[string]Kind{
	"p": Pawn,
	"n": Knight,
	"b": Bishop,
	"r": Rook,
	"q": Queen,
	"k": King,
}

// ParseGrid builds a board from 8 comma-separated rows of tokens: "x" for an
// empty square or <color><kind> (e.g. "wp", "bn"). The first row is rank 8.
// Validation covers the malformed inputs the grid format can produce: wrong
// row/column counts, unknown color or kind codes, uppercase tokens.
func ParseGrid(rows []string) (*Board, error) {
	if len(rows) != 8 {
		return nil, fmt.Errorf("board grid must have 8 rows, got %d", len(rows))
	}

	var squares [8][8]Square
	for row, line := range rows {
		cells := strings.Split(strings.TrimSpace(line), ",")
		if len(cells) != 8 {
			return nil, fmt.Errorf("board row %d must have 8 columns, got %d", row+1, len(cells))
		}
		for col, cell := range cells {
			tok := strings.TrimSpace(cell)
			if tok == emptyToken {
				continue
			}
			if len(tok) != 2 || tok != strings.ToLower(tok) {
				return nil, &TokenError{Token: tok, Col: col, Row: row}
			}
			color, ok := colorCodes[tok[:1]]
			if !ok {
				return nil, &TokenError{Token: tok, Col: col, Row: row}
			}
			kind, ok := kindsByCode[tok[1:]]
			if !ok {
				return nil, &TokenError{Token: tok, Col: col, Row: row}
			}
			squares[row][col] = Occupy(color, kind)
		}
	}
	return New(squares), nil
}

// ParseColor decodes the active-color token ('w' or 'b').
func ParseColor(s string) (Color, error) {
	c, ok := colorCodes[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return White, fmt.Errorf("invalid color token %q (want w or b)", s)
	}
	return c, nil
}
