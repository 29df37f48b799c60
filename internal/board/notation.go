package board

const (
	fileLetters = "abcdefgh"
	rankDigits  = "87654321"
)

// Algebraic maps board coordinates to algebraic notation: column 0..7 → a..h,
// row 0..7 → 8..1 (row 0 is rank 8). Panics with *BoundsError off the board.
func Algebraic(col, row int) string {
	if !InBounds(col, row) {
		panic(&BoundsError{Col: col, Row: row})
	}
	return string([]byte{fileLetters[col], rankDigits[row]})
}
