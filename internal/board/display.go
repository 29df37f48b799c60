package board

import "strings"

// Labeled renders the grid with file and rank labels, mirroring the input
// token format: empty squares print as x, pieces as their two-letter token.
func (b *Board) Labeled() string {
	var sb strings.Builder
	sb.WriteString("   a   b   c   d   e   f   g   h")
	for row := 0; row < 8; row++ {
		sb.WriteByte('\n')
		sb.WriteByte(rankDigits[row])
		for col := 0; col < 8; col++ {
			sq := b.squares[row][col]
			if sq.Occupied {
				sb.WriteString("  ")
				sb.WriteString(sq.token())
			} else {
				sb.WriteString("  x ")
			}
		}
	}
	return sb.String()
}

// GridRows renders the board back into its 8-row token form. Used for cache
// keys and archive records, where a canonical text form is wanted regardless
// of whether the request arrived as a grid or as FEN.
func (b *Board) GridRows() []string {
	rows := make([]string, 8)
	for row := 0; row < 8; row++ {
		cells := make([]string, 8)
		for col := 0; col < 8; col++ {
			cells[col] = b.squares[row][col].token()
		}
		rows[row] = strings.Join(cells, ",")
	}
	return rows
}
