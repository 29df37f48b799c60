// Package report renders generation results into the line-oriented text
// breakdown: one line per piece, destinations in algebraic notation, with
// capture and promotion annotations. Templates come from the message catalog
// so deployments can restyle the output without a rebuild.
package report

import (
	"fmt"
	"strings"

	"github.com/kapu/chess-moves-go/internal/board"
	"github.com/kapu/chess-moves-go/internal/movegen"
	"github.com/kapu/chess-moves-go/internal/msgcat"
)

type Formatter struct {
	cat *msgcat.Catalog
}

func NewFormatter(cat *msgcat.Catalog) *Formatter {
	return &Formatter{cat: cat}
}

// MoveText renders a single destination: the bare square for a quiet move,
// "(Capture <kind>)" appended for captures, and the whole thing wrapped in
// "Promote on ..." when the promotion flag is set (a capturing promotion
// carries both annotations).
func (f *Formatter) MoveText(m movegen.Move) string {
	text := m.Square()
	if m.Captures {
		text = f.cat.RenderOr("report.capture",
			map[string]any{"Square": text, "Kind": m.Captured.Title()},
			fmt.Sprintf("%s (Capture %s)", text, m.Captured.Title()))
	}
	if m.Promotion {
		text = f.cat.RenderOr("report.promotion",
			map[string]any{"Move": text},
			"Promote on "+text)
	}
	return text
}

// PieceLine renders one piece's breakdown, e.g. "Knight (g1): f3, h3".
func (f *Formatter) PieceLine(pm movegen.PieceMoves) string {
	moves := make([]string, 0, len(pm.Moves))
	for _, m := range pm.Moves {
		moves = append(moves, f.MoveText(m))
	}
	piece := pm.Piece.Kind.Title()
	square := pm.Piece.Square()
	joined := strings.Join(moves, ", ")
	return f.cat.RenderOr("report.piece_line",
		map[string]any{"Piece": piece, "Square": square, "Moves": joined},
		fmt.Sprintf("%s (%s): %s", piece, square, joined))
}

// Lines renders the per-piece breakdown for a whole generation pass,
// preserving the collector's piece order.
func (f *Formatter) Lines(result []movegen.PieceMoves) []string {
	lines := make([]string, 0, len(result))
	for _, pm := range result {
		lines = append(lines, f.PieceLine(pm))
	}
	return lines
}

// Document renders the full text output: the labeled board under its header,
// then the move breakdown under its own.
func (f *Formatter) Document(b *board.Board, result []movegen.PieceMoves) string {
	var sb strings.Builder
	sb.WriteString(f.cat.RenderOr("report.board_header", nil, "***** CURRENT BOARD *****"))
	sb.WriteString("\n\n")
	sb.WriteString(b.Labeled())
	sb.WriteString("\n\n")
	sb.WriteString(f.cat.RenderOr("report.moves_header", nil, "***** AVAILABLE MOVES *****"))
	sb.WriteString("\n\n")
	for _, line := range f.Lines(result) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
