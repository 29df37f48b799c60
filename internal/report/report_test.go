package report

import (
	"strings"
	"testing"

	"github.com/kapu/chess-moves-go/internal/board"
	"github.com/kapu/chess-moves-go/internal/movegen"
	"github.com/kapu/chess-moves-go/internal/msgcat"
)

var startRows = []string{
	"br,bn,bb,bq,bk,bb,bn,br",
	"bp,bp,bp,bp,bp,bp,bp,bp",
	"x,x,x,x,x,x,x,x",
	"x,x,x,x,x,x,x,x",
	"x,x,x,x,x,x,x,x",
	"x,x,x,x,x,x,x,x",
	"wp,wp,wp,wp,wp,wp,wp,wp",
	"wr,wn,wb,wq,wk,wb,wn,wr",
}

func newFormatter(t *testing.T) *Formatter {
	t.Helper()
	cat, err := msgcat.New("")
	if err != nil {
		t.Fatalf("msgcat.New: %v", err)
	}
	return NewFormatter(cat)
}

func TestPieceLineKnight(t *testing.T) {
	f := newFormatter(t)
	b, err := board.ParseGrid(startRows)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	p := movegen.Piece{Color: board.White, Kind: board.Knight, Col: 6, Row: 7}
	pm := movegen.PieceMoves{Piece: p, Moves: movegen.Moves(b, p)}

	if got := f.PieceLine(pm); got != "Knight (g1): f3, h3" {
		t.Fatalf("PieceLine = %q", got)
	}
}

func TestMoveTextAnnotations(t *testing.T) {
	f := newFormatter(t)
	cases := []struct {
		move movegen.Move
		want string
	}{
		{movegen.Move{Col: 0, Row: 5}, "a3"},
		{movegen.Move{Col: 0, Row: 5, Captures: true, Captured: board.Pawn}, "a3 (Capture Pawn)"},
		{movegen.Move{Col: 4, Row: 0, Promotion: true}, "Promote on e8"},
		{movegen.Move{Col: 3, Row: 0, Captures: true, Captured: board.Rook, Promotion: true}, "Promote on d8 (Capture Rook)"},
		{movegen.Move{Col: 6, Row: 7, Captures: true, Captured: board.Queen}, "g1 (Capture Queen)"},
	}
	for _, tc := range cases {
		if got := f.MoveText(tc.move); got != tc.want {
			t.Errorf("MoveText(%+v) = %q, want %q", tc.move, got, tc.want)
		}
	}
}

func TestLinesPreserveOrder(t *testing.T) {
	f := newFormatter(t)
	b, err := board.ParseGrid(startRows)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	result := movegen.Generate(b, board.White)
	lines := f.Lines(result)
	if len(lines) != 16 {
		t.Fatalf("%d lines, want 16", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Pawn (a2):") {
		t.Errorf("first line = %q, want the a2 pawn", lines[0])
	}
}

func TestDocumentLayout(t *testing.T) {
	f := newFormatter(t)
	b, err := board.ParseGrid(startRows)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	doc := f.Document(b, movegen.Generate(b, board.White))
	for _, want := range []string{
		"***** CURRENT BOARD *****",
		"***** AVAILABLE MOVES *****",
		"   a   b   c   d   e   f   g   h",
		"Knight (g1): f3, h3",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
	boardIdx := strings.Index(doc, "CURRENT BOARD")
	movesIdx := strings.Index(doc, "AVAILABLE MOVES")
	if boardIdx < 0 || movesIdx < 0 || movesIdx < boardIdx {
		t.Errorf("headers out of order")
	}
}
