package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kapu/chess-moves-go/internal/msgcat"
	"github.com/kapu/chess-moves-go/internal/report"
	"github.com/kapu/chess-moves-go/pkg/movedto"
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

func newFormatter(t *testing.T) *report.Formatter {
	t.Helper()
	cat, err := msgcat.New("")
	if err != nil {
		t.Fatalf("msgcat.New: %v", err)
	}
	return report.NewFormatter(cat)
}

func TestAnalyzeGrid(t *testing.T) {
	svc := NewService(newFormatter(t), nil, nil, nil, zap.NewNop())
	resp, err := svc.Analyze(context.Background(), movedto.AnalyzeRequest{Board: startRows, Color: "w"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if resp.Color != "white" || resp.RequestID == "" {
		t.Fatalf("response header = %+v", resp)
	}
	if len(resp.Pieces) != 16 {
		t.Fatalf("%d pieces, want 16", len(resp.Pieces))
	}
	first := resp.Pieces[0]
	if first.Piece != "Pawn" || first.Square != "a2" {
		t.Fatalf("first piece = %+v, want the a2 pawn", first)
	}
	if first.Line != "Pawn (a2): a3, a4" {
		t.Fatalf("first line = %q", first.Line)
	}
	total := 0
	for _, p := range resp.Pieces {
		total += len(p.Moves)
	}
	if total != 20 {
		t.Fatalf("%d moves, want 20", total)
	}
}

func TestAnalyzeFENMatchesGrid(t *testing.T) {
	svc := NewService(newFormatter(t), nil, nil, nil, zap.NewNop())
	ctx := context.Background()

	fromGrid, err := svc.Analyze(ctx, movedto.AnalyzeRequest{Board: startRows, Color: "b"})
	if err != nil {
		t.Fatalf("grid analyze: %v", err)
	}
	fromFEN, err := svc.Analyze(ctx, movedto.AnalyzeRequest{
		FEN:   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Color: "b",
	})
	if err != nil {
		t.Fatalf("fen analyze: %v", err)
	}
	if len(fromGrid.Pieces) != len(fromFEN.Pieces) {
		t.Fatalf("piece counts differ: %d vs %d", len(fromGrid.Pieces), len(fromFEN.Pieces))
	}
	for i := range fromGrid.Pieces {
		if fromGrid.Pieces[i].Line != fromFEN.Pieces[i].Line {
			t.Fatalf("line %d differs: %q vs %q", i, fromGrid.Pieces[i].Line, fromFEN.Pieces[i].Line)
		}
	}
}

func TestAnalyzeInputErrors(t *testing.T) {
	svc := NewService(newFormatter(t), nil, nil, nil, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Analyze(ctx, movedto.AnalyzeRequest{Color: "w"}); !errors.Is(err, ErrMissingBoard) {
		t.Errorf("missing board: err = %v", err)
	}
	if _, err := svc.Analyze(ctx, movedto.AnalyzeRequest{Board: startRows, FEN: "8/8/8/8/8/8/8/8", Color: "w"}); !errors.Is(err, ErrAmbiguousBoard) {
		t.Errorf("ambiguous board: err = %v", err)
	}
	if _, err := svc.Analyze(ctx, movedto.AnalyzeRequest{Board: startRows, Color: "purple"}); err == nil {
		t.Errorf("bad color accepted")
	}
	if _, err := svc.Analyze(ctx, movedto.AnalyzeRequest{Board: startRows[:5], Color: "w"}); err == nil {
		t.Errorf("short grid accepted")
	}
}

func TestAnalyzeCacheRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewCache(rdb, time.Minute)
	repo := NewMemoryRepository()
	svc := NewService(newFormatter(t), cache, repo, nil, zap.NewNop())
	ctx := context.Background()

	req := movedto.AnalyzeRequest{Board: startRows, Color: "w"}
	first, err := svc.Analyze(ctx, req)
	if err != nil {
		t.Fatalf("first analyze: %v", err)
	}
	if first.Cached {
		t.Fatalf("first pass must not be a cache hit")
	}

	second, err := svc.Analyze(ctx, req)
	if err != nil {
		t.Fatalf("second analyze: %v", err)
	}
	if !second.Cached {
		t.Fatalf("second pass should hit the cache")
	}
	if second.RequestID != first.RequestID {
		t.Fatalf("cache returned a different result: %q vs %q", second.RequestID, first.RequestID)
	}

	// the cached pass skips the archive
	recent, err := svc.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("archived %d analyses, want 1", len(recent))
	}
	got := recent[0]
	if got.Color != "white" || got.Source != "grid" || got.PieceCount != 16 || got.MoveCount != 20 {
		t.Fatalf("archived record = %+v", got)
	}
}

func TestAnalyzeDifferentColorsMiss(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	svc := NewService(newFormatter(t), NewCache(rdb, time.Minute), nil, nil, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Analyze(ctx, movedto.AnalyzeRequest{Board: startRows, Color: "w"}); err != nil {
		t.Fatalf("white analyze: %v", err)
	}
	resp, err := svc.Analyze(ctx, movedto.AnalyzeRequest{Board: startRows, Color: "b"})
	if err != nil {
		t.Fatalf("black analyze: %v", err)
	}
	if resp.Cached {
		t.Fatalf("different color must not share the cache entry")
	}
}
