// Package analysis orchestrates one move-generation pass behind the API:
// board intake (grid or FEN), generation, report rendering, the Redis result
// cache and the request archive.
package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kapu/chess-moves-go/internal/board"
	"github.com/kapu/chess-moves-go/internal/domain"
	"github.com/kapu/chess-moves-go/internal/movegen"
	"github.com/kapu/chess-moves-go/internal/report"
	"github.com/kapu/chess-moves-go/pkg/movedto"
)

var (
	ErrMissingBoard   = errors.New("analysis request requires a board grid or FEN")
	ErrAmbiguousBoard = errors.New("analysis request must carry either a board grid or FEN, not both")
)

// BoardRenderer produces a PNG view of a board. Optional; the service works
// without one and simply omits images.
type BoardRenderer interface {
	RenderPNG(ctx context.Context, b *board.Board) ([]byte, error)
}

type Service struct {
	formatter *report.Formatter
	cache     *Cache
	repo      Repository
	renderer  BoardRenderer
	logger    *zap.Logger
}

// NewService wires the analysis pipeline. cache, repo and renderer may each
// be nil; the corresponding step is skipped.
func NewService(formatter *report.Formatter, cache *Cache, repo Repository, renderer BoardRenderer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		formatter: formatter,
		cache:     cache,
		repo:      repo,
		renderer:  renderer,
		logger:    logger,
	}
}

// Analyze runs one (board, color) pass. Cache hits return the stored response
// marked Cached; archive and cache failures are logged, never fatal, since
// the computed result is already in hand.
func (s *Service) Analyze(ctx context.Context, req movedto.AnalyzeRequest) (*movedto.AnalyzeResponse, error) {
	color, err := board.ParseColor(req.Color)
	if err != nil {
		return nil, err
	}

	var (
		b      *board.Board
		source string
	)
	switch {
	case len(req.Board) > 0 && strings.TrimSpace(req.FEN) != "":
		return nil, ErrAmbiguousBoard
	case len(req.Board) > 0:
		source = "grid"
		b, err = board.ParseGrid(req.Board)
	case strings.TrimSpace(req.FEN) != "":
		source = "fen"
		b, err = board.FromFEN(req.FEN)
	default:
		return nil, ErrMissingBoard
	}
	if err != nil {
		return nil, err
	}

	rows := b.GridRows()
	digest := digestFor(rows, color, req.IncludeImage)

	if s.cache != nil {
		cached, cerr := s.cache.Get(ctx, digest)
		if cerr != nil {
			s.logger.Warn("analysis cache read failed", zap.Error(cerr))
		} else if cached != nil {
			cached.Cached = true
			return cached, nil
		}
	}

	result := movegen.Generate(b, color)
	resp := s.buildResponse(color, rows, result)

	if req.IncludeImage && s.renderer != nil {
		png, rerr := s.renderer.RenderPNG(ctx, b)
		if rerr != nil {
			s.logger.Warn("board render failed", zap.Error(rerr))
		} else {
			resp.BoardImage = base64.StdEncoding.EncodeToString(png)
		}
	}

	if s.cache != nil {
		if cerr := s.cache.Set(ctx, digest, resp); cerr != nil {
			s.logger.Warn("analysis cache write failed", zap.Error(cerr))
		}
	}

	if s.repo != nil {
		record := &domain.Analysis{
			RequestID:  resp.RequestID,
			Color:      color.String(),
			BoardText:  strings.Join(rows, "\n"),
			Source:     source,
			PieceCount: len(resp.Pieces),
			MoveCount:  countMoves(result),
			CreatedAt:  time.Now().UTC(),
		}
		if _, rerr := s.repo.InsertAnalysis(ctx, record); rerr != nil {
			s.logger.Warn("analysis archive failed", zap.Error(rerr))
		}
	}

	return resp, nil
}

// Recent returns the latest archived analyses.
func (s *Service) Recent(ctx context.Context, limit int) ([]*domain.Analysis, error) {
	if s.repo == nil {
		return []*domain.Analysis{}, nil
	}
	return s.repo.RecentAnalyses(ctx, limit)
}

func (s *Service) buildResponse(color board.Color, rows []string, result []movegen.PieceMoves) *movedto.AnalyzeResponse {
	pieces := make([]movedto.PieceMoves, 0, len(result))
	for _, pm := range result {
		moves := make([]movedto.Move, 0, len(pm.Moves))
		for _, m := range pm.Moves {
			dto := movedto.Move{
				Square:    m.Square(),
				Promotion: m.Promotion,
				Text:      s.formatter.MoveText(m),
			}
			if m.Captures {
				dto.Capture = m.Captured.String()
			}
			moves = append(moves, dto)
		}
		pieces = append(pieces, movedto.PieceMoves{
			Piece:  pm.Piece.Kind.Title(),
			Square: pm.Piece.Square(),
			Moves:  moves,
			Line:   s.formatter.PieceLine(pm),
		})
	}
	return &movedto.AnalyzeResponse{
		RequestID: uuid.NewString(),
		Color:     color.String(),
		Pieces:    pieces,
		Board:     rows,
	}
}

func countMoves(result []movegen.PieceMoves) int {
	total := 0
	for _, pm := range result {
		total += len(pm.Moves)
	}
	return total
}

// digestFor keys the cache by the canonical board text, the enumerated side
// and whether an image was requested.
func digestFor(rows []string, color board.Color, image bool) string {
	h := sha256.New()
	h.Write([]byte(strings.Join(rows, "\n")))
	h.Write([]byte("|" + color.Code()))
	if image {
		h.Write([]byte("|img"))
	}
	return hex.EncodeToString(h.Sum(nil))
}
