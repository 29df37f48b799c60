package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	appcfg "github.com/kapu/chess-moves-go/internal/config"
	"github.com/kapu/chess-moves-go/internal/msgcat"
	"github.com/kapu/chess-moves-go/internal/obslog"
	"github.com/kapu/chess-moves-go/internal/render"
	"github.com/kapu/chess-moves-go/internal/report"
	"github.com/kapu/chess-moves-go/internal/service/analysis"
	"github.com/kapu/chess-moves-go/pkg/movedto"
)

func main() {
	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := obslog.InitFromEnv(); err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	logger := obslog.L()
	defer func() { _ = logger.Sync() }()

	cat, err := msgcat.New(cfg.TemplateDir)
	if err != nil {
		logger.Fatal("message catalog init failed", zap.Error(err))
	}
	formatter := report.NewFormatter(cat)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Cache and archive are optional: without Redis every request is computed
	// fresh, without Postgres the archive stays in memory.
	var cache *analysis.Cache
	if cfg.RedisURL != "" {
		opt, perr := redis.ParseURL(cfg.RedisURL)
		if perr != nil {
			logger.Fatal("invalid REDIS_URL", zap.Error(perr))
		}
		rdb := redis.NewClient(opt)
		if perr := rdb.Ping(ctx).Err(); perr != nil {
			logger.Warn("redis unavailable, cache disabled", zap.Error(perr))
		} else {
			cache = analysis.NewCache(rdb, time.Duration(cfg.CacheTTLSec)*time.Second)
		}
	}

	repo := analysis.NewMemoryRepository()
	if cfg.DatabaseURL != "" {
		db, derr := sql.Open("postgres", cfg.DatabaseURL)
		if derr != nil {
			logger.Fatal("invalid DATABASE_URL", zap.Error(derr))
		}
		if derr := db.PingContext(ctx); derr != nil {
			logger.Warn("database unavailable, using in-memory archive", zap.Error(derr))
		} else {
			repo = analysis.NewRepository(db)
			defer db.Close()
		}
	}

	svc := analysis.NewService(formatter, cache, repo, render.NewRenderer(cfg.RenderSquareSize), logger)

	server := &fasthttp.Server{
		Name:               "chess-moves",
		Handler:            routes(svc, logger),
		MaxRequestBodySize: cfg.MaxBodyBytes,
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       10 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.String("addr", cfg.ListenAddr))
		if serr := server.ListenAndServe(cfg.ListenAddr); serr != nil {
			logger.Fatal("server stopped", zap.Error(serr))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down")
	_ = server.Shutdown()
}

func routes(svc *analysis.Service, logger *zap.Logger) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		switch string(ctx.Path()) {
		case "/healthz":
			ctx.SetStatusCode(fasthttp.StatusOK)
			ctx.SetBodyString("ok")
		case "/api/analyze":
			handleAnalyze(ctx, svc, logger)
		case "/api/recent":
			handleRecent(ctx, svc, logger)
		default:
			writeError(ctx, fasthttp.StatusNotFound, "not found")
		}
	}
}

func handleAnalyze(ctx *fasthttp.RequestCtx, svc *analysis.Service, logger *zap.Logger) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "use POST")
		return
	}
	var req movedto.AnalyzeRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	resp, err := svc.Analyze(ctx, req)
	if err != nil {
		// Generation itself cannot fail; any error here is a malformed request.
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	logger.Debug("analysis served",
		zap.String("request_id", resp.RequestID),
		zap.String("color", resp.Color),
		zap.Bool("cached", resp.Cached))
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func handleRecent(ctx *fasthttp.RequestCtx, svc *analysis.Service, logger *zap.Logger) {
	limit := 10
	if v := string(ctx.QueryArgs().Peek("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	items, err := svc.Recent(ctx, limit)
	if err != nil {
		logger.Error("recent analyses lookup failed", zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "archive unavailable")
		return
	}
	out := make([]movedto.AnalysisSummary, 0, len(items))
	for _, a := range items {
		out = append(out, movedto.AnalysisSummary{
			ID:         a.ID,
			RequestID:  a.RequestID,
			Color:      a.Color,
			Source:     a.Source,
			PieceCount: a.PieceCount,
			MoveCount:  a.MoveCount,
			CreatedAt:  a.CreatedAt,
		})
	}
	writeJSON(ctx, fasthttp.StatusOK, out)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "encode response")
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(payload)
}

func writeError(ctx *fasthttp.RequestCtx, status int, msg string) {
	payload, _ := json.Marshal(movedto.ErrorResponse{Error: msg})
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(payload)
}
