package analysis

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kapu/chess-moves-go/internal/domain"
)

type Repository interface {
	InsertAnalysis(ctx context.Context, a *domain.Analysis) (int64, error)
	RecentAnalyses(ctx context.Context, limit int) ([]*domain.Analysis, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) InsertAnalysis(ctx context.Context, a *domain.Analysis) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("nil analysis payload")
	}

	const query = `
		INSERT INTO move_analyses (
			request_id,
			color,
			board_text,
			source,
			piece_count,
			move_count,
			created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := r.db.QueryRowContext(
		ctx,
		query,
		a.RequestID,
		a.Color,
		a.BoardText,
		a.Source,
		a.PieceCount,
		a.MoveCount,
		a.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert analysis: %w", err)
	}
	return id, nil
}

func (r *repository) RecentAnalyses(ctx context.Context, limit int) ([]*domain.Analysis, error) {
	if limit <= 0 {
		limit = 10
	}
	const query = `
		SELECT
			id,
			request_id,
			color,
			board_text,
			source,
			piece_count,
			move_count,
			created_at
		FROM move_analyses
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*domain.Analysis{}, nil
		}
		return nil, fmt.Errorf("select analyses: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.Analysis, 0, limit)
	for rows.Next() {
		var a domain.Analysis
		if err := rows.Scan(
			&a.ID,
			&a.RequestID,
			&a.Color,
			&a.BoardText,
			&a.Source,
			&a.PieceCount,
			&a.MoveCount,
			&a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		items = append(items, &a)
	}
	return items, rows.Err()
}
