package domain

import "time"

// Analysis is one archived move-generation request: the canonical board text,
// the side that was enumerated, and summary counts for the result.
type Analysis struct {
	ID         int64
	RequestID  string
	Color      string
	BoardText  string
	Source     string // "grid" or "fen"
	PieceCount int
	MoveCount  int
	CreatedAt  time.Time
}
