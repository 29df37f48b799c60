// Package movedto holds the wire types of the analysis API.
package movedto

import "time"

// AnalyzeRequest asks for the pseudo-legal moves of one side. Exactly one of
// Board (8 comma-separated token rows, rank 8 first) or FEN must be set.
type AnalyzeRequest struct {
	Board        []string `json:"board,omitempty"`
	FEN          string   `json:"fen,omitempty"`
	Color        string   `json:"color"`
	IncludeImage bool     `json:"include_image,omitempty"`
}

// Move is one destination square. Capture names the captured piece kind when
// the move takes; Text is the rendered report form of the move.
type Move struct {
	Square    string `json:"square"`
	Capture   string `json:"capture,omitempty"`
	Promotion bool   `json:"promotion,omitempty"`
	Text      string `json:"text"`
}

// PieceMoves is one piece's breakdown, plus its rendered report line.
type PieceMoves struct {
	Piece  string `json:"piece"`
	Square string `json:"square"`
	Moves  []Move `json:"moves"`
	Line   string `json:"line"`
}

type AnalyzeResponse struct {
	RequestID  string       `json:"request_id"`
	Color      string       `json:"color"`
	Pieces     []PieceMoves `json:"pieces"`
	Board      []string     `json:"board"`
	BoardImage string       `json:"board_image,omitempty"` // base64 PNG
	Cached     bool         `json:"cached,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// AnalysisSummary is one archived request as listed by the recent endpoint.
type AnalysisSummary struct {
	ID         int64     `json:"id"`
	RequestID  string    `json:"request_id"`
	Color      string    `json:"color"`
	Source     string    `json:"source"`
	PieceCount int       `json:"piece_count"`
	MoveCount  int       `json:"move_count"`
	CreatedAt  time.Time `json:"created_at"`
}
