// Package render draws a board into a PNG: light/dark squares, SVG piece
// glyphs, and file/rank labels along the margins.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	imagedraw "image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/kapu/chess-moves-go/internal/board"
)

var (
	lightSquare     = color.RGBA{233, 207, 163, 255}
	darkSquare      = color.RGBA{187, 136, 96, 255}
	marginColor     = color.RGBA{38, 36, 33, 255}
	coordinateColor = color.NRGBA{R: 222, G: 214, B: 196, A: 255}
)

type Renderer struct {
	squareSize int
}

func NewRenderer(squareSize int) *Renderer {
	if squareSize < 16 {
		squareSize = 72
	}
	return &Renderer{squareSize: squareSize}
}

// RenderPNG draws the board top-down: row 0 (rank 8) at the top, column 0
// (file a) on the left, matching the grid input orientation.
func (r *Renderer) RenderPNG(ctx context.Context, b *board.Board) ([]byte, error) {
	if b == nil {
		return nil, fmt.Errorf("board is nil")
	}

	const margin = 24
	boardSize := r.squareSize * 8
	total := boardSize + margin*2
	origin := image.Point{X: margin, Y: margin}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	img := image.NewRGBA(image.Rect(0, 0, total, total))
	imagedraw.Draw(img, img.Bounds(), image.NewUniform(marginColor), image.Point{}, imagedraw.Src)

	drawSquares(img, r.squareSize, origin)
	if err := drawPieces(img, b, r.squareSize, origin); err != nil {
		return nil, err
	}
	drawCoordinates(img, r.squareSize, origin, margin)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawSquares(dst imagedraw.Image, squareSize int, origin image.Point) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			x := origin.X + col*squareSize
			y := origin.Y + row*squareSize
			clr := lightSquare
			if (col+row)%2 == 1 {
				clr = darkSquare
			}
			imagedraw.Draw(dst, image.Rect(x, y, x+squareSize, y+squareSize), image.NewUniform(clr), image.Point{}, imagedraw.Src)
		}
	}
}

func drawPieces(dst imagedraw.Image, b *board.Board, squareSize int, origin image.Point) error {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := b.SquareAt(col, row)
			if !sq.Occupied {
				continue
			}
			glyph, err := renderPieceImage(sq.Color, sq.Kind, squareSize)
			if err != nil {
				return err
			}
			x := origin.X + col*squareSize
			y := origin.Y + row*squareSize
			imagedraw.Draw(dst, image.Rect(x, y, x+squareSize, y+squareSize), glyph, image.Point{}, imagedraw.Over)
		}
	}
	return nil
}

func drawCoordinates(dst *image.RGBA, squareSize int, origin image.Point, margin int) {
	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(coordinateColor),
		Face: face,
	}
	for col := 0; col < 8; col++ {
		label := string(rune('a' + col))
		w := drawer.MeasureString(label)
		x := origin.X + col*squareSize + squareSize/2 - w.Round()/2
		y := origin.Y + 8*squareSize + margin/2 + face.Height/2
		drawer.Dot = fixed.P(x, y)
		drawer.DrawString(label)
	}
	for row := 0; row < 8; row++ {
		label := string(rune('8' - row))
		w := drawer.MeasureString(label)
		x := margin/2 - w.Round()/2
		y := origin.Y + row*squareSize + squareSize/2 + face.Height/2
		drawer.Dot = fixed.P(x, y)
		drawer.DrawString(label)
	}
}
