package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/kapu/chess-moves-go/internal/board"
	"github.com/kapu/chess-moves-go/internal/movegen"
	"github.com/kapu/chess-moves-go/internal/msgcat"
	"github.com/kapu/chess-moves-go/internal/report"
)

func main() {
	file := flag.String("file", "", "read the board and color from a file instead of stdin")
	fen := flag.String("fen", "", "FEN piece placement instead of a grid")
	colorFlag := flag.String("color", "", "side to enumerate (w or b); overrides the input's color line")
	templates := flag.String("templates", "", "optional directory of message template overrides")
	flag.Parse()

	cat, err := msgcat.New(*templates)
	if err != nil {
		log.Fatalf("message catalog error: %v", err)
	}
	formatter := report.NewFormatter(cat)

	var (
		b *board.Board
		c board.Color
	)

	if strings.TrimSpace(*fen) != "" {
		b, err = board.FromFEN(*fen)
		if err != nil {
			log.Fatalf("board error: %v", err)
		}
		if strings.TrimSpace(*colorFlag) == "" {
			log.Fatalf("-color is required with -fen")
		}
		c, err = board.ParseColor(*colorFlag)
		if err != nil {
			log.Fatalf("color error: %v", err)
		}
	} else {
		in := io.Reader(os.Stdin)
		if *file != "" {
			f, ferr := os.Open(*file)
			if ferr != nil {
				log.Fatalf("open input: %v", ferr)
			}
			defer f.Close()
			in = f
		}
		rows, colorTok, rerr := readGrid(in)
		if rerr != nil {
			log.Fatalf("read input: %v", rerr)
		}
		b, err = board.ParseGrid(rows)
		if err != nil {
			log.Fatalf("board error: %v", err)
		}
		if strings.TrimSpace(*colorFlag) != "" {
			colorTok = *colorFlag
		}
		c, err = board.ParseColor(colorTok)
		if err != nil {
			log.Fatalf("color error: %v", err)
		}
	}

	result := movegen.Generate(b, c)
	fmt.Println(formatter.Document(b, result))
}

// readGrid consumes 8 board rows plus an optional trailing color line,
// skipping blank lines.
func readGrid(r io.Reader) ([]string, string, error) {
	sc := bufio.NewScanner(r)
	var lines []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == 9 {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, "", err
	}
	if len(lines) < 8 {
		return nil, "", fmt.Errorf("expected 8 board rows, got %d", len(lines))
	}
	color := ""
	if len(lines) == 9 {
		color = lines[8]
	}
	return lines[:8], color, nil
}
