// Package render draws boards for terminals.
package render

import (
	"bufio"
	"io"

	"github.com/benbeisheim/capturechess-backend/internal/model"
	"github.com/fatih/color"
)

type Options struct {
	// Unicode draws chess glyphs instead of FEN letters.
	Unicode bool
	// Highlight marks squares, e.g. the legal destinations of a piece.
	Highlight []model.Square
}

var (
	lightSquare     = color.New(color.BgWhite, color.FgBlack)
	darkSquare      = color.New(color.BgGreen, color.FgBlack)
	highlightSquare = color.New(color.BgYellow, color.FgBlack)
)

var glyphs = map[model.Piece]string{
	{Color: model.White, Kind: model.King}:   "♔",
	{Color: model.White, Kind: model.Queen}:  "♕",
	{Color: model.White, Kind: model.Rook}:   "♖",
	{Color: model.White, Kind: model.Bishop}: "♗",
	{Color: model.White, Kind: model.Knight}: "♘",
	{Color: model.White, Kind: model.Pawn}:   "♙",
	{Color: model.Black, Kind: model.King}:   "♚",
	{Color: model.Black, Kind: model.Queen}:  "♛",
	{Color: model.Black, Kind: model.Rook}:   "♜",
	{Color: model.Black, Kind: model.Bishop}: "♝",
	{Color: model.Black, Kind: model.Knight}: "♞",
	{Color: model.Black, Kind: model.Pawn}:   "♟",
}

// Board writes b with rank 8 at the top and file labels underneath. Colors
// follow color.NoColor, so output to a pipe is plain text.
func Board(w io.Writer, b *model.Board, opts Options) error {
	highlighted := make(map[model.Square]bool, len(opts.Highlight))
	for _, sq := range opts.Highlight {
		highlighted[sq] = true
	}

	bw := bufio.NewWriter(w)
	for rank := model.BoardSize - 1; rank >= 0; rank-- {
		bw.WriteByte(byte('1' + rank))
		bw.WriteByte(' ')
		for file := 0; file < model.BoardSize; file++ {
			sq := model.Square{File: file, Rank: rank}
			bw.WriteString(squareColor(sq, highlighted[sq]).Sprint(" " + symbol(b, sq, opts.Unicode) + " "))
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("  ")
	for file := 0; file < model.BoardSize; file++ {
		bw.WriteString(" " + string(rune('a'+file)) + " ")
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

func squareColor(sq model.Square, highlighted bool) *color.Color {
	switch {
	case highlighted:
		return highlightSquare
	case (sq.File+sq.Rank)%2 == 0:
		return darkSquare
	}
	return lightSquare
}

func symbol(b *model.Board, sq model.Square, unicode bool) string {
	p, ok := b.Occupant(sq)
	switch {
	case !ok:
		return "."
	case unicode:
		return glyphs[p]
	}
	return string(p.Letter())
}
