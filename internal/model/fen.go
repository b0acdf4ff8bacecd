package model

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

var toChessPiece = map[Piece]chess.Piece{
	{Color: White, Kind: Pawn}:   chess.WhitePawn,
	{Color: White, Kind: Knight}: chess.WhiteKnight,
	{Color: White, Kind: Bishop}: chess.WhiteBishop,
	{Color: White, Kind: Rook}:   chess.WhiteRook,
	{Color: White, Kind: Queen}:  chess.WhiteQueen,
	{Color: White, Kind: King}:   chess.WhiteKing,
	{Color: Black, Kind: Pawn}:   chess.BlackPawn,
	{Color: Black, Kind: Knight}: chess.BlackKnight,
	{Color: Black, Kind: Bishop}: chess.BlackBishop,
	{Color: Black, Kind: Rook}:   chess.BlackRook,
	{Color: Black, Kind: Queen}:  chess.BlackQueen,
	{Color: Black, Kind: King}:   chess.BlackKing,
}

var fromChessPiece = func() map[chess.Piece]Piece {
	m := make(map[chess.Piece]Piece, len(toChessPiece))
	for p, cp := range toChessPiece {
		m[cp] = p
	}
	return m
}()

// fenDefaults fill in the fields after the piece placement when a short FEN is given.
var fenDefaults = []string{"w", "-", "-", "0", "1"}

func toChessSquare(sq Square) chess.Square {
	return chess.Square(sq.Rank*BoardSize + sq.File)
}

func fromChessSquare(sq chess.Square) Square {
	return Square{File: int(sq.File()), Rank: int(sq.Rank())}
}

// FEN returns the piece placement field of the board in Forsyth-Edwards notation.
func (b *Board) FEN() string {
	m := make(map[chess.Square]chess.Piece)
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			sq := Square{File: f, Rank: r}
			if p, ok := b.Occupant(sq); ok {
				m[toChessSquare(sq)] = toChessPiece[p]
			}
		}
	}
	return chess.NewBoard(m).String()
}

// ParseFEN reads a board and the side to move from a FEN string. The piece
// placement field alone is accepted, in which case white moves first.
// Castling, en passant and clock fields are ignored.
func ParseFEN(fen string) (*Board, Color, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 || len(fields) > 6 {
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidFEN, fen)
	}
	fields = append(fields, fenDefaults[len(fields)-1:]...)

	var pos chess.Position
	if err := pos.UnmarshalText([]byte(strings.Join(fields, " "))); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}

	b := NewEmptyBoard()
	for sq, cp := range pos.Board().SquareMap() {
		p, ok := fromChessPiece[cp]
		if !ok {
			continue
		}
		b.put(fromChessSquare(sq), p)
	}

	toMove := White
	if pos.Turn() == chess.Black {
		toMove = Black
	}
	return b, toMove, nil
}
