package model

import "fmt"

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

var Colors = []Color{White, Black}

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

type PieceKind string

const (
	Pawn   PieceKind = "pawn"
	Knight PieceKind = "knight"
	Bishop PieceKind = "bishop"
	Rook   PieceKind = "rook"
	Queen  PieceKind = "queen"
	King   PieceKind = "king"
)

// PieceKinds lists every kind in the order the win check scans them.
var PieceKinds = []PieceKind{Pawn, Knight, Bishop, Rook, Queen, King}

func (k PieceKind) letter() byte {
	switch k {
	case Pawn:
		return 'p'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	case King:
		return 'k'
	}
	return '?'
}

// Piece is a colored piece. Pieces never change kind or color.
type Piece struct {
	Color Color     `json:"color"`
	Kind  PieceKind `json:"type"`
}

// Letter returns the FEN letter of the piece, uppercase for white.
func (p Piece) Letter() byte {
	l := p.Kind.letter()
	if p.Color == White && l != '?' {
		return l - 'a' + 'A'
	}
	return l
}

func (p Piece) valid() bool {
	return (p.Color == White || p.Color == Black) && p.Kind.letter() != '?'
}

func (p Piece) String() string {
	return string(p.Color) + " " + string(p.Kind)
}

// Board is an 8x8 grid indexed [rank][file]. A nil cell is empty.
type Board struct {
	squares [BoardSize][BoardSize]*Piece
}

func NewEmptyBoard() *Board {
	return &Board{}
}

// NewStandardBoard returns a board with the usual chess starting layout.
func NewStandardBoard() *Board {
	b := &Board{}
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.put(Square{File: file, Rank: 0}, Piece{Color: White, Kind: backRank[file]})
		b.put(Square{File: file, Rank: 1}, Piece{Color: White, Kind: Pawn})
		b.put(Square{File: file, Rank: 6}, Piece{Color: Black, Kind: Pawn})
		b.put(Square{File: file, Rank: 7}, Piece{Color: Black, Kind: backRank[file]})
	}
	return b
}

// Occupant reports the piece on sq. Squares off the board are always empty.
func (b *Board) Occupant(sq Square) (Piece, bool) {
	if !sq.InBounds() {
		return Piece{}, false
	}
	p := b.squares[sq.Rank][sq.File]
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

func (b *Board) isEmpty(sq Square) bool {
	_, ok := b.Occupant(sq)
	return !ok
}

// Place puts p on sq, replacing any occupant. It is meant for building
// setups before a game starts.
func (b *Board) Place(sq Square, p Piece) error {
	if !sq.InBounds() {
		return ErrOutOfBounds
	}
	if !p.valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPiece, p.String())
	}
	b.put(sq, p)
	return nil
}

func (b *Board) put(sq Square, p Piece) {
	b.squares[sq.Rank][sq.File] = &p
}

// Relocate moves whatever occupies from onto to, overwriting to and clearing from.
// Capture rules are the caller's concern.
func (b *Board) Relocate(from, to Square) error {
	if !from.InBounds() || !to.InBounds() {
		return ErrOutOfBounds
	}
	b.squares[to.Rank][to.File] = b.squares[from.Rank][from.File]
	b.squares[from.Rank][from.File] = nil
	return nil
}

func (b *Board) Remove(sq Square) error {
	if !sq.InBounds() {
		return ErrOutOfBounds
	}
	b.squares[sq.Rank][sq.File] = nil
	return nil
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	c := &Board{}
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			if p := b.squares[r][f]; p != nil {
				cp := *p
				c.squares[r][f] = &cp
			}
		}
	}
	return c
}

// Grid returns a snapshot of the board indexed [rank][file], rank 0 first.
func (b *Board) Grid() [BoardSize][BoardSize]*Piece {
	return b.Copy().squares
}

// Tally counts pieces per color and kind.
type Tally map[Color]map[PieceKind]int

func (b *Board) Tally() Tally {
	t := Tally{}
	for _, c := range Colors {
		t[c] = make(map[PieceKind]int, len(PieceKinds))
		for _, k := range PieceKinds {
			t[c][k] = 0
		}
	}
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			if p := b.squares[r][f]; p != nil {
				t[p.Color][p.Kind]++
			}
		}
	}
	return t
}
