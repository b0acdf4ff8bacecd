package model

import "testing"

// MustParseSquare is like ParseSquare but panics on a malformed label.
func MustParseSquare(label string) Square {
	sq, err := ParseSquare(label)
	if err != nil {
		panic(err)
	}
	return sq
}

func wp(k PieceKind) Piece { return Piece{Color: White, Kind: k} }
func bp(k PieceKind) Piece { return Piece{Color: Black, Kind: k} }

// boardWith builds a board holding exactly the given pieces.
func boardWith(t *testing.T, pieces map[string]Piece) *Board {
	t.Helper()
	b := NewEmptyBoard()
	for label, p := range pieces {
		sq, err := ParseSquare(label)
		if err != nil {
			t.Fatalf("bad square %q: %v", label, err)
		}
		if err := b.Place(sq, p); err != nil {
			t.Fatalf("Place(%s, %v): %v", label, p, err)
		}
	}
	return b
}

// fullSet has one piece of every kind for both colors, so no tally is zero.
func fullSet() map[string]Piece {
	return map[string]Piece{
		"e1": wp(King), "d1": wp(Queen), "a1": wp(Rook), "c1": wp(Bishop), "b1": wp(Knight), "h2": wp(Pawn),
		"e8": bp(King), "d8": bp(Queen), "h8": bp(Rook), "c8": bp(Bishop), "b8": bp(Knight), "h7": bp(Pawn),
	}
}
