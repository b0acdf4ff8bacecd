package model

import "fmt"

const BoardSize = 8

// Square addresses one cell of the board. File 0 is the a-file, rank 0 is the first rank.
type Square struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

// ParseSquare converts a label such as "e4" into a Square. Only lowercase
// files a-h and ranks 1-8 are accepted.
func ParseSquare(label string) (Square, error) {
	if len(label) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrMalformedSquare, label)
	}
	f, r := label[0], label[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return Square{}, fmt.Errorf("%w: %q", ErrMalformedSquare, label)
	}
	return Square{File: int(f - 'a'), Rank: int(r - '1')}, nil
}

func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return fmt.Sprintf("%c%d", 'a'+s.File, s.Rank+1)
}

func (s Square) InBounds() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

func (s Square) offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}
