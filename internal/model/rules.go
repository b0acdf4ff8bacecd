package model

// IsLegal reports whether p may move from one square to another on b.
// It never modifies the board.
func (p Piece) IsLegal(from, to Square, b *Board) bool {
	if !from.InBounds() || !to.InBounds() || from == to {
		return false
	}
	switch p.Kind {
	case Pawn:
		return p.pawnMove(from, to, b)
	case Knight:
		return p.knightMove(from, to, b)
	case Bishop:
		return p.bishopMove(from, to, b)
	case Rook:
		return p.rookMove(from, to, b)
	case Queen:
		return p.queenMove(from, to, b)
	case King:
		return p.kingMove(from, to, b)
	}
	return false
}

func (p Piece) pawnMove(from, to Square, b *Board) bool {
	direction, homeRank := 1, 1
	if p.Color == Black {
		direction, homeRank = -1, 6
	}
	df, dr := to.File-from.File, to.Rank-from.Rank

	// diagonal capture
	if abs(df) == 1 && dr == direction {
		target, ok := b.Occupant(to)
		return ok && target.Color != p.Color
	}
	if df != 0 {
		return false
	}
	if dr == direction {
		return b.isEmpty(to)
	}
	if dr == 2*direction && from.Rank == homeRank {
		return b.isEmpty(from.offset(0, direction)) && b.isEmpty(to)
	}
	return false
}

func (p Piece) knightMove(from, to Square, b *Board) bool {
	df, dr := abs(to.File-from.File), abs(to.Rank-from.Rank)
	if !(df == 1 && dr == 2) && !(df == 2 && dr == 1) {
		return false
	}
	return p.canLandOn(to, b)
}

func (p Piece) bishopMove(from, to Square, b *Board) bool {
	df, dr := abs(to.File-from.File), abs(to.Rank-from.Rank)
	if df != dr || df == 0 {
		return false
	}
	return pathClear(from, to, b) && p.canLandOn(to, b)
}

func (p Piece) rookMove(from, to Square, b *Board) bool {
	df, dr := to.File-from.File, to.Rank-from.Rank
	if (df == 0) == (dr == 0) {
		return false
	}
	return pathClear(from, to, b) && p.canLandOn(to, b)
}

// queenMove has no algorithm of its own: a queen moves like a rook or a bishop
// of the same color.
func (p Piece) queenMove(from, to Square, b *Board) bool {
	asRook := Piece{Color: p.Color, Kind: Rook}
	asBishop := Piece{Color: p.Color, Kind: Bishop}
	return asRook.IsLegal(from, to, b) || asBishop.IsLegal(from, to, b)
}

func (p Piece) kingMove(from, to Square, b *Board) bool {
	if max(abs(to.File-from.File), abs(to.Rank-from.Rank)) != 1 {
		return false
	}
	return p.canLandOn(to, b)
}

// canLandOn is false only when a piece of the same color holds sq.
func (p Piece) canLandOn(sq Square, b *Board) bool {
	target, ok := b.Occupant(sq)
	return !ok || target.Color != p.Color
}

// pathClear checks every square strictly between from and to along a straight
// or diagonal line.
func pathClear(from, to Square, b *Board) bool {
	stepF, stepR := sign(to.File-from.File), sign(to.Rank-from.Rank)
	for sq := from.offset(stepF, stepR); sq != to; sq = sq.offset(stepF, stepR) {
		if !sq.InBounds() {
			return false
		}
		if !b.isEmpty(sq) {
			return false
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
