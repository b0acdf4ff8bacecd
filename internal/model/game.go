package model

type GameState string

const (
	InProgress GameState = "UNFINISHED"
	WhiteWon   GameState = "WHITE_WON"
	BlackWon   GameState = "BLACK_WON"
)

// Finished reports whether s is one of the terminal states.
func (s GameState) Finished() bool {
	return s != InProgress
}

// Game drives one capture-all game: it owns the board, the side to move and
// the game state. A Game is not safe for concurrent use; Match serializes
// access for networked play.
type Game struct {
	board *Board
	turn  Color
	state GameState
}

func NewGame() *Game {
	return NewGameFromBoard(NewStandardBoard(), White)
}

// NewGameFromBoard starts a game from an arbitrary setup. The board is copied.
func NewGameFromBoard(b *Board, toMove Color) *Game {
	if toMove != Black {
		toMove = White
	}
	return &Game{
		board: b.Copy(),
		turn:  toMove,
		state: InProgress,
	}
}

// NewGameFromFEN starts a game from a FEN string (see ParseFEN).
func NewGameFromFEN(fen string) (*Game, error) {
	b, toMove, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewGameFromBoard(b, toMove), nil
}

func (g *Game) Turn() Color {
	return g.turn
}

func (g *Game) State() GameState {
	return g.state
}

// Board returns a copy of the current board.
func (g *Game) Board() *Board {
	return g.board.Copy()
}

// Occupant looks up the piece on a labelled square.
func (g *Game) Occupant(label string) (Piece, bool) {
	sq, err := ParseSquare(label)
	if err != nil {
		return Piece{}, false
	}
	return g.board.Occupant(sq)
}

// AttemptMove plays from-to for the side to move and reports whether the move
// was applied. Every rejection looks the same to the caller; use Move to learn
// the reason.
func (g *Game) AttemptMove(from, to string) bool {
	return g.Move(from, to) == nil
}

// Move plays from-to for the side to move. A rejected move leaves the game
// untouched and returns a *MoveError.
func (g *Game) Move(from, to string) error {
	reject := func(err error) error {
		return &MoveError{From: from, To: to, Err: err}
	}

	if g.state.Finished() {
		return reject(ErrGameOver)
	}
	fromSq, err := ParseSquare(from)
	if err != nil {
		return reject(err)
	}
	toSq, err := ParseSquare(to)
	if err != nil {
		return reject(err)
	}

	piece, ok := g.board.Occupant(fromSq)
	if !ok {
		return reject(ErrEmptySquare)
	}
	if piece.Color != g.turn {
		return reject(ErrNotYourTurn)
	}
	if !piece.IsLegal(fromSq, toSq, g.board) {
		return reject(ErrIllegalMove)
	}

	if target, ok := g.board.Occupant(toSq); ok && target.Color != piece.Color {
		if err := g.board.Remove(toSq); err != nil {
			return reject(err)
		}
	}
	if err := g.board.Relocate(fromSq, toSq); err != nil {
		return reject(err)
	}

	if g.checkWinCondition() {
		return nil
	}
	g.turn = g.turn.Opponent()
	return nil
}

// checkWinCondition ends the game when either color has run out of some kind
// of piece. White is scanned first.
func (g *Game) checkWinCondition() bool {
	tally := g.board.Tally()
	for _, c := range Colors {
		for _, k := range PieceKinds {
			if tally[c][k] == 0 {
				g.state = winnerState(c.Opponent())
				return true
			}
		}
	}
	return false
}

func winnerState(winner Color) GameState {
	if winner == White {
		return WhiteWon
	}
	return BlackWon
}

// Winner returns the winning color once the game has finished.
func (g *Game) Winner() (Color, bool) {
	switch g.state {
	case WhiteWon:
		return White, true
	case BlackWon:
		return Black, true
	}
	return "", false
}

// LegalDestinations lists every square the piece on from may move to right
// now. It is empty when the game is over, the square is empty or the piece
// does not belong to the side to move.
func (g *Game) LegalDestinations(from string) []Square {
	dests := []Square{}
	if g.state.Finished() {
		return dests
	}
	fromSq, err := ParseSquare(from)
	if err != nil {
		return dests
	}
	piece, ok := g.board.Occupant(fromSq)
	if !ok || piece.Color != g.turn {
		return dests
	}
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			to := Square{File: f, Rank: r}
			if piece.IsLegal(fromSq, to, g.board) {
				dests = append(dests, to)
			}
		}
	}
	return dests
}
