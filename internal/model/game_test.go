package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewGame(t *testing.T) {
	g := NewGame()
	if g.Turn() != White {
		t.Errorf("Turn() = %s; want white", g.Turn())
	}
	if g.State() != InProgress {
		t.Errorf("State() = %s; want %s", g.State(), InProgress)
	}
	if _, over := g.Winner(); over {
		t.Error("Winner() reports a finished game")
	}
}

func TestPawnDoubleStepOpening(t *testing.T) {
	g := NewGame()
	if !g.AttemptMove("a2", "a4") {
		t.Fatal("a2-a4 rejected")
	}
	if p, ok := g.Occupant("a4"); !ok || p != wp(Pawn) {
		t.Errorf("a4 = %v, %v; want white pawn", p, ok)
	}
	if _, ok := g.Occupant("a2"); ok {
		t.Error("a2 still occupied")
	}
	if g.Turn() != Black {
		t.Errorf("Turn() = %s; want black", g.Turn())
	}
	if g.State() != InProgress {
		t.Errorf("State() = %s; want %s", g.State(), InProgress)
	}
}

func TestRejectedMovesLeaveGameUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr error
	}{
		{"pawn three squares", "a2", "a5", ErrIllegalMove},
		{"rook through own pawn", "a1", "a8", ErrIllegalMove},
		{"empty square", "e4", "e5", ErrEmptySquare},
		{"opponent piece", "e7", "e5", ErrNotYourTurn},
		{"malformed from", "z9", "e4", ErrMalformedSquare},
		{"malformed to", "e2", "e9", ErrMalformedSquare},
		{"uppercase label", "E2", "E4", ErrMalformedSquare},
		{"capture own piece", "b1", "d2", ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame()
			before := g.Board().Grid()

			err := g.Move(tt.from, tt.to)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Move(%s, %s) error = %v; want %v", tt.from, tt.to, err, tt.wantErr)
			}
			var moveErr *MoveError
			if !errors.As(err, &moveErr) || moveErr.From != tt.from || moveErr.To != tt.to {
				t.Errorf("Move error = %#v; want *MoveError for %s-%s", err, tt.from, tt.to)
			}
			if g.AttemptMove(tt.from, tt.to) {
				t.Errorf("AttemptMove(%s, %s) = true; want false", tt.from, tt.to)
			}

			if diff := cmp.Diff(before, g.Board().Grid()); diff != "" {
				t.Errorf("board changed (-before +after):\n%s", diff)
			}
			if g.Turn() != White {
				t.Errorf("Turn() = %s; want white", g.Turn())
			}
			if g.State() != InProgress {
				t.Errorf("State() = %s; want %s", g.State(), InProgress)
			}
		})
	}
}

func TestTurnsAlternate(t *testing.T) {
	g := NewGame()
	moves := []struct {
		from, to string
		turn     Color
	}{
		{"e2", "e4", Black},
		{"d7", "d5", White},
		{"e4", "d5", Black}, // capture
		{"d8", "d5", White}, // recapture
		{"b1", "c3", Black},
	}
	for _, m := range moves {
		if err := g.Move(m.from, m.to); err != nil {
			t.Fatalf("Move(%s, %s): %v", m.from, m.to, err)
		}
		if g.Turn() != m.turn {
			t.Fatalf("after %s-%s Turn() = %s; want %s", m.from, m.to, g.Turn(), m.turn)
		}
	}

	if err := g.Move("c3", "d5"); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("white moving on black's turn: error = %v; want ErrNotYourTurn", err)
	}

	want := map[PieceKind]int{Pawn: 7, Knight: 2, Bishop: 2, Rook: 2, Queen: 1, King: 1}
	if diff := cmp.Diff(want, g.Board().Tally()[White]); diff != "" {
		t.Errorf("white tally mismatch (-want +got):\n%s", diff)
	}
	if got := g.Board().Tally()[Black][Pawn]; got != 7 {
		t.Errorf("black pawns = %d; want 7", got)
	}
}

func TestCaptureReplacesPiece(t *testing.T) {
	g := NewGameFromBoard(boardWith(t, map[string]Piece{
		"e1": wp(King), "d1": wp(Queen), "a1": wp(Rook), "c1": wp(Bishop), "b1": wp(Knight), "h2": wp(Pawn),
		"e8": bp(King), "d8": bp(Queen), "h8": bp(Rook), "c8": bp(Bishop), "b8": bp(Knight), "h7": bp(Pawn), "a7": bp(Pawn),
	}), White)

	if err := g.Move("a1", "a7"); err != nil {
		t.Fatalf("Move(a1, a7): %v", err)
	}
	if p, _ := g.Occupant("a7"); p != wp(Rook) {
		t.Errorf("a7 = %v; want white rook", p)
	}
	if got := g.Board().Tally()[Black][Pawn]; got != 1 {
		t.Errorf("black pawns = %d; want 1", got)
	}
	if g.State() != InProgress {
		t.Errorf("State() = %s; want %s", g.State(), InProgress)
	}
}

// Every kind can be the one that runs out. A white rook on a1 takes the last
// black piece of the kind on a5.
func TestCaptureLastOfKindWins(t *testing.T) {
	defaults := map[PieceKind]string{King: "e8", Queen: "d8", Rook: "h8", Bishop: "c8", Knight: "b8", Pawn: "h7"}

	for _, kind := range PieceKinds {
		t.Run(string(kind), func(t *testing.T) {
			pieces := fullSet()
			delete(pieces, defaults[kind])
			pieces["a5"] = bp(kind)
			g := NewGameFromBoard(boardWith(t, pieces), White)

			if !g.AttemptMove("a1", "a5") {
				t.Fatal("a1-a5 rejected")
			}
			if g.State() != WhiteWon {
				t.Errorf("State() = %s; want %s", g.State(), WhiteWon)
			}
			if winner, over := g.Winner(); !over || winner != White {
				t.Errorf("Winner() = %s, %v; want white, true", winner, over)
			}
			if g.Turn() != White {
				t.Errorf("Turn() = %s; want white (no switch on the winning move)", g.Turn())
			}
		})
	}
}

func TestBlackWinsByCapturingLastQueen(t *testing.T) {
	pieces := fullSet()
	delete(pieces, "d1")
	pieces["h4"] = wp(Queen)
	g := NewGameFromBoard(boardWith(t, pieces), Black)

	if err := g.Move("h8", "h4"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("h8-h4 through h7: error = %v; want ErrIllegalMove", err)
	}
	if err := g.Move("e8", "e7"); err != nil {
		t.Fatal(err)
	}
	if err := g.Move("e1", "e2"); err != nil {
		t.Fatal(err)
	}
	if err := g.Move("h7", "h6"); err != nil {
		t.Fatal(err)
	}
	if err := g.Move("e2", "e1"); err != nil {
		t.Fatal(err)
	}
	if err := g.Move("h6", "h5"); err != nil {
		t.Fatal(err)
	}
	if err := g.Move("e1", "e2"); err != nil {
		t.Fatal(err)
	}
	if err := g.Move("h5", "h4"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("pawn forward into queen: error = %v; want ErrIllegalMove", err)
	}
	if err := g.Move("e7", "e6"); err != nil {
		t.Fatal(err)
	}
	if err := g.Move("e2", "e1"); err != nil {
		t.Fatal(err)
	}
	if err := g.Move("d8", "d4"); err != nil {
		t.Fatal(err)
	}
	if err := g.Move("e1", "e2"); err != nil {
		t.Fatal(err)
	}
	if err := g.Move("d4", "h4"); err != nil {
		t.Fatalf("d4xh4: %v", err)
	}
	if g.State() != BlackWon {
		t.Errorf("State() = %s; want %s", g.State(), BlackWon)
	}
	if g.Turn() != Black {
		t.Errorf("Turn() = %s; want black", g.Turn())
	}
}

func TestFinishedGameRejectsMoves(t *testing.T) {
	pieces := fullSet()
	delete(pieces, "b8")
	pieces["a5"] = bp(Knight)
	g := NewGameFromBoard(boardWith(t, pieces), White)
	if !g.AttemptMove("a1", "a5") {
		t.Fatal("a1xa5 rejected")
	}

	before := g.Board().Grid()
	for _, m := range [][2]string{{"e8", "e7"}, {"e1", "e2"}, {"zz", "e2"}} {
		if err := g.Move(m[0], m[1]); !errors.Is(err, ErrGameOver) {
			t.Errorf("Move(%s, %s) error = %v; want ErrGameOver", m[0], m[1], err)
		}
		if g.AttemptMove(m[0], m[1]) {
			t.Errorf("AttemptMove(%s, %s) = true after game end", m[0], m[1])
		}
	}
	if diff := cmp.Diff(before, g.Board().Grid()); diff != "" {
		t.Errorf("board changed (-before +after):\n%s", diff)
	}
	if g.State() != WhiteWon || g.Turn() != White {
		t.Errorf("State, Turn = %s, %s; want %s, white", g.State(), g.Turn(), WhiteWon)
	}
	if got := g.LegalDestinations("e1"); len(got) != 0 {
		t.Errorf("LegalDestinations after game end = %v; want none", got)
	}
}

// The win check runs on every move, so a setup already missing a kind ends on
// the first move. White is scanned before black.
func TestWinCheckOnFirstMove(t *testing.T) {
	b := NewStandardBoard()
	if err := b.Remove(MustParseSquare("d1")); err != nil {
		t.Fatal(err)
	}
	if err := b.Remove(MustParseSquare("d8")); err != nil {
		t.Fatal(err)
	}
	g := NewGameFromBoard(b, White)
	if !g.AttemptMove("e2", "e4") {
		t.Fatal("e2-e4 rejected")
	}
	if g.State() != BlackWon {
		t.Errorf("State() = %s; want %s", g.State(), BlackWon)
	}
}

func TestGameBoardIsACopy(t *testing.T) {
	g := NewGame()
	b := g.Board()
	if err := b.Remove(MustParseSquare("e1")); err != nil {
		t.Fatal(err)
	}
	if _, ok := g.Occupant("e1"); !ok {
		t.Error("mutating Board() result changed the game")
	}
}

func TestLegalDestinations(t *testing.T) {
	g := NewGame()

	labels := func(sqs []Square) []string {
		out := []string{}
		for _, sq := range sqs {
			out = append(out, sq.String())
		}
		return out
	}

	tests := []struct {
		from string
		want []string
	}{
		{"e2", []string{"e3", "e4"}},
		{"g1", []string{"f3", "h3"}},
		{"a1", []string{}},
		{"e4", []string{}},
		{"e7", []string{}},
		{"bad", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, labels(g.LegalDestinations(tt.from))); diff != "" {
				t.Errorf("LegalDestinations(%s) mismatch (-want +got):\n%s", tt.from, diff)
			}
		})
	}
}
