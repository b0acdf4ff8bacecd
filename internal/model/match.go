package model

import (
	"log"
	"sync"

	"github.com/benbeisheim/capturechess-backend/internal/ws"
)

// Conn is the part of a websocket connection a match writes to.
type Conn interface {
	WriteJSON(v interface{}) error
}

// MatchConnections holds the live connections watching one match.
type MatchConnections struct {
	connections map[string]Conn // playerID -> connection
	mu          sync.Mutex
}

func NewMatchConnections() *MatchConnections {
	return &MatchConnections{
		connections: make(map[string]Conn),
	}
}

// Match is one networked game: the engine, the two seats, thinking clocks and
// the connections to push state to. All methods are safe for concurrent use.
type Match struct {
	ID          string
	mu          sync.Mutex
	game        *Game
	white       *Player
	black       *Player
	clocks      map[Color]*Clock
	connections *MatchConnections
}

type MatchState struct {
	ID      string                       `json:"id"`
	Board   [BoardSize][BoardSize]*Piece `json:"board"`
	FEN     string                       `json:"fen"`
	ToMove  Color                        `json:"toMove"`
	State   GameState                    `json:"state"`
	Winner  Color                        `json:"winner,omitempty"`
	Players MatchPlayers                 `json:"players"`
	Pieces  Tally                        `json:"pieces"`
	Clocks  map[Color]int64              `json:"thinkingMs"`
}

type MatchPlayers struct {
	White *ClientPlayer `json:"white"`
	Black *ClientPlayer `json:"black"`
}

func NewMatch(id string) *Match {
	return NewMatchFromGame(id, NewGame())
}

func NewMatchFromGame(id string, game *Game) *Match {
	return &Match{
		ID:          id,
		game:        game,
		clocks:      map[Color]*Clock{White: NewClock(), Black: NewClock()},
		connections: NewMatchConnections(),
	}
}

// AddPlayer seats a player, white first. Joining twice returns the seat
// already held.
func (m *Match) AddPlayer(playerID, name string) (Color, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.colorOf(playerID); ok {
		return c, nil
	}
	if m.white == nil {
		m.white = &Player{ID: playerID, Name: name, Color: White}
		return White, nil
	}
	if m.black == nil {
		m.black = &Player{ID: playerID, Name: name, Color: Black}
		if !m.game.State().Finished() {
			m.clocks[m.game.Turn()].Start()
		}
		return Black, nil
	}
	return "", ErrGameFull
}

func (m *Match) colorOf(playerID string) (Color, bool) {
	if playerID == "" {
		return "", false
	}
	if m.white != nil && m.white.ID == playerID {
		return White, true
	}
	if m.black != nil && m.black.ID == playerID {
		return Black, true
	}
	return "", false
}

// MakeMove plays a move on behalf of a seated player and broadcasts the new
// state to every connection. Broadcasts go out in move order.
func (m *Match) MakeMove(playerID string, move MoveRequest) (MatchState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	color, ok := m.colorOf(playerID)
	if !ok {
		return MatchState{}, ErrNotInGame
	}
	if !m.game.State().Finished() && color != m.game.Turn() {
		return m.state(), &MoveError{From: move.From, To: move.To, Err: ErrNotYourTurn}
	}
	if err := m.game.Move(move.From, move.To); err != nil {
		return m.state(), err
	}

	m.clocks[color].Stop()
	if !m.game.State().Finished() {
		m.clocks[m.game.Turn()].Start()
	}
	state := m.state()
	m.broadcast(state)
	return state, nil
}

// LegalMoves lists the destinations of the piece on from for the side to move.
func (m *Match) LegalMoves(from string) LegalMoves {
	m.mu.Lock()
	defer m.mu.Unlock()

	moves := LegalMoves{From: from, To: []string{}}
	for _, sq := range m.game.LegalDestinations(from) {
		moves.To = append(moves.To, sq.String())
	}
	return moves
}

func (m *Match) GetState() MatchState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state()
}

func (m *Match) state() MatchState {
	board := m.game.Board()
	winner, _ := m.game.Winner()
	return MatchState{
		ID:     m.ID,
		Board:  board.Grid(),
		FEN:    board.FEN(),
		ToMove: m.game.Turn(),
		State:  m.game.State(),
		Winner: winner,
		Players: MatchPlayers{
			White: m.white.client(),
			Black: m.black.client(),
		},
		Pieces: board.Tally(),
		Clocks: map[Color]int64{
			White: m.clocks[White].Used().Milliseconds(),
			Black: m.clocks[Black].Used().Milliseconds(),
		},
	}
}

// RegisterConnection adds a connection and sends it the current state. A
// second connection for the same player replaces the first.
func (m *Match) RegisterConnection(playerID string, conn Conn) error {
	// lock order: m.mu, then connections.mu
	m.mu.Lock()
	defer m.mu.Unlock()

	msg, err := ws.NewMessage(ws.MessageTypeGameState, m.state())
	if err != nil {
		return err
	}

	m.connections.mu.Lock()
	defer m.connections.mu.Unlock()
	m.connections.connections[playerID] = conn
	return conn.WriteJSON(msg)
}

// UnregisterConnection drops conn, unless the player has since reconnected
// with a different one.
func (m *Match) UnregisterConnection(playerID string, conn Conn) {
	m.connections.mu.Lock()
	defer m.connections.mu.Unlock()
	if current, ok := m.connections.connections[playerID]; ok && current == conn {
		delete(m.connections.connections, playerID)
	}
}

func (m *Match) broadcast(state MatchState) {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, state)
	if err != nil {
		log.Printf("match %s: encode state: %v", m.ID, err)
		return
	}

	// one writer per websocket at a time
	m.connections.mu.Lock()
	defer m.connections.mu.Unlock()
	for playerID, conn := range m.connections.connections {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("match %s: write to %s: %v", m.ID, playerID, err)
		}
	}
}

// SendTo writes v to the connection registered for playerID, if any.
func (m *Match) SendTo(playerID string, v interface{}) error {
	m.connections.mu.Lock()
	defer m.connections.mu.Unlock()

	conn, ok := m.connections.connections[playerID]
	if !ok {
		return nil
	}
	return conn.WriteJSON(v)
}
