// service/game_manager.go
package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/benbeisheim/capturechess-backend/internal/model"
	"github.com/benbeisheim/capturechess-backend/internal/ws"
	"github.com/google/uuid"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
)

type GameManager struct {
	games            map[string]*model.Match
	queue            *model.Queue
	matchingChannels map[string]chan ws.Message
	mu               sync.RWMutex
	newID            func() string
}

func NewGameManager() *GameManager {
	return &GameManager{
		games:            make(map[string]*model.Match),
		queue:            model.NewQueue(),
		matchingChannels: make(map[string]chan ws.Message),
		newID:            func() string { return uuid.New().String() },
	}
}

// RunMatchmaking pairs queued players every interval until ctx is done.
func (gm *GameManager) RunMatchmaking(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for gm.matchPlayers() {
			}
		}
	}
}

// matchPlayers pairs the two longest-waiting players into a new match and
// tells both of them. It reports whether a pair was made.
func (gm *GameManager) matchPlayers() bool {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	player1, player2, ok := gm.queue.NextPair()
	if !ok {
		return false
	}

	gameID := gm.newID()
	match := model.NewMatch(gameID)
	p1Color, err := match.AddPlayer(player1.ID, player1.Name)
	if err != nil {
		log.Printf("matchmaking: seat %s: %v", player1.ID, err)
		return false
	}
	p2Color, err := match.AddPlayer(player2.ID, player2.Name)
	if err != nil {
		log.Printf("matchmaking: seat %s: %v", player2.ID, err)
		return false
	}
	gm.games[gameID] = match
	log.Printf("matchmaking: %s vs %s in game %s", player1.ID, player2.ID, gameID)

	gm.notifyMatchFound(player1.ID, model.MatchFoundEvent{GameID: gameID, Color: p1Color})
	gm.notifyMatchFound(player2.ID, model.MatchFoundEvent{GameID: gameID, Color: p2Color})
	return true
}

// notifyMatchFound sends the event on the player's channel and closes it.
// Callers hold gm.mu.
func (gm *GameManager) notifyMatchFound(playerID string, event model.MatchFoundEvent) {
	ch, ok := gm.matchingChannels[playerID]
	if !ok {
		log.Printf("matchmaking: no channel for player %s", playerID)
		return
	}
	delete(gm.matchingChannels, playerID)
	defer close(ch)

	msg, err := ws.NewMessage(ws.MessageTypeMatchFound, event)
	if err != nil {
		log.Printf("matchmaking: encode event: %v", err)
		return
	}
	select {
	case ch <- msg:
	default:
		log.Printf("matchmaking: player %s is not listening", playerID)
	}
}

// RegisterMatchmakingChannel replaces any channel the player registered before.
func (gm *GameManager) RegisterMatchmakingChannel(playerID string, ch chan ws.Message) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if existing, ok := gm.matchingChannels[playerID]; ok {
		delete(gm.matchingChannels, playerID)
		close(existing)
	}
	gm.matchingChannels[playerID] = ch
}

// UnregisterMatchmakingChannel forgets the channel without closing it and
// takes the player out of the queue.
func (gm *GameManager) UnregisterMatchmakingChannel(playerID string, ch chan ws.Message) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if current, ok := gm.matchingChannels[playerID]; ok && current == ch {
		delete(gm.matchingChannels, playerID)
		gm.queue.Remove(playerID)
	}
}

func (gm *GameManager) CreateGame(gameID string, game *model.Game) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return ErrGameExists
	}

	gm.games[gameID] = model.NewMatchFromGame(gameID, game)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Match, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}

	return game, nil
}

func (gm *GameManager) JoinMatchmaking(player model.Player) error {
	return gm.queue.AddPlayer(player)
}

func (gm *GameManager) QueueSize() int {
	return gm.queue.Size()
}
