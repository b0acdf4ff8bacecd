package service

import (
	"fmt"

	"github.com/benbeisheim/capturechess-backend/internal/model"
	"github.com/benbeisheim/capturechess-backend/internal/ws"
	petname "github.com/dustinkirkland/golang-petname"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

// displayName falls back to a generated name such as "brave-otter".
func displayName(name string) string {
	if name != "" {
		return name
	}
	return petname.Generate(2, "-")
}

// CreateGame starts a new game, from the standard layout when fen is empty.
func (gs *GameService) CreateGame(fen string) (string, error) {
	game := model.NewGame()
	if fen != "" {
		var err error
		if game, err = model.NewGameFromFEN(fen); err != nil {
			return "", err
		}
	}

	gameID := gs.gameManager.newID()
	if err := gs.gameManager.CreateGame(gameID, game); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

func (gs *GameService) JoinGame(gameID, playerID, name string) (model.Player, error) {
	match, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.Player{}, err
	}

	name = displayName(name)
	color, err := match.AddPlayer(playerID, name)
	if err != nil {
		return model.Player{}, err
	}
	return model.Player{ID: playerID, Name: name, Color: color}, nil
}

func (gs *GameService) JoinMatchmaking(playerID, name string) error {
	return gs.gameManager.JoinMatchmaking(model.Player{ID: playerID, Name: displayName(name)})
}

func (gs *GameService) GetGameState(gameID string) (model.MatchState, error) {
	match, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.MatchState{}, err
	}
	return match.GetState(), nil
}

// HandleMove plays a move for playerID. A rejected move comes back as a
// *model.MoveError together with the unchanged state.
func (gs *GameService) HandleMove(gameID, playerID string, move model.MoveRequest) (model.MatchState, error) {
	match, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.MatchState{}, err
	}
	return match.MakeMove(playerID, move)
}

func (gs *GameService) LegalMoves(gameID, from string) (model.LegalMoves, error) {
	match, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.LegalMoves{}, err
	}
	return match.LegalMoves(from), nil
}

func (gs *GameService) RegisterConnection(gameID, playerID string, conn model.Conn) error {
	match, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return match.RegisterConnection(playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID, playerID string, conn model.Conn) {
	match, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	match.UnregisterConnection(playerID, conn)
}

// SendTo writes a message to one player's connection on a game.
func (gs *GameService) SendTo(gameID, playerID string, msg ws.Message) error {
	match, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return match.SendTo(playerID, msg)
}

func (gs *GameService) RegisterMatchmakingChannel(playerID string, ch chan ws.Message) {
	gs.gameManager.RegisterMatchmakingChannel(playerID, ch)
}

func (gs *GameService) UnregisterMatchmakingChannel(playerID string, ch chan ws.Message) {
	gs.gameManager.UnregisterMatchmakingChannel(playerID, ch)
}
