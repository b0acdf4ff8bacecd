package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/benbeisheim/capturechess-backend/internal/model"
	"github.com/benbeisheim/capturechess-backend/internal/service"
	"github.com/benbeisheim/capturechess-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection serves one player's connection to a game until it closes.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID, _ := c.Locals("playerID").(string)

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		log.Printf("ws game %s: register %s: %v", gameID, playerID, err)
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, playerID, c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("ws game %s: read from %s: %v", gameID, playerID, err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.sendError(gameID, playerID, fmt.Errorf("parse message: %w", err))
			continue
		}
		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			wsc.sendError(gameID, playerID, err)
		}
	}
}

func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.MoveRequest
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		// an applied move reaches this player through the match broadcast
		_, err := wsc.gameService.HandleMove(gameID, playerID, move)
		return err
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(gameID, playerID string, err error) {
	reason := err.Error()
	var moveErr *model.MoveError
	if errors.As(err, &moveErr) {
		reason = moveErr.Err.Error()
	}

	msg, encErr := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: reason})
	if encErr != nil {
		log.Printf("ws game %s: encode error: %v", gameID, encErr)
		return
	}
	if err := wsc.gameService.SendTo(gameID, playerID, msg); err != nil {
		log.Printf("ws game %s: write error to %s: %v", gameID, playerID, err)
	}
}

// HandleMatchmaking queues the player and waits for the match found event.
func (wsc *WebSocketController) HandleMatchmaking(c *websocket.Conn) {
	playerID, _ := c.Locals("playerID").(string)
	defer c.Close()

	ch := make(chan ws.Message, 1)
	wsc.gameService.RegisterMatchmakingChannel(playerID, ch)
	defer wsc.gameService.UnregisterMatchmakingChannel(playerID, ch)

	if err := wsc.gameService.JoinMatchmaking(playerID, c.Query("name")); err != nil && !errors.Is(err, model.ErrAlreadyQueued) {
		log.Printf("ws matchmaking: queue %s: %v", playerID, err)
		return
	}

	// the client closing the socket ends the wait
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	select {
	case msg, ok := <-ch:
		if !ok {
			return
		}
		if err := c.WriteJSON(msg); err != nil {
			log.Printf("ws matchmaking: write to %s: %v", playerID, err)
		}
	case <-closed:
	}
}
