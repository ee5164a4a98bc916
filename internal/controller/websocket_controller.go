package controller

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/benbeisheim/chess-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
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

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID, _ := c.Locals("wsGameID").(string)
	playerID, _ := c.Locals("wsPlayerID").(string)

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		if errors.Is(err, model.ErrDuplicateConnection) {
			log.Infof("game %s: player %s is already connected", gameID, playerID)
		} else {
			log.Warnf("failed to register connection for game %s: %v", gameID, err)
		}
		// the player's existing connection, if any, stays registered
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugf("game %s: read error: %v", gameID, err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Debugf("game %s: parse error: %v", gameID, err)
			continue
		}

		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			log.Debugf("game %s: handle error: %v", gameID, err)
			wsc.gameService.SendError(gameID, playerID, err)
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID, c)
}

func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.WSMove
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		return wsc.gameService.HandleMove(gameID, playerID, move)

	case ws.MessageTypeSelect:
		var req selectRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return err
		}
		_, err := wsc.gameService.HandleSelect(gameID, playerID, req.Square)
		return err

	case ws.MessageTypeReset:
		return wsc.gameService.ResetGame(gameID, playerID)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
