package service

import (
	"fmt"

	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.Color, error) {
	color, err := gs.gameManager.AddPlayerToGame(gameID, playerID)
	if err != nil {
		return "", fmt.Errorf("failed to join game %s: %w", gameID, err)
	}
	return color, nil
}

// CreateGame opens a new game and seats playerID in it. A local game seats
// the creator on both sides.
func (gs *GameService) CreateGame(playerID string, local bool) (string, model.Color, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID, local); err != nil {
		return "", "", fmt.Errorf("failed to create game: %w", err)
	}
	color, err := gs.JoinGame(gameID, playerID)
	if err != nil {
		return "", "", err
	}
	return gameID, color, nil
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) HandleMove(gameID string, playerID string, move model.WSMove) error {
	if err := gs.gameManager.MakeMove(gameID, playerID, move); err != nil {
		return fmt.Errorf("move %s-%s rejected: %w", move.From, move.To, err)
	}
	return nil
}

func (gs *GameService) HandleSelect(gameID string, playerID string, pos model.Position) (model.SelectResult, error) {
	result, err := gs.gameManager.Select(gameID, playerID, pos)
	if err != nil {
		return result, fmt.Errorf("select %s rejected: %w", pos, err)
	}
	return result, nil
}

func (gs *GameService) ResetGame(gameID string, playerID string) error {
	return gs.gameManager.ResetGame(gameID, playerID)
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) SendError(gameID string, playerID string, err error) {
	gs.gameManager.SendError(gameID, playerID, err)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn *websocket.Conn) {
	gs.gameManager.UnregisterConnection(gameID, playerID, conn)
}
