// service/game_manager.go
package service

import (
	"sync"

	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type GameManager struct {
	games map[string]*model.Game
	mu    sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*model.Game),
	}
}

func (gm *GameManager) CreateGame(gameID string, local bool) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return model.ErrGameExists
	}

	if local {
		gm.games[gameID] = model.NewLocalGame(gameID)
	} else {
		gm.games[gameID] = model.NewGame(gameID)
	}
	log.Infof("created game %s (local=%t)", gameID, local)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, model.ErrGameNotFound
	}

	return game, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.Color, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.AddPlayer(playerID)
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.GetState(), nil
}

func (gm *GameManager) MakeMove(gameID string, playerID string, move model.WSMove) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.MakeMove(playerID, move)
}

func (gm *GameManager) Select(gameID string, playerID string, pos model.Position) (model.SelectResult, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.SelectIgnored, err
	}
	return game.Select(playerID, pos)
}

func (gm *GameManager) ResetGame(gameID string, playerID string) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	if !game.IsPlayerInGame(playerID) {
		return model.ErrNotInGame
	}
	game.Reset()
	return nil
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) SendError(gameID string, playerID string, err error) {
	game, gerr := gm.GetGame(gameID)
	if gerr != nil {
		return
	}
	game.SendError(playerID, err)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string, conn *websocket.Conn) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID, conn)
}
