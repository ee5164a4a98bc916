package controller

import (
	"bytes"
	"errors"

	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/benbeisheim/chess-backend/internal/render"
	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type createGameRequest struct {
	Local bool `json:"local"`
}

type selectRequest struct {
	Square model.Position `json:"square"`
}

// errorStatus maps a service error to an HTTP status.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrNotInGame):
		return fiber.StatusForbidden
	case errors.Is(err, model.ErrGameFull), errors.Is(err, model.ErrGameExists), errors.Is(err, model.ErrNotYourTurn):
		return fiber.StatusConflict
	case errors.Is(err, model.ErrIllegalMove), errors.Is(err, model.ErrNoPiece), errors.Is(err, model.ErrOutOfBounds):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func sendError(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func playerID(c *fiber.Ctx) string {
	id, _ := c.Locals("playerID").(string)
	return id
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req createGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	gameID, color, err := gc.gameService.CreateGame(playerID(c), req.Local)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
		"color":   color,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	color, err := gc.gameService.JoinGame(gameID, playerID(c))
	if err != nil {
		return sendError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var move model.WSMove
	if err := c.BodyParser(&move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move body",
		})
	}

	gameID := c.Params("gameId")
	if err := gc.gameService.HandleMove(gameID, playerID(c), move); err != nil {
		return sendError(c, err)
	}
	return gc.GetGameState(c)
}

func (gc *GameController) Select(c *fiber.Ctx) error {
	var req selectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid select body",
		})
	}

	gameID := c.Params("gameId")
	result, err := gc.gameService.HandleSelect(gameID, playerID(c), req.Square)
	if err != nil {
		return sendError(c, err)
	}
	state, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{
		"result": result,
		"state":  state,
	})
}

func (gc *GameController) ResetGame(c *fiber.Ctx) error {
	if err := gc.gameService.ResetGame(c.Params("gameId"), playerID(c)); err != nil {
		return sendError(c, err)
	}
	return gc.GetGameState(c)
}

func (gc *GameController) BoardSVG(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return sendError(c, err)
	}

	var buf bytes.Buffer
	if err := render.WriteSVG(&buf, gameState, c.QueryInt("size", render.DefaultSquareSize)); err != nil {
		return sendError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.Send(buf.Bytes())
}
