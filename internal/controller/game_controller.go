package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/benbeisheim/chess-rules-engine/internal/model"
	"github.com/benbeisheim/chess-rules-engine/internal/service"
	"github.com/benbeisheim/chess-rules-engine/internal/ws"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type playersRequest struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

// statusFor maps service and engine errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrIllegalMove):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, model.ErrNothingToUndo):
		return fiber.StatusConflict
	case errors.Is(err, model.ErrOutOfRange):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		logger().Error("request failed", "path", c.Path(), "error", err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
	})
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req playersRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
	}

	gameID, err := gc.gameService.CreateGame(req.Player1, req.Player2)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(gameState)
}

// LegalMoves answers GET /:gameId/moves/:square with square in "e2" form.
func (gc *GameController) LegalMoves(c *fiber.Ctx) error {
	pos, err := model.ParseSquare(c.Params("square"))
	if err != nil {
		return respondError(c, err)
	}
	moves, err := gc.gameService.LegalMoves(c.Params("gameId"), pos)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(moves)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var req ws.MovePayload
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid move: "+err.Error())
	}
	record, err := gc.gameService.MakeMove(c.Params("gameId"), req.From, req.To)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(record)
}

func (gc *GameController) Undo(c *fiber.Ctx) error {
	if err := gc.gameService.Undo(c.Params("gameId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": service.StatusUndone,
	})
}

func (gc *GameController) ExecuteCommand(c *fiber.Ctx) error {
	var req ws.CommandPayload
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	res, err := gc.gameService.ExecuteCommand(c.Params("gameId"), req.Input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

func (gc *GameController) RenamePlayers(c *fiber.Ctx) error {
	var req playersRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := gc.gameService.RenamePlayers(c.Params("gameId"), req.Player1, req.Player2); err != nil {
		return respondError(c, err)
	}
	state, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(state.Players)
}

func (gc *GameController) MoveLog(c *fiber.Ctx) error {
	moves, err := gc.gameService.MoveLog(c.Params("gameId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(moves)
}

func (gc *GameController) Captured(c *fiber.Ctx) error {
	pieces, err := gc.gameService.Captured(c.Params("gameId"))
	if err != nil {
		return respondError(c, err)
	}
	if pieces == nil {
		pieces = []model.PieceState{}
	}
	return c.JSON(pieces)
}
