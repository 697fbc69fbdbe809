package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/benbeisheim/chess-rules-engine/internal/middleware"
	"github.com/benbeisheim/chess-rules-engine/internal/service"
)

// SetupRoutes mounts the REST API under /api/game and the websocket
// endpoint under /ws/game.
func SetupRoutes(app *fiber.App, gameService *service.GameService, wsConfig websocket.Config) {
	gameController := NewGameController(gameService)
	wsController := NewWebSocketController(gameService)

	// WebSocket routes
	wsRoutes := app.Group("/ws", middleware.EnsureClientID())
	wsRoutes.Get("/game/:gameId",
		middleware.RequireGameID(),
		middleware.WebSocketUpgrade(),
		websocket.New(wsController.HandleConnection, wsConfig),
	)

	// REST routes
	api := app.Group("/api", middleware.EnsureClientID())
	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)

	requireGame := middleware.RequireGameID()
	gameRoutes.Get("/:gameId", requireGame, gameController.GetGameState)
	gameRoutes.Get("/:gameId/moves/:square", requireGame, gameController.LegalMoves)
	gameRoutes.Get("/:gameId/log", requireGame, gameController.MoveLog)
	gameRoutes.Get("/:gameId/captured", requireGame, gameController.Captured)
	gameRoutes.Post("/:gameId/move", requireGame, gameController.MakeMove)
	gameRoutes.Post("/:gameId/undo", requireGame, gameController.Undo)
	gameRoutes.Post("/:gameId/command", requireGame, gameController.ExecuteCommand)
	gameRoutes.Put("/:gameId/players", requireGame, gameController.RenamePlayers)
}
