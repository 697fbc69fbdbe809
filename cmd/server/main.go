package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/benbeisheim/chess-rules-engine/internal/config"
	"github.com/benbeisheim/chess-rules-engine/internal/controller"
	"github.com/benbeisheim/chess-rules-engine/internal/service"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	level, _ := cfg.Level()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	app := fiber.New(fiber.Config{
		AppName:               "chess-rules-engine",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Client-ID",
		AllowMethods:     "GET, POST, PUT, OPTIONS",
		AllowCredentials: true,
	}))

	// Initialize services
	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager, service.Options{
		Player1Name:    cfg.Player1Name,
		Player2Name:    cfg.Player2Name,
		HighlightMoves: cfg.HighlightMoves,
	})

	controller.SetupRoutes(app, gameService, websocket.Config{
		ReadBufferSize:  cfg.ReadBufferSize,
		WriteBufferSize: cfg.WriteBufferSize,
		Origins:         strings.Split(cfg.AllowOrigins, ","),
	})

	slog.Info("listening", "addr", cfg.Addr, "origins", cfg.AllowOrigins)
	if err := app.Listen(cfg.Addr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
