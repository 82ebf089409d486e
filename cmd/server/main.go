package main

import (
	"flag"
	"log"

	"chesscore/internal/controller"
	"chesscore/internal/middleware"
	"chesscore/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"
)

func main() {
	addr := flag.String("addr", ":3000", "listen address")
	origin := flag.String("origin", "http://localhost:5173", "allowed CORS origin")
	flag.Parse()

	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     *origin,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager)

	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	// WebSocket routes
	app.Use("/ws/*", middleware.EnsurePlayerID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(func(c *websocket.Conn) {
		wsController.HandleConnection(c)
	}, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         []string{*origin},
	}))
	app.Get("/ws/matchmaking", websocket.New(func(c *websocket.Conn) {
		wsController.HandleMatchmaking(c)
	}, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         []string{*origin},
	}))

	// REST routes
	api := app.Group("/api", middleware.EnsurePlayerID())

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/matchmaking/join", gameController.JoinMatchmaking)
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Post("/join/:gameId", gameController.JoinGame)
	gameRoutes.Post("/:gameId/move", middleware.ValidateMoveBody(), gameController.MakeMove)
	gameRoutes.Get("/:gameId", gameController.GetGameState)

	log.Fatal(app.Listen(*addr))
}
