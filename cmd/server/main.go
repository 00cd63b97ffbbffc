package main

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/benbeisheim/mastermind-backend/internal/controller"
	"github.com/benbeisheim/mastermind-backend/internal/middleware"
	"github.com/benbeisheim/mastermind-backend/internal/service"
	"github.com/benbeisheim/mastermind-backend/internal/store"
	"github.com/benbeisheim/mastermind-backend/internal/ws"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	heartbeatInterval, err := time.ParseDuration(getEnv("HEARTBEAT_INTERVAL", "5s"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid HEARTBEAT_INTERVAL")
	}

	st, err := store.NewSQLite(context.Background(), getEnv("DB_PATH", "./data/mastermind.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open snapshot store")
	}

	// Initialize services
	heartbeat := ws.NewHeartbeat(heartbeatInterval)
	roomManager := service.NewRoomManager(st, heartbeat)
	roomService := service.NewRoomService(roomManager)

	// Initialize controllers
	roomController := controller.NewRoomController(roomService)
	wsController := controller.NewWebSocketController(roomService)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// Set up WebSocket route; one coordinator per room id
	app.Get("/ws/room/:roomId", middleware.WebSocketUpgrade(), websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	// Set up REST routes
	api := app.Group("/api")
	roomRoutes := api.Group("/room")
	roomRoutes.Post("/", roomController.CreateRoom)
	roomRoutes.Get("/:roomId/state", roomController.GetRoomState)

	port := getEnv("PORT", "3000")
	log.Info().Str("port", port).Msg("starting mastermind server")
	if err := app.Listen(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
