package controller

import (
	"context"

	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog/log"

	"github.com/benbeisheim/mastermind-backend/internal/service"
	"github.com/benbeisheim/mastermind-backend/internal/ws"
)

type WebSocketController struct {
	roomService *service.RoomService
}

func NewWebSocketController(roomService *service.RoomService) *WebSocketController {
	return &WebSocketController{roomService: roomService}
}

// HandleConnection runs the read loop for one upgraded connection. The
// connection is attached to its room's coordinator for the duration and
// detached on any read error, which covers both clean and abrupt closes.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	roomID := c.Params("roomId")
	r := wsc.roomService.Room(roomID)
	client := ws.NewClient(c)

	ctx := context.Background()
	r.Attach(ctx, client)
	defer r.Detach(ctx, client)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debug().Err(err).Str("room", roomID).Msg("connection closed")
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		r.HandleMessage(ctx, client, message)
	}
}
