package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/benbeisheim/mastermind-backend/internal/service"
)

type RoomController struct {
	roomService *service.RoomService
}

func NewRoomController(roomService *service.RoomService) *RoomController {
	return &RoomController{roomService: roomService}
}

// CreateRoom allocates a new room and returns its id for sharing.
func (rc *RoomController) CreateRoom(c *fiber.Ctx) error {
	roomID := rc.roomService.CreateRoom()
	return c.JSON(fiber.Map{
		"message": "Room created",
		"room_id": roomID,
	})
}

// GetRoomState returns the current (sanitized) state of a room.
func (rc *RoomController) GetRoomState(c *fiber.Ctx) error {
	roomID := c.Params("roomId")
	state := rc.roomService.GetRoomState(c.UserContext(), roomID)
	return c.JSON(state)
}
