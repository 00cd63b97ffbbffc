package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/benbeisheim/mastermind-backend/internal/model"
	"github.com/benbeisheim/mastermind-backend/internal/room"
)

// RoomService is the facade the controllers talk to.
type RoomService struct {
	manager *RoomManager
}

func NewRoomService(manager *RoomManager) *RoomService {
	return &RoomService{manager: manager}
}

// CreateRoom allocates a fresh room id and its coordinator.
func (rs *RoomService) CreateRoom() string {
	roomID := uuid.New().String()
	rs.manager.GetOrCreate(roomID)
	return roomID
}

// Room resolves the coordinator responsible for a room id.
func (rs *RoomService) Room(roomID string) *room.Room {
	return rs.manager.GetOrCreate(roomID)
}

// GetRoomState returns a client-safe copy of a room's state.
func (rs *RoomService) GetRoomState(ctx context.Context, roomID string) model.GameState {
	return rs.manager.GetOrCreate(roomID).State(ctx)
}
