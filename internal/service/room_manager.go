package service

import (
	"sync"

	"github.com/benbeisheim/mastermind-backend/internal/room"
	"github.com/benbeisheim/mastermind-backend/internal/store"
	"github.com/benbeisheim/mastermind-backend/internal/ws"
)

// RoomManager hands out the coordinator for a room id. Ids map 1:1 to Room
// instances, so every connection for a room lands on the same coordinator.
// Rooms share nothing but the snapshot store.
type RoomManager struct {
	mu    sync.RWMutex
	rooms map[string]*room.Room

	store     store.Store
	heartbeat *ws.Heartbeat
}

func NewRoomManager(st store.Store, hb *ws.Heartbeat) *RoomManager {
	return &RoomManager{
		rooms:     make(map[string]*room.Room),
		store:     st,
		heartbeat: hb,
	}
}

// GetOrCreate returns the coordinator for roomID, creating it on first use.
func (rm *RoomManager) GetOrCreate(roomID string) *room.Room {
	rm.mu.RLock()
	r, ok := rm.rooms[roomID]
	rm.mu.RUnlock()
	if ok {
		return r
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()
	if r, ok := rm.rooms[roomID]; ok {
		return r
	}
	r = room.New(roomID, rm.store, rm.heartbeat)
	rm.rooms[roomID] = r
	return r
}
