package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benbeisheim/mastermind-backend/internal/store"
	"github.com/benbeisheim/mastermind-backend/internal/ws"
)

func newTestManager() *RoomManager {
	return NewRoomManager(store.NewMemory(), ws.NewHeartbeat(time.Minute))
}

func TestGetOrCreateRoutesConsistently(t *testing.T) {
	rm := newTestManager()

	a := rm.GetOrCreate("room-1")
	b := rm.GetOrCreate("room-1")
	other := rm.GetOrCreate("room-2")

	assert.Same(t, a, b, "same id must resolve to the same coordinator")
	assert.NotSame(t, a, other)
}

func TestGetOrCreateConcurrent(t *testing.T) {
	rm := newTestManager()

	var wg sync.WaitGroup
	results := make([]any, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = rm.GetOrCreate("room-1")
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}

func TestCreateRoomAllocatesUniqueIDs(t *testing.T) {
	rs := NewRoomService(newTestManager())

	first := rs.CreateRoom()
	second := rs.CreateRoom()
	require.NotEmpty(t, first)
	assert.NotEqual(t, first, second)

	assert.Same(t, rs.Room(first), rs.Room(first))
}
