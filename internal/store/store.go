package store

import (
	"context"
	"errors"

	"github.com/benbeisheim/mastermind-backend/internal/model"
)

// ErrNotFound is returned by Load when a room has no saved snapshot.
var ErrNotFound = errors.New("no snapshot for room")

// Store persists one GameState snapshot per room. Implementations must be
// safe for use by concurrent room coordinators.
type Store interface {
	// Save writes the full snapshot for a room, replacing any previous one.
	Save(ctx context.Context, roomID string, state *model.GameState) error

	// Load returns the snapshot for a room, or ErrNotFound.
	Load(ctx context.Context, roomID string) (*model.GameState, error)

	Close(ctx context.Context) error
}
