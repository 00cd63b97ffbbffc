package room

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/benbeisheim/mastermind-backend/internal/model"
	"github.com/benbeisheim/mastermind-backend/internal/store"
	"github.com/benbeisheim/mastermind-backend/internal/ws"
)

// Room is the authoritative coordinator for one match. Game state, roster,
// and the connection registry all live behind its mutex: commands for a
// room are processed strictly one at a time, while separate rooms run
// independently.
//
// Each command follows the same pipeline: validate against current state,
// mutate, persist the snapshot, then broadcast the resulting events with a
// full state message last. Rejected commands produce no broadcast at all.
type Room struct {
	ID string

	mu      sync.Mutex
	state   model.GameState
	clients map[*ws.Client]string // connection -> player id, "" until a join succeeds
	loaded  bool

	store     store.Store
	heartbeat *ws.Heartbeat
	logger    zerolog.Logger
}

func New(id string, st store.Store, hb *ws.Heartbeat) *Room {
	return &Room{
		ID:        id,
		state:     model.NewGameState(),
		clients:   make(map[*ws.Client]string),
		store:     st,
		heartbeat: hb,
		logger:    log.With().Str("room", id).Logger(),
	}
}

// Attach registers a freshly-upgraded connection: the snapshot is loaded if
// this is the room's first traffic since startup, the liveness probe
// starts, and the current state is sent to the new connection only.
func (r *Room) Attach(ctx context.Context, client *ws.Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureLoaded(ctx)
	r.clients[client] = ""
	r.heartbeat.Start(client)

	initial := ws.GameStateEvent{Type: ws.EventGameState, State: r.state.Sanitized()}
	if err := client.WriteJSON(initial); err != nil {
		r.logger.Debug().Err(err).Msg("initial state send failed")
		client.Close()
	}
}

// Detach runs the disconnect path: the probe is cancelled, the connection
// is forgotten, and any player registered on it leaves the roster. A
// connection that never joined detaches as a no-op beyond the bookkeeping.
func (r *Room) Detach(ctx context.Context, client *ws.Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	playerID, known := r.clients[client]
	r.heartbeat.Stop(client)
	delete(r.clients, client)
	if !known || playerID == "" {
		return
	}

	removed, ok := r.state.RemovePlayer(playerID)
	if !ok {
		r.logger.Debug().Str("player", playerID).Msg("leaving player not in roster")
		return
	}

	r.persist(ctx)
	r.broadcast(ws.PlayerLeftEvent{Type: ws.EventPlayerLeft, PlayerID: removed.ID})
	r.broadcastState()
	r.logger.Info().Str("player", removed.ID).Str("name", removed.Name).Msg("player left")
}

// HandleMessage applies one raw client message. Malformed or unknown input
// is discarded with no state change and no broadcast.
func (r *Room) HandleMessage(ctx context.Context, client *ws.Client, raw []byte) {
	var cmd ws.ClientCommand
	if err := json.Unmarshal(raw, &cmd); err != nil {
		r.logger.Debug().Err(err).Msg("discarding malformed message")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded(ctx)

	switch cmd.Type {
	case ws.CommandJoin:
		r.handleJoin(ctx, client, cmd.PlayerName)
	case ws.CommandReset:
		r.handleReset(ctx)
	case ws.CommandStartGame:
		r.handleStart(ctx)
	case ws.CommandSubmitGuess:
		r.handleGuess(ctx, client, cmd.Guess)
	default:
		r.logger.Debug().Str("type", string(cmd.Type)).Msg("discarding unknown command")
	}
}

// State returns a client-safe copy of the current state, loading the
// snapshot first if needed.
func (r *Room) State(ctx context.Context) model.GameState {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded(ctx)
	return r.state.Sanitized()
}

func (r *Room) handleJoin(ctx context.Context, client *ws.Client, name string) {
	if r.clients[client] != "" {
		r.logger.Debug().Msg("join rejected, connection already has a player")
		return
	}

	player, err := r.state.AddPlayer(uuid.New().String(), name)
	if err != nil {
		r.logger.Debug().Err(err).Str("name", name).Msg("join rejected")
		return
	}

	r.clients[client] = player.ID
	if err := client.WriteJSON(ws.PlayerIDEvent{Type: ws.EventPlayerID, PlayerID: player.ID}); err != nil {
		r.logger.Debug().Err(err).Msg("player id send failed")
		client.Close()
	}

	r.persist(ctx)
	r.broadcast(ws.PlayerJoinedEvent{Type: ws.EventPlayerJoined, Player: player})
	r.broadcastState()
	r.logger.Info().Str("player", player.ID).Str("name", player.Name).Msg("player joined")
}

func (r *Room) handleReset(ctx context.Context) {
	r.state = model.NewGameState()
	// The roster is gone, so connection registrations go with it.
	for client := range r.clients {
		r.clients[client] = ""
	}

	r.persist(ctx)
	r.broadcastState()
	r.logger.Info().Msg("room reset")
}

func (r *Room) handleStart(ctx context.Context) {
	if err := r.state.Start(); err != nil {
		r.logger.Debug().Err(err).Msg("start rejected")
		return
	}
	first := r.state.Players[0]

	r.persist(ctx)
	r.broadcast(ws.GameStartedEvent{Type: ws.EventGameStarted, FirstPlayer: first.ID})
	r.broadcast(ws.PlayerTurnEvent{Type: ws.EventPlayerTurn, PlayerName: first.Name, PlayerID: first.ID})
	r.broadcastState()
	r.logger.Info().Str("first", first.Name).Msg("game started")
}

func (r *Room) handleGuess(ctx context.Context, client *ws.Client, guess []model.Color) {
	playerID := r.clients[client]
	if playerID == "" {
		r.logger.Debug().Msg("guess from connection with no player")
		return
	}

	record, err := r.state.ApplyGuess(playerID, guess)
	if err != nil {
		r.logger.Debug().Err(err).Str("player", playerID).Msg("guess rejected")
		return
	}

	r.persist(ctx)
	r.broadcast(ws.GuessSubmittedEvent{Type: ws.EventGuessSubmitted, Guess: record})

	switch r.state.Status {
	case model.StatusWon:
		winner := model.Player{ID: record.PlayerID, Name: record.PlayerName}
		r.broadcast(ws.GameWonEvent{Type: ws.EventGameWon, Winner: winner, SecretCode: r.state.SecretCode})
		r.logger.Info().Str("winner", winner.Name).Msg("game won")
	case model.StatusLost:
		r.broadcast(ws.GameLostEvent{Type: ws.EventGameLost, SecretCode: r.state.SecretCode})
		r.logger.Info().Msg("game lost, rounds exhausted")
	default:
		if next, ok := r.state.CurrentPlayer(); ok {
			r.broadcast(ws.PlayerTurnEvent{Type: ws.EventPlayerTurn, PlayerName: next.Name, PlayerID: next.ID})
		}
	}
	r.broadcastState()
}

// ensureLoaded restores the snapshot before the room's first command or
// state read. A missing snapshot means a fresh waiting state.
func (r *Room) ensureLoaded(ctx context.Context) {
	if r.loaded {
		return
	}
	r.loaded = true

	state, err := r.store.Load(ctx, r.ID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			r.logger.Error().Err(err).Msg("snapshot load failed, starting fresh")
		}
		return
	}
	r.state = *state
	r.logger.Info().Int("players", len(state.Players)).Str("status", string(state.Status)).Msg("snapshot restored")
}

// persist writes the full snapshot. On failure the in-memory state stays
// authoritative for this process and the command continues.
func (r *Room) persist(ctx context.Context) {
	if err := r.store.Save(ctx, r.ID, &r.state); err != nil {
		r.logger.Error().Err(err).Msg("snapshot save failed")
	}
}

// broadcast sends one event to every live connection. A failed write closes
// only that connection; its read loop then runs the disconnect path.
func (r *Room) broadcast(event any) {
	for client := range r.clients {
		if err := client.WriteJSON(event); err != nil {
			r.logger.Debug().Err(err).Msg("broadcast write failed, closing connection")
			client.Close()
		}
	}
}

func (r *Room) broadcastState() {
	r.broadcast(ws.GameStateEvent{Type: ws.EventGameState, State: r.state.Sanitized()})
}
