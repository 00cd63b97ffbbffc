package ws

import (
	"github.com/benbeisheim/mastermind-backend/internal/model"
)

// CommandType discriminates client messages.
type CommandType string

const (
	CommandJoin        CommandType = "join"
	CommandReset       CommandType = "reset"
	CommandStartGame   CommandType = "start_game"
	CommandSubmitGuess CommandType = "submit_guess"
)

// ClientCommand is the envelope for every client message. Fields beyond
// Type are populated per command.
type ClientCommand struct {
	Type       CommandType   `json:"type"`
	PlayerName string        `json:"playerName,omitempty"`
	Guess      []model.Color `json:"guess,omitempty"`
}

// EventType discriminates server messages.
type EventType string

const (
	EventPlayerJoined   EventType = "player_joined"
	EventPlayerLeft     EventType = "player_left"
	EventGameStarted    EventType = "game_started"
	EventPlayerTurn     EventType = "player_turn"
	EventGuessSubmitted EventType = "guess_submitted"
	EventGameWon        EventType = "game_won"
	EventGameLost       EventType = "game_lost"
	EventGameState      EventType = "game_state"
	EventPlayerID       EventType = "player_id"
)

// PlayerJoinedEvent announces a new roster member.
type PlayerJoinedEvent struct {
	Type   EventType    `json:"type"`
	Player model.Player `json:"player"`
}

// PlayerLeftEvent announces a roster removal.
type PlayerLeftEvent struct {
	Type     EventType `json:"type"`
	PlayerID string    `json:"playerId"`
}

// GameStartedEvent announces the transition to playing. FirstPlayer carries
// the id of the player who moves first.
type GameStartedEvent struct {
	Type        EventType `json:"type"`
	FirstPlayer string    `json:"firstPlayer"`
}

// PlayerTurnEvent announces whose turn it is.
type PlayerTurnEvent struct {
	Type       EventType `json:"type"`
	PlayerName string    `json:"playerName"`
	PlayerID   string    `json:"playerId"`
}

// GuessSubmittedEvent carries a scored guess record.
type GuessSubmittedEvent struct {
	Type  EventType         `json:"type"`
	Guess model.GuessRecord `json:"guess"`
}

// GameWonEvent reveals the secret code and the winner.
type GameWonEvent struct {
	Type       EventType     `json:"type"`
	Winner     model.Player  `json:"winner"`
	SecretCode []model.Color `json:"secretCode"`
}

// GameLostEvent reveals the secret code after round exhaustion.
type GameLostEvent struct {
	Type       EventType     `json:"type"`
	SecretCode []model.Color `json:"secretCode"`
}

// GameStateEvent carries the full (sanitized) room state. It is always the
// last message of a broadcast batch.
type GameStateEvent struct {
	Type  EventType       `json:"type"`
	State model.GameState `json:"state"`
}

// PlayerIDEvent is sent only to the joining connection with its assigned id.
type PlayerIDEvent struct {
	Type     EventType `json:"type"`
	PlayerID string    `json:"playerId"`
}
