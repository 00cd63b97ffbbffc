package model

import "errors"

// Status is the room's position in the waiting -> playing -> won/lost
// state machine.
type Status string

const (
	StatusWaiting Status = "waiting"
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// MaxPlayers is the fixed roster size for a match.
const MaxPlayers = 2

var (
	ErrEmptyName        = errors.New("player name is empty")
	ErrGameNotWaiting   = errors.New("game is not waiting for players")
	ErrRoomFull         = errors.New("room already has two players")
	ErrNameTaken        = errors.New("player name already taken")
	ErrNotEnoughPlayers = errors.New("game needs exactly two players to start")
	ErrNotPlaying       = errors.New("game is not in progress")
	ErrNotYourTurn      = errors.New("not this player's turn")
)

type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GuessRecord is one scored guess. Records are immutable once appended.
type GuessRecord struct {
	PlayerID   string        `json:"playerId"`
	PlayerName string        `json:"playerName"`
	Guess      []Color       `json:"guess"`
	Feedback   GuessFeedback `json:"feedback"`
	Round      int           `json:"round"`
}

// GameState is the single source of truth for one room. It is owned
// exclusively by the room coordinator; every mutation goes through one of
// the transition methods below, each of which enforces its own guard.
type GameState struct {
	SecretCode         []Color       `json:"secretCode"`
	CurrentRound       int           `json:"currentRound"`
	MaxRounds          int           `json:"maxRounds"`
	Players            []Player      `json:"players"`
	Guesses            []GuessRecord `json:"guesses"`
	Status             Status        `json:"gameStatus"`
	CurrentPlayerIndex int           `json:"currentPlayerIndex"`
}

// NewGameState returns a fresh waiting state. Reset is modeled as replacing
// the old state with a new one.
func NewGameState() GameState {
	return GameState{
		SecretCode: []Color{},
		MaxRounds:  DefaultMaxRounds,
		Players:    []Player{},
		Guesses:    []GuessRecord{},
		Status:     StatusWaiting,
	}
}

// AddPlayer admits a named player while the room is waiting, has space, and
// the name is not already taken (case-sensitive).
func (s *GameState) AddPlayer(id, name string) (Player, error) {
	if name == "" {
		return Player{}, ErrEmptyName
	}
	if s.Status != StatusWaiting {
		return Player{}, ErrGameNotWaiting
	}
	if len(s.Players) >= MaxPlayers {
		return Player{}, ErrRoomFull
	}
	for _, p := range s.Players {
		if p.Name == name {
			return Player{}, ErrNameTaken
		}
	}

	player := Player{ID: id, Name: name}
	s.Players = append(s.Players, player)
	return player, nil
}

// RemovePlayer drops a player from the roster. During play the turn pointer
// is kept on the same logical player: removing the current player wraps the
// pointer into the shrunken roster, removing an earlier player shifts it
// down by one.
func (s *GameState) RemovePlayer(playerID string) (Player, bool) {
	idx := -1
	for i, p := range s.Players {
		if p.ID == playerID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Player{}, false
	}

	removed := s.Players[idx]
	s.Players = append(s.Players[:idx], s.Players[idx+1:]...)

	if s.Status == StatusPlaying {
		switch {
		case len(s.Players) == 0:
			s.CurrentPlayerIndex = 0
		case s.CurrentPlayerIndex == idx:
			s.CurrentPlayerIndex %= len(s.Players)
		case s.CurrentPlayerIndex > idx:
			s.CurrentPlayerIndex--
		}
	}
	return removed, true
}

// Start begins play: a fresh secret code is generated and player 0 moves
// first. Requires a full roster and a waiting room.
func (s *GameState) Start() error {
	if s.Status != StatusWaiting {
		return ErrGameNotWaiting
	}
	if len(s.Players) != MaxPlayers {
		return ErrNotEnoughPlayers
	}

	s.SecretCode = GenerateSecretCode()
	s.Status = StatusPlaying
	s.CurrentPlayerIndex = 0
	return nil
}

// ApplyGuess scores the current player's guess and advances the state
// machine: an all-exact guess wins immediately, an incorrect guess passes
// the turn and increments the round counter, and exceeding the round budget
// loses the game.
func (s *GameState) ApplyGuess(playerID string, guess []Color) (GuessRecord, error) {
	if s.Status != StatusPlaying {
		return GuessRecord{}, ErrNotPlaying
	}
	current := s.Players[s.CurrentPlayerIndex]
	if current.ID != playerID {
		return GuessRecord{}, ErrNotYourTurn
	}

	feedback, err := Score(s.SecretCode, guess)
	if err != nil {
		return GuessRecord{}, err
	}

	record := GuessRecord{
		PlayerID:   current.ID,
		PlayerName: current.Name,
		Guess:      guess,
		Feedback:   feedback,
		Round:      s.CurrentRound,
	}
	s.Guesses = append(s.Guesses, record)

	if feedback.ExactMatches == len(s.SecretCode) {
		s.Status = StatusWon
		return record, nil
	}

	s.CurrentPlayerIndex = (s.CurrentPlayerIndex + 1) % len(s.Players)
	s.CurrentRound++
	if s.CurrentRound > s.MaxRounds {
		s.Status = StatusLost
	}
	return record, nil
}

// CurrentPlayer returns the player whose turn it is.
func (s *GameState) CurrentPlayer() (Player, bool) {
	if s.CurrentPlayerIndex < 0 || s.CurrentPlayerIndex >= len(s.Players) {
		return Player{}, false
	}
	return s.Players[s.CurrentPlayerIndex], true
}

// Finished reports whether the game reached a terminal state.
func (s *GameState) Finished() bool {
	return s.Status == StatusWon || s.Status == StatusLost
}

// Sanitized returns a copy safe to send to clients: the secret code stays
// hidden until the game reaches a terminal state.
func (s *GameState) Sanitized() GameState {
	if s.Finished() {
		return *s
	}
	clientState := *s
	clientState.SecretCode = []Color{}
	return clientState
}
