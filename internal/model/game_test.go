package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playingState(secret []Color) GameState {
	s := NewGameState()
	s.Players = []Player{
		{ID: "p1", Name: "Ann"},
		{ID: "p2", Name: "Ben"},
	}
	s.SecretCode = secret
	s.Status = StatusPlaying
	return s
}

var testSecret = []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow}

// wrongGuess misses the secret entirely.
var wrongGuess = []Color{ColorPurple, ColorPink, ColorPurple, ColorPink}

func TestAddPlayer(t *testing.T) {
	t.Run("two players join while waiting", func(t *testing.T) {
		s := NewGameState()

		p1, err := s.AddPlayer("p1", "Ann")
		require.NoError(t, err)
		assert.Equal(t, "Ann", p1.Name)

		_, err = s.AddPlayer("p2", "Ben")
		require.NoError(t, err)
		assert.Len(t, s.Players, 2)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		s := NewGameState()
		_, err := s.AddPlayer("p1", "Ann")
		require.NoError(t, err)

		_, err = s.AddPlayer("p2", "Ann")
		assert.ErrorIs(t, err, ErrNameTaken)
		assert.Len(t, s.Players, 1)
	})

	t.Run("room full rejected", func(t *testing.T) {
		s := NewGameState()
		_, err := s.AddPlayer("p1", "Ann")
		require.NoError(t, err)
		_, err = s.AddPlayer("p2", "Ben")
		require.NoError(t, err)

		_, err = s.AddPlayer("p3", "Cid")
		assert.ErrorIs(t, err, ErrRoomFull)
		assert.Len(t, s.Players, 2)
	})

	t.Run("join during play rejected", func(t *testing.T) {
		s := playingState(testSecret)
		_, err := s.AddPlayer("p3", "Cid")
		assert.ErrorIs(t, err, ErrGameNotWaiting)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		s := NewGameState()
		_, err := s.AddPlayer("p1", "")
		assert.ErrorIs(t, err, ErrEmptyName)
	})
}

func TestStart(t *testing.T) {
	t.Run("requires two players", func(t *testing.T) {
		s := NewGameState()
		assert.ErrorIs(t, s.Start(), ErrNotEnoughPlayers)

		_, err := s.AddPlayer("p1", "Ann")
		require.NoError(t, err)
		assert.ErrorIs(t, s.Start(), ErrNotEnoughPlayers)
		assert.Equal(t, StatusWaiting, s.Status)
		assert.Empty(t, s.SecretCode)
	})

	t.Run("starts with full roster", func(t *testing.T) {
		s := NewGameState()
		_, err := s.AddPlayer("p1", "Ann")
		require.NoError(t, err)
		_, err = s.AddPlayer("p2", "Ben")
		require.NoError(t, err)

		require.NoError(t, s.Start())
		assert.Equal(t, StatusPlaying, s.Status)
		assert.Len(t, s.SecretCode, CodeLength)
		assert.Equal(t, 0, s.CurrentPlayerIndex)
	})

	t.Run("start while playing rejected", func(t *testing.T) {
		s := playingState(testSecret)
		assert.ErrorIs(t, s.Start(), ErrGameNotWaiting)
	})
}

func TestApplyGuess(t *testing.T) {
	t.Run("not playing rejected", func(t *testing.T) {
		s := NewGameState()
		_, err := s.ApplyGuess("p1", wrongGuess)
		assert.ErrorIs(t, err, ErrNotPlaying)
	})

	t.Run("out of turn rejected", func(t *testing.T) {
		s := playingState(testSecret)
		_, err := s.ApplyGuess("p2", wrongGuess)
		assert.ErrorIs(t, err, ErrNotYourTurn)
		assert.Empty(t, s.Guesses)
		assert.Equal(t, 0, s.CurrentRound)
	})

	t.Run("wrong length rejected", func(t *testing.T) {
		s := playingState(testSecret)
		_, err := s.ApplyGuess("p1", []Color{ColorRed})
		assert.Error(t, err)
		assert.Empty(t, s.Guesses)
		assert.Equal(t, StatusPlaying, s.Status)
	})

	t.Run("incorrect guess passes turn and increments round", func(t *testing.T) {
		s := playingState(testSecret)

		record, err := s.ApplyGuess("p1", wrongGuess)
		require.NoError(t, err)
		assert.Equal(t, "p1", record.PlayerID)
		assert.Equal(t, "Ann", record.PlayerName)
		assert.Equal(t, 0, record.Round)

		assert.Equal(t, StatusPlaying, s.Status)
		assert.Equal(t, 1, s.CurrentRound)
		assert.Equal(t, 1, s.CurrentPlayerIndex)

		record, err = s.ApplyGuess("p2", wrongGuess)
		require.NoError(t, err)
		assert.Equal(t, 1, record.Round)
		assert.Equal(t, 0, s.CurrentPlayerIndex)
	})

	t.Run("exact guess wins immediately", func(t *testing.T) {
		s := playingState(testSecret)

		record, err := s.ApplyGuess("p1", testSecret)
		require.NoError(t, err)
		assert.Equal(t, CodeLength, record.Feedback.ExactMatches)
		assert.Equal(t, StatusWon, s.Status)
		// No turn change or round increment on a win.
		assert.Equal(t, 0, s.CurrentPlayerIndex)
		assert.Equal(t, 0, s.CurrentRound)

		_, err = s.ApplyGuess("p1", testSecret)
		assert.ErrorIs(t, err, ErrNotPlaying)
	})

	t.Run("round exhaustion loses", func(t *testing.T) {
		s := playingState(testSecret)
		players := []string{"p1", "p2"}

		// The budget allows MaxRounds incorrect guesses without ending the game.
		for i := 0; i < s.MaxRounds; i++ {
			_, err := s.ApplyGuess(players[i%2], wrongGuess)
			require.NoError(t, err)
			assert.Equal(t, StatusPlaying, s.Status, "guess %d should not lose", i+1)
		}

		_, err := s.ApplyGuess(players[s.MaxRounds%2], wrongGuess)
		require.NoError(t, err)
		assert.Equal(t, StatusLost, s.Status)
		assert.Len(t, s.Guesses, s.MaxRounds+1)
	})
}

func TestRemovePlayer(t *testing.T) {
	t.Run("unknown player is a no-op", func(t *testing.T) {
		s := playingState(testSecret)
		_, ok := s.RemovePlayer("nope")
		assert.False(t, ok)
		assert.Len(t, s.Players, 2)
	})

	t.Run("current player leaving passes the turn", func(t *testing.T) {
		s := playingState(testSecret)
		s.CurrentPlayerIndex = 1

		removed, ok := s.RemovePlayer("p2")
		require.True(t, ok)
		assert.Equal(t, "p2", removed.ID)
		assert.Len(t, s.Players, 1)
		assert.Equal(t, 0, s.CurrentPlayerIndex)
		assert.Equal(t, "p1", s.Players[s.CurrentPlayerIndex].ID)
	})

	t.Run("earlier player leaving shifts the pointer", func(t *testing.T) {
		s := playingState(testSecret)
		s.CurrentPlayerIndex = 1

		_, ok := s.RemovePlayer("p1")
		require.True(t, ok)
		assert.Equal(t, 0, s.CurrentPlayerIndex)
		assert.Equal(t, "p2", s.Players[s.CurrentPlayerIndex].ID)
	})

	t.Run("pointer stays valid after arbitrary joins and leaves", func(t *testing.T) {
		s := NewGameState()
		_, err := s.AddPlayer("p1", "Ann")
		require.NoError(t, err)
		_, err = s.AddPlayer("p2", "Ben")
		require.NoError(t, err)
		require.NoError(t, s.Start())

		_, err = s.ApplyGuess("p1", wrongGuess)
		require.NoError(t, err)

		_, ok := s.RemovePlayer("p2")
		require.True(t, ok)
		assert.GreaterOrEqual(t, s.CurrentPlayerIndex, 0)
		assert.Less(t, s.CurrentPlayerIndex, len(s.Players))

		_, ok = s.RemovePlayer("p1")
		require.True(t, ok)
		assert.Empty(t, s.Players)
		assert.Equal(t, 0, s.CurrentPlayerIndex)
	})
}

func TestSanitized(t *testing.T) {
	s := playingState(testSecret)
	assert.Empty(t, s.Sanitized().SecretCode)
	assert.Equal(t, testSecret, s.SecretCode, "sanitizing must not mutate the state")

	waiting := NewGameState()
	assert.Empty(t, waiting.Sanitized().SecretCode)

	s.Status = StatusWon
	assert.Equal(t, testSecret, s.Sanitized().SecretCode)
	s.Status = StatusLost
	assert.Equal(t, testSecret, s.Sanitized().SecretCode)
}

func TestNewGameState(t *testing.T) {
	s := NewGameState()
	assert.Equal(t, StatusWaiting, s.Status)
	assert.Equal(t, DefaultMaxRounds, s.MaxRounds)
	assert.Equal(t, 0, s.CurrentRound)
	assert.Equal(t, 0, s.CurrentPlayerIndex)
	assert.Empty(t, s.SecretCode)
	assert.Empty(t, s.Players)
	assert.Empty(t, s.Guesses)
}
