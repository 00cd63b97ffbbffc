package model

import (
	"fmt"
	"slices"
)

// GuessFeedback is the score for one guess. JSON field names follow the
// client wire format.
type GuessFeedback struct {
	// ExactMatches counts positions holding the right color in the right spot.
	ExactMatches int `json:"correctPostionAndColor"`
	// ColorMatches counts secret colors present in the guess but misplaced.
	ColorMatches int `json:"correctColors"`
}

// Score compares a guess against the secret code.
//
// The first pass counts exact positional matches. The second pass counts
// secret colors that appear anywhere in the guess; exact matches are then
// subtracted to leave the misplaced-color count. The membership test does
// not consume matched guess pegs. Secret codes never repeat a color, so
// each secret color contributes at most one to the raw count.
func Score(secret, guess []Color) (GuessFeedback, error) {
	if len(guess) != len(secret) {
		return GuessFeedback{}, fmt.Errorf("guess length %d does not match code length %d", len(guess), len(secret))
	}

	var feedback GuessFeedback
	for i := range secret {
		if guess[i] == secret[i] {
			feedback.ExactMatches++
		}
	}

	colorMatches := 0
	for _, c := range secret {
		if slices.Contains(guess, c) {
			colorMatches++
		}
	}
	feedback.ColorMatches = colorMatches - feedback.ExactMatches

	return feedback, nil
}
