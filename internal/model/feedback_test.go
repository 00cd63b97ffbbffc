package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	secret := []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow}

	tests := []struct {
		name  string
		guess []Color
		want  GuessFeedback
	}{
		{
			name:  "all exact",
			guess: []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow},
			want:  GuessFeedback{ExactMatches: 4, ColorMatches: 0},
		},
		{
			name:  "one exact two misplaced",
			guess: []Color{ColorRed, ColorGreen, ColorBlue, ColorPink},
			want:  GuessFeedback{ExactMatches: 1, ColorMatches: 2},
		},
		{
			name:  "all misplaced",
			guess: []Color{ColorYellow, ColorRed, ColorBlue, ColorGreen},
			want:  GuessFeedback{ExactMatches: 0, ColorMatches: 4},
		},
		{
			name:  "no overlap with repeated guess colors",
			guess: []Color{ColorPurple, ColorPink, ColorPurple, ColorPink},
			want:  GuessFeedback{ExactMatches: 0, ColorMatches: 0},
		},
		{
			name:  "repeated guess color counted once per secret color",
			guess: []Color{ColorBlue, ColorRed, ColorRed, ColorRed},
			want:  GuessFeedback{ExactMatches: 0, ColorMatches: 2},
		},
		{
			name:  "exact match repeated elsewhere in guess",
			guess: []Color{ColorRed, ColorRed, ColorPink, ColorPink},
			want:  GuessFeedback{ExactMatches: 1, ColorMatches: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Score(secret, tt.guess)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, got.ExactMatches+got.ColorMatches, len(secret))
		})
	}
}

func TestScoreLengthMismatch(t *testing.T) {
	secret := []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow}

	for _, guess := range [][]Color{
		nil,
		{ColorRed},
		{ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorPink},
	} {
		got, err := Score(secret, guess)
		assert.Error(t, err)
		assert.Equal(t, GuessFeedback{}, got)
	}
}
