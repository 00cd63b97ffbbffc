package model

import "math/rand"

// Color is a single peg color from the fixed palette.
type Color string

const (
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorPurple Color = "purple"
	ColorPink   Color = "pink"
)

// Palette lists every color a secret code or guess may use.
var Palette = []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorPurple, ColorPink}

const (
	// CodeLength is the fixed length of the secret code and of every guess.
	CodeLength = 4
	// DefaultMaxRounds is the per-room round budget before the game is lost.
	DefaultMaxRounds = 7
)

// GenerateSecretCode shuffles a copy of the palette and takes the first
// CodeLength entries. A secret code therefore never repeats a color.
func GenerateSecretCode() []Color {
	colors := make([]Color, len(Palette))
	copy(colors, Palette)
	rand.Shuffle(len(colors), func(i, j int) {
		colors[i], colors[j] = colors[j], colors[i]
	})
	return colors[:CodeLength]
}
