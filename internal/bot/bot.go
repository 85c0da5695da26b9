// internal/bot/bot.go

// Package bot implements the computer player: heuristic bid estimation and
// card selection built only on the public read surface of the game engine.
// Every function is a pure decision; the engine applies the returned choice
// through its normal validated paths.
package bot

// StandardBot is the default computer player. It satisfies game.Decider.
type StandardBot struct {
	// Aggression biases the bid rounding upward; 0 bids on raw expected
	// value.
	Aggression float64
}

// New returns the standard bot with the default aggression bias.
func New() *StandardBot {
	return &StandardBot{Aggression: 0.2}
}
