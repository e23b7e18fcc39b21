package core

// Signal is a terminal notification delivered to the host layer.
// Signals are domain outcomes, not errors: the host decides what to do
// with them (advance the campaign, show a game-over screen, reset).
type Signal int

const (
	// SignalWaveComplete fires when a stage's quota is exhausted and the
	// field is clear, or when the boss is destroyed
	SignalWaveComplete Signal = iota

	// SignalGameOver fires exactly once when player health reaches zero
	SignalGameOver
)

func (s Signal) String() string {
	switch s {
	case SignalWaveComplete:
		return "wave-complete"
	case SignalGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}
