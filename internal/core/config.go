package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the platform (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// HighScore is the best score known to the platform (e.g. from the
	// score store) when the game starts.
	HighScore int

	// Difficulty selects a preset ("easy", "normal", "hard", "fixed").
	// Empty keeps the configured value.
	Difficulty string
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Event is something noteworthy that happened during a step.
// The platform uses events for feedback (HUD flashes, sounds).
type Event int

const (
	EventEat Event = iota + 1
	EventPrize
	EventGameOver
	EventCleared
)

func (e Event) String() string {
	switch e {
	case EventEat:
		return "eat"
	case EventPrize:
		return "prize"
	case EventGameOver:
		return "game over"
	case EventCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the step produced event e.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}
