package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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
	Lives    int  // Remaining lives
	Level    int  // Current level index (zero-based)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind classifies a notable game occurrence.
type EventKind int

const (
	EventHazardHit   EventKind = iota // Player touched a hazard and respawned
	EventExitReached                  // Player reached a level exit
	EventGameOver                     // Lives ran out; the session was reset
)

// Event is surfaced to the platform layer for score persistence and
// feedback effects.
type Event struct {
	Kind    EventKind
	Level   int     // Level index the event occurred on
	LevelID string  // Stable level identifier (for clear-time records)
	Seconds float64 // Time spent on that level (exit events)
	Score   int     // Score at the moment of the event (game-over events)
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
