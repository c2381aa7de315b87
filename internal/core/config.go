package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frames per second (default 60)
	Seed     int64 // RNG seed for non-generator randomness (particles, AI jitter)

	// ViewW and ViewH override the camera viewport in world units.
	// Zero means "use the configured viewport".
	ViewW float64
	ViewH float64
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
	Level    int  // Current level index (1-based)
	Health   int  // Player health
	GameOver bool // Whether the player has died
	Victory  bool // Whether the final level was completed
	Paused   bool // Whether the game is paused
}

// Finished reports whether the run has ended either way.
func (s GameState) Finished() bool {
	return s.GameOver || s.Victory
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State GameState
}
