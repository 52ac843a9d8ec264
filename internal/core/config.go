package core

// RuntimeConfig contains settings passed to frontends at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the platform (default 60)
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

// GameState summarizes the game for the platform (HUD, persistence).
type GameState struct {
	Score  int    // Current score
	Lives  int    // Lives remaining
	Level  int    // Selected level index
	Phase  string // "menu", "active" or "win"
	Paused bool   // Whether the game is paused
}

// StepResult is returned after each simulated frame.
type StepResult struct {
	State GameState
	// RunEnded is set on the frame a run finishes, either by losing the
	// last life or by clearing the level. FinalScore holds the score of
	// that run and Won tells which of the two happened.
	RunEnded   bool
	FinalScore int
	Won        bool
}
