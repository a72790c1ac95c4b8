package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // UI ticks per second, drives message timeouts
	Seed     int64 // RNG seed; 0 means the platform picks one

	// HighScore is the best saved score for the game, shown in the HUD.
	HighScore int
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int    // Current score
	Moves    int    // Completed moves
	GameOver bool   // Whether the game has ended
	Paused   bool   // Whether the game is paused
	Message  string // Short status line, empty when there is nothing to say
}

// StepResult is returned by Game.Step() after each input frame.
type StepResult struct {
	State GameState
	// Redraw is set when the frame changed what the game would render.
	Redraw bool
}
