package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState is the run status reported to the platform after each tick.
type GameState struct {
	Score    int  // Platforms landed on this run
	GameOver bool // Set once the player falls off the field
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Landed reports whether the player bounced off a platform this tick.
	Landed bool
}
