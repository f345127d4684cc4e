package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW       int   // Screen width in characters
	ScreenH       int   // Screen height in characters
	TickRate      int   // Frames per second requested from the host loop
	Seed          int64 // RNG seed for deterministic gameplay
	ReducedMotion bool  // Suppress cosmetic shake/glitch effects and events
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

// Phase is the coarse state-machine position of a game.
type Phase string

const (
	PhaseStart           Phase = "start"
	PhasePlaying         Phase = "playing"
	PhaseClearing        Phase = "clearing"
	PhaseLevelTransition Phase = "level_transition"
	PhaseLevelComplete   Phase = "level_complete"
	PhaseWarping         Phase = "warping"
	PhaseGameOver        Phase = "game_over"
)

// GameState represents the display values published by a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int
	Lives    int // 0 for games without lives
	Level    int
	Phase    Phase
	GameOver bool
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
