package core

// RuntimeConfig contains configuration passed to games at initialization.
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

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Score    int  // Player 1 score
	Level    int  // Player 1 difficulty level, 1-based for display
	Chain    int  // Highest chain reached by player 1
	GameOver bool // A board lost this tick and a report is pending
	Paused   bool
}

// SessionReport summarizes one finished session of one board.
type SessionReport struct {
	Player       PlayerID
	Score        int
	Level        int
	Cleared      int
	HighestChain int
	MaxCombo     int
	GarbageSent  int
	Frames       uint64
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State    GameState
	Sessions []SessionReport // sessions that ended during this tick
}
