package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to derive their clock.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// PlayerStats counts what one pilot did during a match.
type PlayerStats struct {
	TorpedoesFired int
	PhasersFired   int
	Hits           int
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	GameOver bool     // Whether the match has ended
	Paused   bool     // Whether the match is paused
	Winner   PlayerID // PlayerNone while running or on a draw
	Tick     uint64   // Simulation ticks elapsed while unpaused
	Stats    [2]PlayerStats
}

// StatsFor returns the stats of the given player.
func (s GameState) StatsFor(id PlayerID) PlayerStats {
	switch id {
	case Player1:
		return s.Stats[0]
	case Player2:
		return s.Stats[1]
	default:
		return PlayerStats{}
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
