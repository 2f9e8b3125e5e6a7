package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Hosts fill it from CLI flags and the terminal or window size.
type RuntimeConfig struct {
	ScreenW  int   // Host screen width (terminal columns or window pixels)
	ScreenH  int   // Host screen height (terminal rows or window pixels)
	TickRate int   // Frames per second requested from the host loop (default 60)
	Seed     int64 // RNG seed for deterministic raindrop placement
}

// GameState represents the current state of a session.
// Returned by Game.State() to communicate status to the host.
type GameState struct {
	Paused    bool  // Whether the session is paused
	Raindrops int   // Raindrops currently airborne
	Frames    int64 // Frames simulated since the last reset
}

// StepResult is returned by Game.Step() after each frame.
// Contains the updated session state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
