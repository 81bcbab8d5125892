package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// Phase is the play state of a game session.
type Phase int

const (
	PhasePlay Phase = iota // Accepting moves
	PhaseWin               // Every box is on a goal; moves are ignored
	PhaseQuit              // Player asked to leave; terminal
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlay:
		return "Play"
	case PhaseWin:
		return "Win"
	case PhaseQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase       Phase
	Boxes       int // Total boxes on the map
	BoxesOnGoal int // Boxes currently resting on goal tiles
}

// Won reports whether the session reached the win phase.
func (s GameState) Won() bool {
	return s.Phase == PhaseWin
}

// StepResult is returned by Game.Step() after each input is applied.
type StepResult struct {
	State GameState
	Moved bool // Whether the player position changed this step
}
