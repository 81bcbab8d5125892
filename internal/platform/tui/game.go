// Package tui provides the Bubble Tea integration for the game: the local
// terminal loop, key bindings, the solve records table and the SSH server.
package tui

import (
	"time"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// Game is the contract the terminal front-end needs from a game.
type Game interface {
	ID() string
	Title() string
	LevelID() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// GameFactory creates a fresh game for a new session.
type GameFactory func() (Game, error)

// SolveRecorder stores completed levels.
type SolveRecorder interface {
	SaveSolve(levelID, player string, d time.Duration) (int64, error)
}
