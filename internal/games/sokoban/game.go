// Package sokoban provides the box-pushing puzzle game: it drives a
// core.World from platform actions and draws it into a screen buffer.
package sokoban

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

// GameID identifies the game in records and logs.
const GameID = "sokoban"

// Game implements the Sokoban puzzle for one player session.
// A Game is not safe for concurrent use; each session owns its own.
type Game struct {
	level levels.Level
	theme Theme
	world *core.World
	phase platformcore.Phase
}

// New creates a game for the level. The level is checked once here, so
// later resets cannot fail.
func New(level levels.Level, theme Theme) (*Game, error) {
	if _, err := level.NewWorld(); err != nil {
		return nil, fmt.Errorf("sokoban: %w", err)
	}
	g := &Game{level: level, theme: theme}
	g.Reset(platformcore.DefaultConfig())
	return g, nil
}

// NewBuiltin creates a game for the built-in level.
func NewBuiltin(theme Theme) *Game {
	g, err := New(levels.Builtin(), theme)
	if err != nil {
		panic(err)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.level.Name == "" {
		return "Sokoban"
	}
	return "Sokoban: " + g.level.Name
}

// LevelID returns the identifier of the level being played.
func (g *Game) LevelID() string {
	return g.level.ID
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.level
}

// Reset puts the level back in its starting position.
// The screen size is taken from the buffer passed to Render.
func (g *Game) Reset(_ platformcore.RuntimeConfig) {
	w, err := g.level.NewWorld()
	if err != nil {
		panic(fmt.Sprintf("sokoban: level %s became invalid: %v", g.level.ID, err))
	}
	g.world = w
	g.phase = platformcore.PhasePlay
	if w.IsWon() {
		g.phase = platformcore.PhaseWin
	}
}

// Step applies one frame of input. At most one move is made per step.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.phase == platformcore.PhaseQuit {
		return platformcore.StepResult{State: g.State()}
	}
	if in.Has(platformcore.ActionQuit) {
		g.phase = platformcore.PhaseQuit
		return platformcore.StepResult{State: g.State()}
	}
	if g.phase != platformcore.PhasePlay {
		return platformcore.StepResult{State: g.State()}
	}

	dir, ok := dirFromInput(in)
	if !ok {
		return platformcore.StepResult{State: g.State()}
	}

	moved := g.world.TryMovePlayer(dir)
	if moved && g.world.IsWon() {
		g.phase = platformcore.PhaseWin
	}
	return platformcore.StepResult{State: g.State(), Moved: moved}
}

// dirFromInput picks the first direction present, in Up, Down, Left, Right order.
func dirFromInput(in platformcore.InputFrame) (core.Dir, bool) {
	switch {
	case in.Has(platformcore.ActionUp):
		return core.Up, true
	case in.Has(platformcore.ActionDown):
		return core.Down, true
	case in.Has(platformcore.ActionLeft):
		return core.Left, true
	case in.Has(platformcore.ActionRight):
		return core.Right, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Phase:       g.phase,
		Boxes:       g.world.BoxCount(),
		BoxesOnGoal: g.world.BoxesOnGoal(),
	}
}
