package sokoban

import (
	platformcore "github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// Snapshot is a copy of everything a front-end needs to draw the game.
// It shares no memory with the running world.
type Snapshot struct {
	LevelID     string
	Width       int
	Height      int
	Tiles       []core.Tile // Row-major, len = Width*Height
	Boxes       []core.Coord
	Player      core.Coord
	Phase       platformcore.Phase
	BoxesOnGoal int
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	s := Snapshot{
		LevelID:     g.level.ID,
		Width:       w.Width(),
		Height:      w.Height(),
		Tiles:       make([]core.Tile, 0, w.Width()*w.Height()),
		Boxes:       w.Boxes(),
		Player:      w.Player(),
		Phase:       g.phase,
		BoxesOnGoal: w.BoxesOnGoal(),
	}
	for _, t := range w.All() {
		s.Tiles = append(s.Tiles, t)
	}
	return s
}

// TileAt returns the tile at c, or Empty outside the map.
func (s Snapshot) TileAt(c core.Coord) core.Tile {
	if c.X < 0 || c.X >= s.Width || c.Y < 0 || c.Y >= s.Height {
		return core.Empty
	}
	return s.Tiles[c.Y*s.Width+c.X]
}

// MoveToward returns the action that steps the player onto c, or
// ActionNone when c is not next to the player.
func (s Snapshot) MoveToward(c core.Coord) platformcore.Action {
	d, err := core.DirFromDelta(c.X-s.Player.X, c.Y-s.Player.Y)
	if err != nil {
		return platformcore.ActionNone
	}
	return dirActions[d]
}

var dirActions = map[core.Dir]platformcore.Action{
	core.Up:    platformcore.ActionUp,
	core.Down:  platformcore.ActionDown,
	core.Left:  platformcore.ActionLeft,
	core.Right: platformcore.ActionRight,
}

// Won reports whether the snapshot was taken in the win phase.
func (s Snapshot) Won() bool {
	return s.Phase == platformcore.PhaseWin
}
