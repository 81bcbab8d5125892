// Package levels builds Sokoban levels from rows of the conventional
// glyphs. This package depends on core but core does not depend on levels.
package levels

import (
	"fmt"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/zyedidia/generic/mapset"
)

// Validation error codes reported by Parse.
const (
	CodeEmptyLevel      = "EMPTY_LEVEL"
	CodeBadGlyph        = "BAD_GLYPH"
	CodeNoPlayer        = "NO_PLAYER"
	CodeMultiplePlayers = "MULTIPLE_PLAYERS"
	CodeOpenBorder      = "OPEN_BORDER"
	CodeUnreachableBox  = "UNREACHABLE_BOX"
	CodeUnreachableGoal = "UNREACHABLE_GOAL"
	CodeTooFewGoals     = "TOO_FEW_GOALS"
)

// Level is a complete level definition.
type Level struct {
	ID     string
	Name   string
	Width  int
	Height int
	Tiles  []core.Tile // Row-major, len = Width*Height
	Boxes  []core.Coord
	Player core.Coord
}

// NewWorld creates a fresh world for this level.
// Each call returns an independent world.
func (l Level) NewWorld() (*core.World, error) {
	m, err := core.NewMap(l.Width, l.Height, l.Tiles)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	if goals := len(m.Goals()); goals < len(l.Boxes) {
		return nil, fmt.Errorf("level %s: %w", l.ID,
			invalid(CodeTooFewGoals, "%d boxes but only %d goals", len(l.Boxes), goals))
	}
	w, err := core.NewWorld(m, l.Boxes, l.Player)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return w, nil
}

// Parse reads a level from rows of glyphs:
//
//	#  wall
//	.  goal
//	$  box
//	*  box on goal
//	@  player
//	+  player on goal
//	   floor (also - and _)
//
// Rows shorter than the widest row are padded with floor. Floor the player
// cannot reach without crossing a wall becomes Empty; a box or goal out of
// reach is an error.
func Parse(id, name string, rows []string) (Level, error) {
	grid := make([][]rune, len(rows))
	width := 0
	for y, row := range rows {
		grid[y] = []rune(row)
		width = max(width, len(grid[y]))
	}
	height := len(rows)
	if width == 0 || height == 0 {
		return Level{}, invalid(CodeEmptyLevel, "level %s has no cells", id)
	}

	lvl := Level{
		ID:     id,
		Name:   name,
		Width:  width,
		Height: height,
		Tiles:  make([]core.Tile, width*height),
	}

	players := 0
	for y := range height {
		for x := range width {
			ch := ' '
			if x < len(grid[y]) {
				ch = grid[y][x]
			}

			c := core.C(x, y)
			tile := core.Floor
			switch ch {
			case '#':
				tile = core.Wall
			case ' ', '-', '_':
			case '.':
				tile = core.Goal
			case '$':
				lvl.Boxes = append(lvl.Boxes, c)
			case '*':
				tile = core.Goal
				lvl.Boxes = append(lvl.Boxes, c)
			case '@':
				lvl.Player = c
				players++
			case '+':
				tile = core.Goal
				lvl.Player = c
				players++
			default:
				return Level{}, invalid(CodeBadGlyph, "unknown glyph %q at %v", ch, c)
			}
			lvl.Tiles[y*width+x] = tile
		}
	}

	switch {
	case players == 0:
		return Level{}, invalid(CodeNoPlayer, "level %s has no player", id)
	case players > 1:
		return Level{}, invalid(CodeMultiplePlayers, "level %s has %d players", id, players)
	}

	if err := lvl.markOutside(); err != nil {
		return Level{}, err
	}
	if _, err := lvl.NewWorld(); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

// MustParse is like Parse but panics on error.
// Used for levels compiled into the binary.
func MustParse(id, name string, rows []string) Level {
	lvl, err := Parse(id, name, rows)
	if err != nil {
		panic(fmt.Sprintf("levels: %s: %v", id, err))
	}
	return lvl
}

// markOutside flood-fills from the player through non-wall cells. Unreached
// floor becomes Empty. A reached cell on the edge means the level is not
// enclosed, and an unreached box or goal makes it unwinnable.
func (l *Level) markOutside() error {
	reached := mapset.New[core.Coord]()
	reached.Put(l.Player)
	stack := []core.Coord{l.Player}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if c.X == 0 || c.Y == 0 || c.X == l.Width-1 || c.Y == l.Height-1 {
			return invalid(CodeOpenBorder, "level %s is open at %v", l.ID, c)
		}

		for _, d := range core.Dirs {
			n := c.Step(d)
			if reached.Has(n) || l.Tiles[n.Y*l.Width+n.X] == core.Wall {
				continue
			}
			reached.Put(n)
			stack = append(stack, n)
		}
	}

	for _, b := range l.Boxes {
		if !reached.Has(b) {
			return invalid(CodeUnreachableBox, "level %s has a box at %v the player cannot reach", l.ID, b)
		}
	}
	for i, t := range l.Tiles {
		c := core.C(i%l.Width, i/l.Width)
		if t == core.Wall || reached.Has(c) {
			continue
		}
		if t == core.Goal {
			return invalid(CodeUnreachableGoal, "level %s has a goal at %v the player cannot reach", l.ID, c)
		}
		l.Tiles[i] = core.Empty
	}
	return nil
}

func invalid(code, format string, args ...any) core.ValidationError {
	return core.ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}
