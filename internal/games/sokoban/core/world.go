package core

import (
	"iter"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// World is the mutable play state: one map, a set of boxes and the player.
//
// All mutation goes through TryMovePlayer, so the invariants checked by
// NewWorld hold for the lifetime of the value: boxes are unique, nothing
// stands on a wall or outside the map, and the player never shares a cell
// with a box.
type World struct {
	m      *Map
	boxes  mapset.Set[Coord]
	player Coord
}

// NewWorld places boxes and the player on a map.
// The map is owned by the world afterwards and must not be shared.
func NewWorld(m *Map, boxes []Coord, player Coord) (*World, error) {
	if m == nil {
		return nil, invalid(CodeNilMap, "world needs a map")
	}

	if !m.InBounds(player) {
		return nil, invalid(CodePlayerOutOfBounds, "player %v outside %dx%d map", player, m.width, m.height)
	}
	if m.TileAt(player).Blocks() {
		return nil, invalid(CodePlayerOnWall, "player %v is on a wall", player)
	}

	set := mapset.New[Coord]()
	for _, b := range boxes {
		if !m.InBounds(b) {
			return nil, invalid(CodeBoxOutOfBounds, "box %v outside %dx%d map", b, m.width, m.height)
		}
		if m.TileAt(b).Blocks() {
			return nil, invalid(CodeBoxOnWall, "box %v is on a wall", b)
		}
		if set.Has(b) {
			return nil, invalid(CodeDuplicateBox, "two boxes at %v", b)
		}
		set.Put(b)
	}
	if set.Has(player) {
		return nil, invalid(CodePlayerOnBox, "player %v shares a cell with a box", player)
	}

	return &World{m: m, boxes: set, player: player}, nil
}

// Width returns the map width.
func (w *World) Width() int { return w.m.width }

// Height returns the map height.
func (w *World) Height() int { return w.m.height }

// Tile returns the map tile at (x, y). Panics when out of range.
func (w *World) Tile(x, y int) Tile { return w.m.Tile(x, y) }

// TileAt returns the map tile at c. Panics when out of range.
func (w *World) TileAt(c Coord) Tile { return w.m.TileAt(c) }

// All yields every map cell in row-major order.
func (w *World) All() iter.Seq2[Coord, Tile] { return w.m.All() }

// Player returns the player position.
func (w *World) Player() Coord { return w.player }

// HasBox reports whether a box occupies c.
func (w *World) HasBox(c Coord) bool { return w.boxes.Has(c) }

// BoxCount returns the number of boxes.
func (w *World) BoxCount() int { return w.boxes.Size() }

// Boxes returns the box positions in row-major order.
// The slice is a copy; changing it does not affect the world.
func (w *World) Boxes() []Coord {
	out := make([]Coord, 0, w.boxes.Size())
	w.boxes.Each(func(c Coord) {
		out = append(out, c)
	})
	slices.SortFunc(out, func(a, b Coord) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return out
}

// BoxesOnGoal counts boxes resting on goal tiles.
func (w *World) BoxesOnGoal() int {
	n := 0
	w.boxes.Each(func(c Coord) {
		if w.m.TileAt(c) == Goal {
			n++
		}
	})
	return n
}

// TryMovePlayer moves the player one cell in direction d, pushing a box if
// one is in the way. Only the adjacent box can move and only when the cell
// behind it is neither a wall nor another box. Returns false, changing
// nothing, when the move is blocked.
func (w *World) TryMovePlayer(d Dir) bool {
	target := w.player.Step(d)
	if w.m.TileAt(target).Blocks() {
		return false
	}

	if !w.boxes.Has(target) {
		w.player = target
		return true
	}

	push := target.Step(d)
	if w.m.TileAt(push).Blocks() || w.boxes.Has(push) {
		return false
	}

	w.boxes.Remove(target)
	w.boxes.Put(push)
	w.player = target
	return true
}

// IsWon reports whether every box is on a goal. A world without boxes is won.
func (w *World) IsWon() bool {
	return w.BoxesOnGoal() == w.boxes.Size()
}
