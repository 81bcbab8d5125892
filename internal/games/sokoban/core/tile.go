// Package core holds the box-pushing rule engine: the tile map, the world
// state and the move resolver. It has no knowledge of input or rendering.
package core

// Tile is the static terrain kind of one grid cell.
// Tiles never change while a level is being played.
type Tile uint8

const (
	Empty Tile = iota // Outside the playable area
	Floor             // Walkable, not a goal
	Wall              // Impassable
	Goal              // Walkable; every box must end on one
)

// String returns the lowercase name of the tile.
func (t Tile) String() string {
	switch t {
	case Empty:
		return "empty"
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	case Goal:
		return "goal"
	default:
		return "unknown"
	}
}

// Blocks reports whether the tile stops the player and boxes.
func (t Tile) Blocks() bool {
	return t == Wall
}
