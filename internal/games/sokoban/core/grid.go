package core

import (
	"fmt"
	"iter"
)

// Map is a fixed-size rectangle of tiles.
// Tiles are stored in row-major order: index = y*width + x.
type Map struct {
	width  int
	height int
	tiles  []Tile
}

// NewMap creates a map from a row-major tile slice. The slice is copied.
func NewMap(width, height int, tiles []Tile) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, invalid(CodeBadDimensions, "map must be at least 1x1, got %dx%d", width, height)
	}
	if len(tiles) != width*height {
		return nil, invalid(CodeBadDimensions, "map %dx%d needs %d tiles, got %d",
			width, height, width*height, len(tiles))
	}

	m := &Map{
		width:  width,
		height: height,
		tiles:  make([]Tile, len(tiles)),
	}
	copy(m.tiles, tiles)
	return m, nil
}

// Width returns the number of columns.
func (m *Map) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Map) Height() int {
	return m.height
}

// InBounds returns true if the coordinate is inside the map.
func (m *Map) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < m.width && c.Y >= 0 && c.Y < m.height
}

// Tile returns the tile at (x, y).
// Out-of-range coordinates are a programming error and panic.
func (m *Map) Tile(x, y int) Tile {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		panic(fmt.Sprintf("sokoban: tile (%d,%d) outside %dx%d map", x, y, m.width, m.height))
	}
	return m.tiles[y*m.width+x]
}

// TileAt returns the tile at c. See Tile.
func (m *Map) TileAt(c Coord) Tile {
	return m.Tile(c.X, c.Y)
}

// All yields every cell once with its coordinate, row by row from the top,
// left to right within a row.
func (m *Map) All() iter.Seq2[Coord, Tile] {
	return func(yield func(Coord, Tile) bool) {
		for i, t := range m.tiles {
			if !yield(C(i%m.width, i/m.width), t) {
				return
			}
		}
	}
}

// Goals returns the goal coordinates in row-major order.
func (m *Map) Goals() []Coord {
	var goals []Coord
	for c, t := range m.All() {
		if t == Goal {
			goals = append(goals, c)
		}
	}
	return goals
}
