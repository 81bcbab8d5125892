package core

import (
	"errors"
	"fmt"
)

// ErrInvalidDirection is returned when a movement vector is not one of the
// four unit directions.
var ErrInvalidDirection = errors.New("sokoban: direction must be a unit vector")

// Coord is a cell position. X grows to the right, Y grows downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighbouring coordinate in direction d.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Less orders coordinates row-major (by Y, then X).
func (c Coord) Less(other Coord) bool {
	if c.Y != other.Y {
		return c.Y < other.Y
	}
	return c.X < other.X
}

// Dir is one of the four movement directions.
type Dir uint8

const (
	Up Dir = iota
	Down
	Left
	Right
)

// Dirs lists every direction in a fixed order.
var Dirs = [...]Dir{Up, Down, Left, Right}

// Delta returns the unit vector for the direction.
// Panics on a value outside the four directions.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	panic(fmt.Sprintf("sokoban: invalid direction %d", d))
}

// String returns the lowercase direction name.
func (d Dir) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("dir(%d)", uint8(d))
	}
}

// DirFromDelta converts a movement vector into a direction.
// Diagonal, zero and longer vectors return ErrInvalidDirection.
func DirFromDelta(dx, dy int) (Dir, error) {
	switch {
	case dx == 0 && dy == -1:
		return Up, nil
	case dx == 0 && dy == 1:
		return Down, nil
	case dx == -1 && dy == 0:
		return Left, nil
	case dx == 1 && dy == 0:
		return Right, nil
	}
	return 0, fmt.Errorf("%w: got (%d,%d)", ErrInvalidDirection, dx, dy)
}
