package grid

import "fmt"

// Coord is a cell position. X grows to the right, Y grows upward.
type Coord struct {
	X, Y int
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Step returns the coordinate one cell away in direction d.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Adjacent reports whether a and b share an edge.
func Adjacent(a, b Coord) bool {
	_, ok := DirectionTo(a, b)
	return ok
}

// Direction is one of the four compass directions a door can face.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every direction in declaration order.
var Directions = [4]Direction{Up, Right, Down, Left}

// Delta returns the unit offset for d. Up is +y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Right:
		return 1, 0
	case Left:
		return -1, 0
	}
	return 0, 0
}

// CCW returns d turned 90° counter-clockwise.
func (d Direction) CCW() Direction {
	switch d {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	default:
		return Up
	}
}

// Opposite returns the direction facing back toward d's origin.
func (d Direction) Opposite() Direction {
	return d.CCW().CCW()
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// DirectionTo returns the direction of the single step from -> to.
// ok is false when the two coordinates are not 4-adjacent.
func DirectionTo(from, to Coord) (d Direction, ok bool) {
	switch {
	case to.X == from.X+1 && to.Y == from.Y:
		return Right, true
	case to.X == from.X-1 && to.Y == from.Y:
		return Left, true
	case to.X == from.X && to.Y == from.Y+1:
		return Up, true
	case to.X == from.X && to.Y == from.Y-1:
		return Down, true
	}
	return 0, false
}
