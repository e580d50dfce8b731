// Package game contains the pure snake state machine. It has no external
// dependencies (especially no Bubble Tea): every transition is a total
// function from (State, Event) to State, which keeps the logic testable
// without a running event loop.
package game

// Cell is one grid coordinate. Coordinates are 1-based: 1 <= X,Y <= grid size.
type Cell struct {
	X, Y int
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the reverse of a direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// Step returns the cell one unit away from c in direction d.
// Up decreases Y (screen orientation, row 1 at the top).
func (c Cell) Step(d Direction) Cell {
	switch d {
	case DirUp:
		return Cell{X: c.X, Y: c.Y - 1}
	case DirDown:
		return Cell{X: c.X, Y: c.Y + 1}
	case DirLeft:
		return Cell{X: c.X - 1, Y: c.Y}
	default:
		return Cell{X: c.X + 1, Y: c.Y}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
