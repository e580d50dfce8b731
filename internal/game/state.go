package game

// Defaults for the initial configuration.
const (
	DefaultGridSize = 30
	DefaultLevel    = 5

	startLength = 3
)

// State is the canonical game state. It is a plain value: transition
// functions copy the snake body before changing it and return a new State,
// so callers can hold on to old states (and tests can compare them) safely.
type State struct {
	Snake     []Cell // head at index 0
	Direction Direction
	Apple     Cell
	HasApple  bool
	Score     int
	Level     int
	GridSize  int
	Dead      bool
	Paused    bool

	// StartLevel is the configured level the game restarts with. Changing
	// the level mid-game does not alter it.
	StartLevel int
}

// New returns the initial pre-game state: a length-3 snake centered on the
// grid heading right, no apple on the board, score 0, paused. The first
// space press starts play.
func New(gridSize, level int) State {
	if gridSize < startLength+2 {
		gridSize = DefaultGridSize
	}
	if level == 0 {
		level = DefaultLevel
	}

	cx := gridSize / 2
	cy := gridSize / 2
	snake := make([]Cell, 0, startLength)
	for i := range startLength {
		snake = append(snake, Cell{X: cx + 1 - i, Y: cy})
	}

	return State{
		Snake:      snake,
		Direction:  DirRight,
		Score:      0,
		Level:      level,
		GridSize:   gridSize,
		Paused:     true,
		StartLevel: level,
	}
}

// Head returns the snake's head cell.
func (s State) Head() Cell {
	return s.Snake[0]
}

// Occupies reports whether any snake segment sits on c.
func (s State) Occupies(c Cell) bool {
	for _, seg := range s.Snake {
		if seg == c {
			return true
		}
	}
	return false
}

// selfOverlap reports whether any two snake segments coincide.
func (s State) selfOverlap() bool {
	seen := make(map[Cell]struct{}, len(s.Snake))
	for _, seg := range s.Snake {
		if _, dup := seen[seg]; dup {
			return true
		}
		seen[seg] = struct{}{}
	}
	return false
}

// atEdgeToward reports whether the head sits on the boundary edge in the
// direction of travel, i.e. the next move would leave the grid.
func (s State) atEdgeToward() bool {
	head := s.Head()
	switch s.Direction {
	case DirUp:
		return head.Y == 1
	case DirDown:
		return head.Y == s.GridSize
	case DirLeft:
		return head.X == 1
	default:
		return head.X == s.GridSize
	}
}
