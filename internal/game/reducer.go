package game

import "strconv"

// Update is the central reducer: it dispatches one event to the matching
// transition function and returns the successor state. It is total -
// invalid or unrecognized input leaves the state unchanged, nothing here
// can fail.
func Update(s State, ev Event, rng Sampler) State {
	switch ev := ev.(type) {
	case Tick:
		return Advance(s, rng)
	case Turn:
		return ApplyDirection(s, ev.Direction)
	case PauseToggle:
		return TogglePause(s)
	case SetLevel:
		return ApplyLevel(s, ev.Raw)
	default:
		return s
	}
}

// ApplyDirection sets the movement direction. Reversing into the segment
// directly behind the head would be suicide, so the exact opposite of the
// current direction is dropped while the snake is longer than one cell.
// Direction intents are accepted regardless of pause state; only Tick is
// gated by pause.
func ApplyDirection(s State, d Direction) State {
	if len(s.Snake) > 1 && d == s.Direction.Opposite() {
		return s
	}
	s.Direction = d
	return s
}

// TogglePause flips the paused flag. When the game is over it instead
// resets to the initial configuration and starts play immediately, so the
// same key both pauses and restarts.
func TogglePause(s State) State {
	if s.Dead {
		next := New(s.GridSize, s.StartLevel)
		next.Paused = false
		return next
	}
	s.Paused = !s.Paused
	return s
}

// ApplyLevel parses the level selector's raw value and applies it. Parse
// failures are a silent no-op. The parsed value is applied as-is, without
// range checking; the scheduler bounds its own output instead.
func ApplyLevel(s State, raw string) State {
	level, err := strconv.Atoi(raw)
	if err != nil {
		return s
	}
	s.Level = level
	return s
}

// Advance applies one tick. The order matters:
//
//  1. Death check against the pre-move head and current direction: the game
//     ends one tick before the head would leave the grid, or when the body
//     overlaps itself after the previous tick's move. Death pauses the game
//     and leaves the body untouched.
//  2. Move: prepend the new head, drop the tail.
//  3. Eat: if the moved head landed on the apple, re-append the dropped
//     tail (net growth of one), bump the score and clear the apple.
//  4. Replenish: with no apple on the board, sample one uniformly from the
//     unoccupied cells. A fully occupied grid leaves the apple unset.
func Advance(s State, rng Sampler) State {
	if s.Paused || s.Dead {
		return s
	}

	if s.atEdgeToward() || s.selfOverlap() {
		s.Dead = true
		s.Paused = true
		return s
	}

	oldTail := s.Snake[len(s.Snake)-1]
	newHead := s.Head().Step(s.Direction)

	moved := make([]Cell, len(s.Snake), len(s.Snake)+1)
	moved[0] = newHead
	copy(moved[1:], s.Snake[:len(s.Snake)-1])

	if s.HasApple && newHead == s.Apple {
		moved = append(moved, oldTail)
		s.Score++
		s.HasApple = false
	}
	s.Snake = moved

	if !s.HasApple {
		if apple, ok := rng.Pick(s.freeCells()); ok {
			s.Apple = apple
			s.HasApple = true
		}
	}
	return s
}

// freeCells returns every grid cell not occupied by the snake. Each call
// recomputes the set from scratch; nothing is memoized across ticks.
func (s State) freeCells() []Cell {
	occupied := make(map[Cell]struct{}, len(s.Snake))
	for _, seg := range s.Snake {
		occupied[seg] = struct{}{}
	}

	free := make([]Cell, 0, s.GridSize*s.GridSize-len(occupied))
	for y := 1; y <= s.GridSize; y++ {
		for x := 1; x <= s.GridSize; x++ {
			c := Cell{X: x, Y: y}
			if _, ok := occupied[c]; !ok {
				free = append(free, c)
			}
		}
	}
	return free
}
