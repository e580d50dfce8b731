package game

// Snapshot is the read-only projection of the state handed to the view
// layer. The view never touches State directly.
type Snapshot struct {
	GridSize int
	Cells    []Cell // snake body, head first
	Apple    Cell
	HasApple bool
	Score    int
	Level    int
	Dead     bool

	// ShowOverlay is true whenever the board is at rest (paused or dead).
	// The overlay carries instructional text; the death screen reuses the
	// same overlay with a different title.
	ShowOverlay  bool
	OverlayTitle string
	OverlayHint  string
}

// Snapshot builds the render projection for the current state.
func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		GridSize: s.GridSize,
		Cells:    s.Snake,
		Apple:    s.Apple,
		HasApple: s.HasApple,
		Score:    s.Score,
		Level:    s.Level,
		Dead:     s.Dead,
	}

	switch {
	case s.Dead:
		snap.ShowOverlay = true
		snap.OverlayTitle = "Game over"
		snap.OverlayHint = "space restarts · arrows steer · 1-0 set level"
	case s.Paused:
		snap.ShowOverlay = true
		snap.OverlayTitle = "Paused"
		snap.OverlayHint = "space resumes · arrows steer · 1-0 set level"
	}
	return snap
}
