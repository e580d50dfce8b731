package game

// Event is a single input to the reducer: a timer tick or a user intent.
// Events are applied one at a time, fully, in arrival order; the event loop
// in the platform layer is the only writer.
type Event interface {
	isEvent()
}

// Tick advances the simulation by one step. Produced by the scheduler, never
// by the user. Ignored while paused or dead.
type Tick struct{}

// Turn requests a direction change. Applied immediately, even while paused
// or dead, so a direction can be queued before play (re)starts. A request
// for the exact opposite of the current direction is dropped.
type Turn struct {
	Direction Direction
}

// PauseToggle flips the paused flag, or restarts the game when it is over.
type PauseToggle struct{}

// SetLevel carries the raw value of the level selector. Unparseable input
// is ignored.
type SetLevel struct {
	Raw string
}

func (Tick) isEvent()        {}
func (Turn) isEvent()        {}
func (PauseToggle) isEvent() {}
func (SetLevel) isEvent()    {}
