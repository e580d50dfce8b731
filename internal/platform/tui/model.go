package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nlisovsky/gridsnake/internal/config"
	"github.com/nlisovsky/gridsnake/internal/core"
	"github.com/nlisovsky/gridsnake/internal/game"
	"github.com/nlisovsky/gridsnake/internal/sched"
)

// Options configures a game session.
type Options struct {
	Width  int // initial terminal size; resizes are tracked afterwards
	Height int
	Seed   int64 // 0 means seed from the clock
	Config config.Config
}

// Model is the Bubble Tea model driving one game. It is the single writer
// of the game state: key, resize and tick messages arrive strictly
// serialized through Update, and each one is reduced to completion before
// the next is handled.
type Model struct {
	state    game.State
	rng      *game.RandSampler
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	showHelp bool
	gen      uint64 // current timer generation
	quitting bool
}

// NewModel creates a model for a fresh game.
func NewModel(opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}

	m := Model{
		state:    game.New(opts.Config.Grid.Size, opts.Config.Game.StartLevel),
		rng:      game.NewRandSampler(opts.Seed),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		showHelp: opts.Config.UI.ShowHelp,
	}
	m.screen = core.NewScreen(opts.Width, opts.Height-m.footerHeight())
	return m
}

// Init starts the model. The game begins paused, so no tick is armed yet;
// the first space press schedules one.
func (m Model) Init() tea.Cmd {
	return m.scheduleTick()
}

// Update handles one message at a time, fully, in arrival order.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.screen.Resize(msg.Width, msg.Height-m.footerHeight())
		return m, nil
	case tickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

// handleKey maps a key press to a game event. Keys with no binding are
// ignored.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		return m.apply(game.Turn{Direction: game.DirUp})
	case key.Matches(msg, m.keys.Down):
		return m.apply(game.Turn{Direction: game.DirDown})
	case key.Matches(msg, m.keys.Left):
		return m.apply(game.Turn{Direction: game.DirLeft})
	case key.Matches(msg, m.keys.Right):
		return m.apply(game.Turn{Direction: game.DirRight})
	case key.Matches(msg, m.keys.Pause):
		return m.apply(game.PauseToggle{})
	case key.Matches(msg, m.keys.Level):
		// The digit row is the level selector; it emits its value as a
		// base-10 string, with the 0 key standing for level 10.
		raw := msg.String()
		if raw == "0" {
			raw = "10"
		}
		return m.apply(game.SetLevel{Raw: raw})
	}
	return m, nil
}

// handleTick advances the game, unless the tick belongs to a superseded
// timer generation.
func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		return m, nil
	}
	return m.apply(game.Tick{})
}

// apply reduces one event and re-arms the timer. Every state change bumps
// the generation, invalidating whatever tick was pending, and the interval
// is recomputed from the new state - so eating an apple immediately
// shortens the next wait.
func (m Model) apply(ev game.Event) (tea.Model, tea.Cmd) {
	m.state = game.Update(m.state, ev, m.rng)
	m.gen++
	return m, m.scheduleTick()
}

// scheduleTick arms the next tick, or nothing while the game is at rest.
func (m Model) scheduleTick() tea.Cmd {
	if m.state.Paused || m.state.Dead {
		return nil
	}
	return tickCmd(m.gen, sched.NextInterval(m.state.Score, m.state.Level))
}

// footerHeight returns the rows reserved below the board.
func (m Model) footerHeight() int {
	if m.showHelp {
		return 1
	}
	return 0
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawSnapshot(m.screen, m.state.Snapshot())
	out := RenderScreen(m.screen)
	if m.showHelp {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// Run starts a local terminal session and blocks until it ends.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
