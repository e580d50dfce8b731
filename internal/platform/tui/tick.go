// Package tui is the side-effecting shell around the pure game core: the
// Bubble Tea event loop, key mapping, timer lifecycle, rendering, and the
// SSH server for remote play.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg advances the game by one step. It carries the timer generation it
// was armed for: the model bumps its generation on every state change, so a
// tick scheduled against an earlier state is recognized as stale and
// dropped instead of firing against a state it was not computed for.
type tickMsg struct {
	gen uint64
}

// tickCmd arms a one-shot timer that delivers a tickMsg after d.
func tickCmd(gen uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}
