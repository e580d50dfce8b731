package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nlisovsky/gridsnake/internal/config"
	"github.com/nlisovsky/gridsnake/internal/game"
)

func newTestModel() Model {
	return NewModel(Options{
		Width:  80,
		Height: 40,
		Seed:   1234,
		Config: config.Default(),
	})
}

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelStartsPausedWithoutTimer(t *testing.T) {
	m := newTestModel()

	if !m.state.Paused {
		t.Error("game should begin paused")
	}
	if cmd := m.Init(); cmd != nil {
		t.Error("no tick should be armed while paused")
	}
}

func TestSpaceStartsTicking(t *testing.T) {
	m := newTestModel()

	m, cmd := update(m, keyMsg(" "))
	if m.state.Paused {
		t.Error("space should unpause")
	}
	if cmd == nil {
		t.Error("unpausing must arm the tick timer")
	}
}

func TestStaleTickDropped(t *testing.T) {
	m := newTestModel()
	m, _ = update(m, keyMsg(" ")) // unpause, gen bumped

	before := m.state
	m, cmd := update(m, tickMsg{gen: m.gen - 1})

	if cmd != nil {
		t.Error("a stale tick must not re-arm the timer")
	}
	if m.state.Head() != before.Head() {
		t.Error("a stale tick must not advance the game")
	}
}

func TestCurrentTickAdvances(t *testing.T) {
	m := newTestModel()
	m, _ = update(m, keyMsg(" "))

	before := m.state.Head()
	m, cmd := update(m, tickMsg{gen: m.gen})

	want := before.Step(game.DirRight)
	if m.state.Head() != want {
		t.Errorf("head = %+v, expected %+v", m.state.Head(), want)
	}
	if cmd == nil {
		t.Error("an applied tick must arm the next one")
	}
}

func TestEveryEventInvalidatesPendingTimer(t *testing.T) {
	m := newTestModel()
	m, _ = update(m, keyMsg(" "))

	gen := m.gen
	m, _ = update(m, keyMsg("down")) // direction intent

	if m.gen == gen {
		t.Error("a direction intent must supersede the pending timer generation")
	}
	if m.state.Direction != game.DirDown {
		t.Errorf("direction = %v, expected down", m.state.Direction)
	}
}

func TestDigitKeysSetLevel(t *testing.T) {
	m := newTestModel()

	m, _ = update(m, keyMsg("7"))
	if m.state.Level != 7 {
		t.Errorf("level = %d, expected 7", m.state.Level)
	}

	// 0 stands for level 10
	m, _ = update(m, keyMsg("0"))
	if m.state.Level != 10 {
		t.Errorf("level = %d, expected 10", m.state.Level)
	}
}

func TestUnboundKeysIgnored(t *testing.T) {
	m := newTestModel()
	before := m.state

	m, cmd := update(m, keyMsg("x"))
	if cmd != nil {
		t.Error("an unbound key should not schedule anything")
	}
	if m.state.Direction != before.Direction || m.state.Paused != before.Paused {
		t.Error("an unbound key must not change the state")
	}
}

func TestViewRendersHUDAndOverlay(t *testing.T) {
	m := newTestModel()

	out := m.View()
	if out == "" {
		t.Fatal("view should not be empty")
	}
	if !contains(out, "gridsnake") {
		t.Error("HUD should name the game")
	}
	if !contains(out, "Paused") {
		t.Error("the pre-game overlay should be visible")
	}
}

func TestDirectionKeysWhileDeadAreQueued(t *testing.T) {
	m := newTestModel()
	m.state.Dead = true
	m.state.Paused = true

	m, cmd := update(m, keyMsg("up"))
	if m.state.Direction != game.DirUp {
		t.Error("direction intents are accepted even while dead")
	}
	if cmd != nil {
		t.Error("no timer while dead")
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
