package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// KeyMap defines the key bindings for a game screen.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Stop       key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Stop, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Stop},
		{k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Stop: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "stop"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r/enter", "play again"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Keys without a binding map to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Stop):
		return core.ActionRelease
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// holdTracker turns terminal key presses into down/up edges.
// Terminals only report presses (and auto-repeats), so a held key is
// considered released after releaseAfter ticks without a repeat.
type holdTracker struct {
	held         core.Action
	idle         int
	releaseAfter int
}

func newHoldTracker(releaseAfter int) *holdTracker {
	if releaseAfter < 1 {
		releaseAfter = 1
	}
	return &holdTracker{releaseAfter: releaseAfter}
}

// press records a horizontal key press. It returns true when this is a new
// down edge; auto-repeats of the held key only refresh the timer.
func (h *holdTracker) press(a core.Action) bool {
	h.idle = 0
	if h.held == a {
		return false
	}
	h.held = a
	return true
}

// release drops the held key. It returns true if a key was held.
func (h *holdTracker) release() bool {
	if h.held == core.ActionNone {
		return false
	}
	h.held = core.ActionNone
	h.idle = 0
	return true
}

// tick ages the held key and returns true when it times out.
func (h *holdTracker) tick() bool {
	if h.held == core.ActionNone {
		return false
	}
	h.idle++
	if h.idle >= h.releaseAfter {
		return h.release()
	}
	return false
}
