package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate their own key events (terminal keys, window key edges)
// into actions so the game never sees raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left key went down
	ActionRight          // Right key went down
	ActionRelease        // A horizontal key went up
	ActionRestart        // R/Enter/click - start a new run after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRelease:
		return "Release"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one simulation tick.
// Membership is answered by Has; Events preserves arrival order, which matters
// for horizontal keys where the last event wins.
type InputFrame struct {
	Actions map[Action]bool
	events  []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set records an action for this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.events = append(f.events, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Events returns the actions in the order they were set.
func (f InputFrame) Events() []Action {
	return f.events
}

// Empty reports whether no action was set.
func (f InputFrame) Empty() bool {
	return len(f.events) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.events = f.events[:0]
}

// String lists the frame's events in order, e.g. "Left+Release".
func (f InputFrame) String() string {
	names := make([]string, len(f.events))
	for i, a := range f.events {
		names[i] = a.String()
	}
	return strings.Join(names, "+")
}
