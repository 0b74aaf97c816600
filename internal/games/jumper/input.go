package jumper

import "github.com/vovakirdan/tui-jumper/internal/core"

// Key is a horizontal control key.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
)

// KeyEvent is one edge of a horizontal key.
type KeyEvent struct {
	Key  Key
	Down bool
}

// ApplyKey maps a key edge to horizontal velocity: left down moves left,
// right down moves right, releasing either stops. Unknown keys are ignored.
// Only velocity changes.
func ApplyKey(s State, ev KeyEvent, p Params) State {
	switch ev.Key {
	case KeyLeft:
		if ev.Down {
			s.Vel.X = -p.MoveSpeed
		} else {
			s.Vel.X = 0
		}
	case KeyRight:
		if ev.Down {
			s.Vel.X = p.MoveSpeed
		} else {
			s.Vel.X = 0
		}
	}
	return s
}

// KeyEventFor converts a platform action into a key edge.
// ActionRelease does not say which key went up; either key stops the player.
func KeyEventFor(a core.Action) (KeyEvent, bool) {
	switch a {
	case core.ActionLeft:
		return KeyEvent{Key: KeyLeft, Down: true}, true
	case core.ActionRight:
		return KeyEvent{Key: KeyRight, Down: true}, true
	case core.ActionRelease:
		return KeyEvent{Key: KeyLeft, Down: false}, true
	default:
		return KeyEvent{}, false
	}
}

// ApplyInput applies every horizontal event in the frame in arrival order,
// so the last event wins.
func ApplyInput(s State, in core.InputFrame, p Params) State {
	for _, a := range in.Events() {
		if ev, ok := KeyEventFor(a); ok {
			s = ApplyKey(s, ev, p)
		}
	}
	return s
}
