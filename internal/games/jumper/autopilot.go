package jumper

import (
	"math"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Autopilot steers the player toward the platform it can land on next.
// It emits key edges only when its decision changes, like a player holding
// and releasing the arrow keys.
type Autopilot struct {
	params Params
	held   Key
}

// NewAutopilot creates an autopilot for the given simulation constants.
func NewAutopilot(p Params) *Autopilot {
	return &Autopilot{params: p}
}

// Decide returns the input for the next tick given the current state.
func (a *Autopilot) Decide(s State) core.InputFrame {
	in := core.NewInputFrame()
	if s.GameOver {
		return in
	}

	want := KeyUnknown
	if target, ok := a.Target(s); ok {
		// Aim for the middle of the landing range [X-leeway, X+width].
		aim := target.X + (a.params.PlatformW-a.params.Leeway)/2
		dx := aim - s.Pos.X
		if math.Abs(dx) > a.params.MoveSpeed {
			if dx < 0 {
				want = KeyLeft
			} else {
				want = KeyRight
			}
		}
	}

	if want == a.held {
		return in
	}
	switch want {
	case KeyLeft:
		in.Set(core.ActionLeft)
	case KeyRight:
		in.Set(core.ActionRight)
	default:
		in.Set(core.ActionRelease)
	}
	a.held = want
	return in
}

// Target picks the highest platform the player's feet will still be above at
// the top of the current jump. Returns false if every platform is above that.
func (a *Autopilot) Target(s State) (Platform, bool) {
	feet := s.Pos.Y + a.params.PlayerH
	if s.Vel.Y < 0 && a.params.Gravity > 0 {
		feet -= s.Vel.Y * s.Vel.Y / (2 * a.params.Gravity)
	}

	var best Platform
	found := false
	for _, pl := range s.Platforms {
		if pl.Y < feet {
			continue
		}
		if !found || pl.Y < best.Y {
			best = pl
			found = true
		}
	}
	return best, found
}

// Reset forgets the held key.
func (a *Autopilot) Reset() {
	a.held = KeyUnknown
}
