package gui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// InputState holds this frame's key and mouse edges.
type InputState struct {
	LeftPressed   bool
	LeftReleased  bool
	RightPressed  bool
	RightReleased bool
	Restart       bool
	Quit          bool
	Click         bool
	MouseX        int
	MouseY        int
}

var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	restartKeys = []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter}
)

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func anyJustReleased(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}

// ReadInput reads the current input edges from ebiten.
func ReadInput() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		LeftPressed:   anyJustPressed(leftKeys),
		LeftReleased:  anyJustReleased(leftKeys),
		RightPressed:  anyJustPressed(rightKeys),
		RightReleased: anyJustReleased(rightKeys),
		Restart:       anyJustPressed(restartKeys),
		Quit:          inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Click:         inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		MouseX:        mx,
		MouseY:        my,
	}
}

// Frame converts input edges into the actions for one tick. Releases come
// before presses, so a key pressed in the same frame another is released
// keeps the player moving.
func Frame(in InputState, button image.Rectangle) core.InputFrame {
	frame := core.NewInputFrame()

	if in.LeftReleased || in.RightReleased {
		frame.Set(core.ActionRelease)
	}
	if in.LeftPressed {
		frame.Set(core.ActionLeft)
	}
	if in.RightPressed {
		frame.Set(core.ActionRight)
	}

	if in.Restart || (in.Click && image.Pt(in.MouseX, in.MouseY).In(button)) {
		frame.Set(core.ActionRestart)
	}
	if in.Quit {
		frame.Set(core.ActionQuit)
	}
	return frame
}
