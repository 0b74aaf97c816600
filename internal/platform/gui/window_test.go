package gui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
)

func TestFrameOrdersReleaseBeforePress(t *testing.T) {
	btn := RestartButton(400, 600)

	frame := Frame(InputState{LeftReleased: true, RightPressed: true}, btn)
	assert.Equal(t, []core.Action{core.ActionRelease, core.ActionRight}, frame.Events())

	frame = Frame(InputState{RightReleased: true}, btn)
	assert.Equal(t, []core.Action{core.ActionRelease}, frame.Events())

	frame = Frame(InputState{}, btn)
	assert.True(t, frame.Empty())
}

func TestFrameRestartButton(t *testing.T) {
	btn := RestartButton(400, 600)

	tests := []struct {
		name    string
		in      InputState
		restart bool
	}{
		{"click inside", InputState{Click: true, MouseX: btn.Min.X + 1, MouseY: btn.Min.Y + 1}, true},
		{"click outside", InputState{Click: true, MouseX: 5, MouseY: 5}, false},
		{"hover without click", InputState{MouseX: btn.Min.X + 1, MouseY: btn.Min.Y + 1}, false},
		{"restart key", InputState{Restart: true}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.restart, Frame(tc.in, btn).Has(core.ActionRestart))
		})
	}
}

func TestRestartButtonCentered(t *testing.T) {
	btn := RestartButton(400, 600)
	assert.Equal(t, 200, (btn.Min.X+btn.Max.X)/2)
	assert.Greater(t, btn.Min.Y, 300)
	assert.Less(t, btn.Max.Y, 600)
}

func TestRGBA(t *testing.T) {
	c := rgba(core.ColorPlayer)
	assert.Equal(t, uint8(0x10), c.R)
	assert.Equal(t, uint8(0xB9), c.G)
	assert.Equal(t, uint8(0x81), c.B)
	assert.Equal(t, uint8(0xFF), c.A)
}

func newTestWindow(t *testing.T) (*Window, *jumper.Game) {
	t.Helper()
	g := jumper.New(config.DefaultJumperConfig())
	w := NewWindow(g, core.RuntimeConfig{ScreenW: 400, ScreenH: 600, TickRate: 60, Seed: 3}, Options{})
	return w, g
}

func TestWindowLayout(t *testing.T) {
	w, _ := newTestWindow(t)
	width, height := w.Layout(1920, 1080)
	assert.Equal(t, 400, width)
	assert.Equal(t, 600, height)
}

func TestWindowKeyEdges(t *testing.T) {
	w, g := newTestWindow(t)

	require.NoError(t, w.step(InputState{LeftPressed: true}))
	assert.Equal(t, -5.0, g.Snapshot().Vel.X)

	require.NoError(t, w.step(InputState{}))
	assert.Equal(t, -5.0, g.Snapshot().Vel.X, "held key keeps moving")

	require.NoError(t, w.step(InputState{LeftReleased: true}))
	assert.Equal(t, 0.0, g.Snapshot().Vel.X)
}

func TestWindowQuit(t *testing.T) {
	w, _ := newTestWindow(t)
	assert.ErrorIs(t, w.step(InputState{Quit: true}), ebiten.Termination)
}

func TestWindowRestartByClick(t *testing.T) {
	w, g := newTestWindow(t)

	for i := 0; i < 20000 && !w.State().GameOver; i++ {
		require.NoError(t, w.step(InputState{}))
	}
	require.True(t, w.State().GameOver)

	btn := RestartButton(400, 600)
	require.NoError(t, w.step(InputState{Click: true, MouseX: btn.Min.X + 10, MouseY: btn.Min.Y + 10}))
	assert.False(t, w.State().GameOver)
	assert.Equal(t, 2, w.runs)
	assert.Equal(t, jumper.Vec{X: 200, Y: 300}, g.Snapshot().Pos)
}
