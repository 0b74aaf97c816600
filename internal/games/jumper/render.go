package jumper

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar       = '█'
	PlayerHeadChar   = '▀'
	PlatformChar     = '▬'
	PlatformCapLeft  = '('
	PlatformCapRight = ')'
	BackgroundChar   = '·'
)

// cellAspect is how many columns match one row visually.
const cellAspect = 2.0

// RestartHint is shown on the game-over panel.
const RestartHint = "[ Play Again ]  R / Enter"

// viewport maps field units to screen cells inside a bordered area.
type viewport struct {
	inner  core.Rect
	sx, sy float64
}

// newViewport fits the field into dst below a one-row HUD, keeping the field's
// aspect ratio for 2:1 terminal cells.
func newViewport(dst *core.Screen, fieldW, fieldH float64) viewport {
	rows := dst.Height() - 3 // HUD + top and bottom border
	if rows < 1 {
		rows = 1
	}
	cols := int(math.Round(float64(rows) * fieldW / fieldH * cellAspect))
	if maxCols := dst.Width() - 2; cols > maxCols {
		cols = core.Max(maxCols, 1)
	}
	x := (dst.Width() - cols - 2) / 2
	return viewport{
		inner: core.NewRect(x+1, 2, cols, rows),
		sx:    float64(cols) / fieldW,
		sy:    float64(rows) / fieldH,
	}
}

// cells converts a field box into screen cells. Anything visible is at least
// one cell wide and tall.
func (v viewport) cells(b Box) core.Rect {
	x := v.inner.X + int(math.Floor(b.X*v.sx))
	y := v.inner.Y + int(math.Floor(b.Y*v.sy))
	w := core.Max(int(math.Round(b.W*v.sx)), 1)
	h := core.Max(int(math.Round(b.H*v.sy)), 1)
	return core.NewRect(x, y, w, h)
}

// set draws a rune only when it lies inside the field.
func (v viewport) set(dst *core.Screen, x, y int, r rune, c core.Color) {
	if v.inner.Contains(x, y) {
		dst.SetColored(x, y, r, c)
	}
}

// RenderView draws a projected frame: border, platforms, player, HUD and, once
// the run is over, the game-over panel.
func RenderView(dst *core.Screen, v View) {
	dst.Clear()
	vp := newViewport(dst, v.FieldW, v.FieldH)

	border := core.NewRect(vp.inner.X-1, vp.inner.Y-1, vp.inner.W+2, vp.inner.H+2)
	dst.DrawBox(border, core.ColorDim)
	for y := vp.inner.Y; y < vp.inner.Bottom(); y += 4 {
		for x := vp.inner.X + (y/4)%3; x < vp.inner.Right(); x += 6 {
			dst.SetColored(x, y, BackgroundChar, core.ColorDim)
		}
	}

	for _, pl := range v.Platforms {
		r := vp.cells(pl)
		for x := r.X; x < r.Right(); x++ {
			ch := PlatformChar
			switch {
			case r.W > 2 && x == r.X:
				ch = PlatformCapLeft
			case r.W > 2 && x == r.Right()-1:
				ch = PlatformCapRight
			}
			vp.set(dst, x, r.Y, ch, core.ColorPlatform)
		}
	}

	pr := vp.cells(v.Player)
	for y := pr.Y; y < pr.Bottom(); y++ {
		for x := pr.X; x < pr.Right(); x++ {
			ch := PlayerChar
			if y == pr.Y && pr.H > 1 {
				ch = PlayerHeadChar
			}
			vp.set(dst, x, y, ch, core.ColorPlayer)
		}
	}

	score := fmt.Sprintf(" Score: %d ", v.Score)
	dst.DrawText(border.Right()-len(score), 0, score, core.ColorHUD)
	dst.DrawText(border.X, 0, fmt.Sprintf(" Climb: %dm ", v.Climbed/10), core.ColorDim)

	if v.GameOver {
		drawGameOver(dst, v.Score)
	}
}

// drawGameOver draws the final score panel in the center of the screen.
func drawGameOver(dst *core.Screen, score int) {
	title := "GAME OVER!"
	subtitle := fmt.Sprintf("Score: %d", score)

	boxW := core.Max(len(title), core.Max(len(subtitle), len(RestartHint))) + 6
	boxH := 7
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorOverlay)
	dst.DrawTextCentered(box.Y+1, title, core.ColorOverlay)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorHUD)
	dst.DrawTextCentered(box.Y+5, RestartHint, core.ColorButton)
}
