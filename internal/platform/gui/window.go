// Package gui runs the jumper in a desktop window with ebiten. Unlike the
// terminal, ebiten reports real key-up edges, so no hold tracking is needed.
package gui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/logging"
)

// Debug font cell size of ebitenutil.DebugPrintAt.
const (
	glyphW = 6
	glyphH = 16
)

const buttonLabel = "Play Again"

var colorBG = color.RGBA{17, 24, 39, 255}

// Options configures a Window.
type Options struct {
	// Scale multiplies the window size. Values below 1 mean 1.
	Scale int
	// Logger receives run events. Nil discards them.
	Logger *log.Logger
}

// Window implements ebiten.Game for one jumper game.
type Window struct {
	game    *jumper.Game
	config  core.RuntimeConfig
	logger  *log.Logger
	screenW int
	screenH int
	state   core.GameState
	runs    int
}

// NewWindow creates a window around game. The game is reset immediately.
func NewWindow(game *jumper.Game, cfg core.RuntimeConfig, opts Options) *Window {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	game.Reset(cfg)
	p := game.Params()
	logger.Info("run started", "seed", cfg.Seed, "tick_rate", cfg.TickRate)

	return &Window{
		game:    game,
		config:  cfg,
		logger:  logger,
		screenW: int(p.FieldW),
		screenH: int(p.FieldH),
		state:   game.State(),
		runs:    1,
	}
}

// Update advances the game by one tick.
// Implements ebiten.Game interface.
func (w *Window) Update() error {
	return w.step(ReadInput())
}

func (w *Window) step(in InputState) error {
	frame := Frame(in, RestartButton(w.screenW, w.screenH))
	if frame.Has(core.ActionQuit) {
		w.logger.Info("quit", "score", w.state.Score, "runs", w.runs)
		return ebiten.Termination
	}

	if !frame.Empty() {
		w.logger.Debug("input", "actions", frame.String())
	}

	wasOver := w.state.GameOver
	result := w.game.Step(frame)
	w.state = result.State

	switch {
	case !wasOver && w.state.GameOver:
		w.logger.Info("run over", "score", w.state.Score, "run", w.runs)
	case wasOver && !w.state.GameOver:
		w.runs++
		w.logger.Info("run restarted", "run", w.runs)
	case result.Landed:
		w.logger.Debug("landed", "score", w.state.Score)
	}
	return nil
}

// Draw renders the current view.
// Implements ebiten.Game interface.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	v := w.game.View()

	for _, pl := range v.Platforms {
		drawPill(screen, pl, rgba(core.ColorPlatform))
	}

	pb := v.Player
	ebitenutil.DrawRect(screen, pb.X, pb.Y, pb.W, pb.H, rgba(core.ColorPlayer))

	score := fmt.Sprintf("Score: %d", v.Score)
	ebitenutil.DebugPrintAt(screen, score, w.screenW-len(score)*glyphW-10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Climb: %dm", v.Climbed), 10, 10)

	if v.GameOver {
		w.drawGameOver(screen, v.Score)
	}
}

func (w *Window) drawGameOver(screen *ebiten.Image, score int) {
	ebitenutil.DrawRect(screen, 0, 0, float64(w.screenW), float64(w.screenH), color.RGBA{0, 0, 0, 160})

	lines := []string{"GAME OVER!", fmt.Sprintf("Score: %d", score)}
	y := w.screenH/2 - 60
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, (w.screenW-len(line)*glyphW)/2, y)
		y += glyphH + 8
	}

	btn := RestartButton(w.screenW, w.screenH)
	ebitenutil.DrawRect(screen,
		float64(btn.Min.X), float64(btn.Min.Y),
		float64(btn.Dx()), float64(btn.Dy()),
		rgba(core.ColorButton))
	ebitenutil.DebugPrintAt(screen, buttonLabel,
		btn.Min.X+(btn.Dx()-len(buttonLabel)*glyphW)/2,
		btn.Min.Y+(btn.Dy()-glyphH)/2)
}

// Layout returns the field size; ebiten scales it to the window.
// Implements ebiten.Game interface.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.screenW, w.screenH
}

// State returns the last game state seen by the window.
func (w *Window) State() core.GameState {
	return w.state
}

// RestartButton is the clickable "Play Again" area of the game-over panel.
func RestartButton(screenW, screenH int) image.Rectangle {
	const bw, bh = 120, 32
	x := (screenW - bw) / 2
	y := screenH/2 + 8
	return image.Rect(x, y, x+bw, y+bh)
}

// drawPill draws a platform with its corners cut, as close to a rounded
// pill as plain rectangles get.
func drawPill(screen *ebiten.Image, b jumper.Box, c color.Color) {
	const cut = 3
	ebitenutil.DrawRect(screen, b.X+cut, b.Y, b.W-2*cut, b.H, c)
	ebitenutil.DrawRect(screen, b.X, b.Y+cut, b.W, b.H-2*cut, c)
}

func rgba(c core.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// Run opens the window and blocks until it is closed.
func Run(game *jumper.Game, cfg core.RuntimeConfig, opts Options) error {
	w := NewWindow(game, cfg, opts)

	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}
	tps := cfg.TickRate
	if tps <= 0 {
		tps = 60
	}

	ebiten.SetWindowSize(w.screenW*scale, w.screenH*scale)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
