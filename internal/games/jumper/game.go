package jumper

import (
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "jumper"

// Title is the display name of the game.
const Title = "Endless Jumper"

// Game owns one jumper run: the simulation state, its constants and the RNG
// used to place platforms. It implements registry.Game.
type Game struct {
	params  Params
	state   State
	spawner *RandSpawner
	runtime core.RuntimeConfig
}

// New creates a game from a validated configuration. Call Reset before the
// first Step.
func New(cfg config.JumperConfig) *Game {
	return &Game{params: ParamsFrom(cfg)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return Title
}

// Reset reseeds the platform generator from cfg and starts a new run.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt

	if g.spawner == nil {
		g.spawner = NewRandSpawner(rt.Seed)
	} else {
		g.spawner.Reseed(rt.Seed)
	}
	g.Restart()
}

// Restart starts a new run without reseeding: the player returns to the
// start point at rest, the score is cleared and platforms are regenerated.
func (g *Game) Restart() {
	if g.spawner == nil {
		g.spawner = NewRandSpawner(g.runtime.Seed)
	}
	g.state = NewRun(g.params, g.spawner)
}

// Step applies this tick's horizontal key events and advances the simulation.
// A restart request is honored only once the run is over.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.state.GameOver {
		g.Restart()
		return core.StepResult{State: g.State()}
	}

	g.state = ApplyInput(g.state, in, g.params)

	var out Outcome
	g.state, out = Tick(g.state, g.params, g.spawner)
	return core.StepResult{State: g.State(), Landed: out.Landed}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderView(dst, g.View())
}

// View projects the current state for a renderer.
func (g *Game) View() View {
	return Project(g.state, g.params)
}

// State returns the current run status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.GameOver,
	}
}

// Snapshot returns a copy of the full simulation state.
func (g *Game) Snapshot() State {
	return g.state.Clone()
}

// Params returns the simulation constants in use.
func (g *Game) Params() Params {
	return g.params
}

// Register the game with the registry
func init() {
	registry.Register(ID, Title, func(cfg config.JumperConfig) registry.Game {
		return New(cfg)
	})
}
