// Package jumper implements an endless vertical platformer.
// The player bounces off procedurally generated platforms; climbing into the
// upper half of the field scrolls the world down and recycles platforms, and
// falling below the field ends the run.
//
// The simulation is a pure function over State (see Tick); Game wraps it for
// the arcade registry and owns the RNG that places new platforms.
package jumper

import "github.com/vovakirdan/tui-jumper/internal/config"

// Vec is a position or velocity in field units.
type Vec struct {
	X, Y float64
}

// Platform is the top-left corner of a platform. Size comes from Params.
type Platform struct {
	X, Y float64
}

// State is one complete simulation snapshot.
// Platforms are ordered top of stack first (smallest Y first).
type State struct {
	Pos       Vec
	Vel       Vec
	Platforms []Platform
	Score     int
	GameOver  bool
	Climbed   float64 // Total scroll distance this run
	Ticks     int     // Simulated ticks this run
}

// Clone returns a copy that shares no platform storage with s.
func (s State) Clone() State {
	c := s
	c.Platforms = append([]Platform(nil), s.Platforms...)
	return c
}

// Params are the fixed simulation constants, flattened from config.JumperConfig.
type Params struct {
	FieldW, FieldH   float64
	PlayerW, PlayerH float64
	StartX, StartY   float64
	MoveSpeed        float64
	Gravity          float64
	Bounce           float64
	PlatformCount    int
	PlatformW        float64
	PlatformH        float64
	Spacing          float64
	Leeway           float64
	ScrollLine       float64
}

// ParamsFrom flattens a validated configuration.
func ParamsFrom(cfg config.JumperConfig) Params {
	return Params{
		FieldW:        cfg.Field.Width,
		FieldH:        cfg.Field.Height,
		PlayerW:       cfg.Player.Width,
		PlayerH:       cfg.Player.Height,
		StartX:        cfg.Player.StartX,
		StartY:        cfg.Player.StartY,
		MoveSpeed:     cfg.Player.MoveSpeed,
		Gravity:       cfg.Physics.Gravity,
		Bounce:        cfg.Physics.BounceImpulse,
		PlatformCount: cfg.Platforms.Count,
		PlatformW:     cfg.Platforms.Width,
		PlatformH:     cfg.Platforms.Height,
		Spacing:       cfg.Platforms.Spacing,
		Leeway:        cfg.Platforms.LandingLeeway,
		ScrollLine:    cfg.Camera.ScrollLine,
	}
}

// maxPlatformX is the largest left edge that keeps a platform inside the field.
func (p Params) maxPlatformX() float64 {
	return p.FieldW - p.PlatformW
}

// NewRun returns the initial state of a run: player at the start point at rest,
// score zero, and a fresh stack of platforms spaced evenly from the top.
func NewRun(p Params, spawn Spawner) State {
	platforms := make([]Platform, p.PlatformCount)
	for i := range platforms {
		platforms[i] = Platform{
			X: spawn.SpawnX(p.maxPlatformX()),
			Y: float64(i) * p.Spacing,
		}
	}
	return State{
		Pos:       Vec{X: p.StartX, Y: p.StartY},
		Platforms: platforms,
	}
}
