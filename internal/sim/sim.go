// Package sim plays jumper runs headlessly with the autopilot. It is used to
// smoke-test configurations and to reproduce seeds without a terminal.
package sim

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/logging"
	"github.com/vovakirdan/tui-jumper/internal/loop"
)

// Options configures a simulation.
type Options struct {
	// Ticks caps the length of each run. A run also ends at game over.
	Ticks int
	// Runs is how many runs to play back to back. Values below 1 mean 1.
	Runs int
	// Realtime paces ticks at Rate per second instead of running flat out.
	Realtime bool
	// Rate is the tick rate used when Realtime is set.
	Rate int
	// Seed seeds platform placement.
	Seed int64
	// Logger receives run events. Nil discards them.
	Logger *log.Logger
	// Ticker overrides the realtime ticker, for tests.
	Ticker loop.TickerFactory
}

// RunReport summarizes one run.
type RunReport struct {
	Ticks    int  `yaml:"ticks"`
	Score    int  `yaml:"score"`
	Landings int  `yaml:"landings"`
	MaxClimb int  `yaml:"max_climb"`
	GameOver bool `yaml:"game_over"`
}

// Report summarizes a simulation.
type Report struct {
	Seed      int64       `yaml:"seed"`
	BestScore int         `yaml:"best_score"`
	Runs      []RunReport `yaml:"runs"`
}

// Run plays opts.Runs autopilot runs with cfg and returns their report. Runs
// share one platform RNG stream, like restarts in the terminal. A cancelled
// ctx ends a realtime simulation early; the partial report is still returned.
func Run(ctx context.Context, cfg config.JumperConfig, opts Options) (Report, error) {
	if opts.Ticks <= 0 {
		return Report{}, fmt.Errorf("ticks must be positive, got %d", opts.Ticks)
	}
	runs := max(opts.Runs, 1)
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	game := jumper.New(cfg)
	game.Reset(core.RuntimeConfig{TickRate: opts.Rate, Seed: opts.Seed})
	pilot := jumper.NewAutopilot(game.Params())

	report := Report{Seed: opts.Seed}
	logger.Info("simulation started", "seed", opts.Seed, "runs", runs, "ticks", opts.Ticks, "realtime", opts.Realtime)

	for i := 0; i < runs; i++ {
		if i > 0 {
			game.Restart()
			pilot.Reset()
		}

		run, err := playRun(ctx, game, pilot, opts, logger.With("run", i+1))
		report.Runs = append(report.Runs, run)
		report.BestScore = max(report.BestScore, run.Score)
		if err != nil {
			return report, err
		}
		if ctx.Err() != nil {
			break
		}
	}
	return report, nil
}

func playRun(ctx context.Context, game *jumper.Game, pilot *jumper.Autopilot, opts Options, logger *log.Logger) (RunReport, error) {
	l := loop.New(opts.Rate)
	if opts.Ticker != nil {
		l.WithTicker(opts.Ticker)
	}

	var run RunReport
	step := func(tick uint64) bool {
		result := game.Step(pilot.Decide(game.Snapshot()))
		run.Score = result.State.Score
		if result.Landed {
			run.Landings++
			logger.Debug("landed", "tick", tick, "score", run.Score)
		}
		run.MaxClimb = max(run.MaxClimb, int(game.Snapshot().Climbed))
		if result.State.GameOver {
			run.GameOver = true
			logger.Info("run over", "tick", tick, "score", run.Score)
			return false
		}
		return int(tick) < opts.Ticks
	}

	if !opts.Realtime {
		l.Drive(opts.Ticks, step)
		run.Ticks = int(l.Ticks())
		return run, nil
	}

	logger.Debug("pacing", "interval", l.Interval())
	err := l.Run(ctx, step)
	run.Ticks = int(l.Ticks())
	if err != nil && !errors.Is(err, context.Canceled) {
		return run, fmt.Errorf("simulation: %w", err)
	}
	return run, nil
}

// WriteReport writes r as YAML.
func WriteReport(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("cannot encode report: %w", err)
	}
	return enc.Close()
}
