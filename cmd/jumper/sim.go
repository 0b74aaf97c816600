package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/sim"
)

var (
	flagTicks    int
	flagRuns     int
	flagRealtime bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the autopilot headlessly",
	Long: `Play runs with the built-in autopilot and print a YAML report.

Each run lasts --ticks ticks or until the player falls; --runs plays several
runs on one seed, restarting after each. Without --realtime
ticks run back to back; with it they are paced at --fps.

Examples:
  jumper sim
  jumper sim --seed 42 --ticks 36000
  jumper sim --runs 10
  jumper sim --realtime --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum number of ticks per run")
	simCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs to play back to back")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks at --fps")
}

func runSim(cmd *cobra.Command, args []string) {
	jcfg := loadConfig()

	logger, closeLog := openLogger("sim", false)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rt := runtimeConfig(0, 0)
	report, err := sim.Run(ctx, jcfg, sim.Options{
		Ticks:    flagTicks,
		Runs:     flagRuns,
		Realtime: flagRealtime,
		Rate:     rt.TickRate,
		Seed:     rt.Seed,
		Logger:   logger,
	})
	if err != nil {
		fail("%v", err)
	}

	if err := sim.WriteReport(os.Stdout, report); err != nil {
		fail("%v", err)
	}
}
