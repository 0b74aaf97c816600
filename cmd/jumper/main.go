// jumper is an endless platform jumper for the terminal, a desktop window,
// or remote play over SSH.
//
// Usage:
//
//	jumper list              - List available games
//	jumper play              - Play in the terminal
//	jumper window            - Play in a desktop window
//	jumper serve             - Start SSH server for remote play
//	jumper sim               - Run the autopilot headlessly and print a report
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Load a custom jumper.yaml
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Endless Jumper - bounce upward between platforms",
	Long: `Endless Jumper is a platformer where you bounce from platform to
platform while the world scrolls upward. Miss a platform and fall off the
bottom of the field to end the run.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  sim      - Run the autopilot headlessly

Examples:
  jumper play
  jumper play --seed 42
  jumper window --scale 2
  jumper serve --ssh :2222
  jumper sim --ticks 3600`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom jumper config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// fail prints err and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the jumper config or exits.
func loadConfig() config.JumperConfig {
	cfg, err := config.LoadJumper(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	return cfg
}

// runtimeConfig builds the runtime config from global flags.
// A zero seed is replaced by the current time so it can be logged.
func runtimeConfig(width, height int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// openLogger opens the logger selected by --log-file. When no file is given
// and quiet is set, logs are discarded.
func openLogger(prefix string, quiet bool) (*log.Logger, func() error) {
	opts := logging.Options{Level: flagLogLevel, Prefix: prefix}
	if flagLogFile == "" && quiet {
		// Still validate the level so a typo is reported.
		if _, err := logging.New(os.Stderr, opts); err != nil {
			fail("%v", err)
		}
		return logging.Discard(), func() error { return nil }
	}

	logger, closeFn, err := logging.Open(flagLogFile, opts)
	if err != nil {
		fail("%v", err)
	}
	return logger, closeFn
}
