package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the current terminal.

Controls:
  ←/a  →/d   - Move left / right (hold)
  ↓/s        - Stop moving
  R/Enter    - Play again (after game over)
  Ctrl+S     - Save a screenshot to ~/.jumper/screenshots
  Q/Ctrl+C   - Quit

Terminals do not report key releases, so a direction is released after
terminal.release_ticks ticks without a key repeat.

Logs are discarded unless --log-file is given, since the game owns the screen.

Examples:
  jumper play
  jumper play --seed 42
  jumper play --config ./my-jumper.yaml --log-file ./jumper.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	jcfg := loadConfig()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closeLog := openLogger("play", true)
	defer closeLog()

	game := jumper.New(jcfg)
	err := tui.Run(game, runtimeConfig(width, height), tui.Options{
		ReleaseTicks: jcfg.Terminal.ReleaseTicks,
		Logger:       logger,
	})
	if err != nil {
		fail("running game: %v", err)
	}
}
