package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/platform/gui"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window sized to the playing field and start a run.

Controls:
  ←/A  →/D   - Move left / right while held
  R/Enter    - Play again (or click the Play Again button)
  Esc        - Quit

Examples:
  jumper window
  jumper window --scale 2 --seed 7`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 1, "Window scale factor")
}

func runWindow(cmd *cobra.Command, args []string) {
	jcfg := loadConfig()

	logger, closeLog := openLogger("window", false)
	defer closeLog()

	rt := runtimeConfig(int(jcfg.Field.Width), int(jcfg.Field.Height))
	if err := gui.Run(jumper.New(jcfg), rt, gui.Options{Scale: flagScale, Logger: logger}); err != nil {
		fail("%v", err)
	}
}
