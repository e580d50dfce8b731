package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nlisovsky/gridsnake/internal/config"
	"github.com/nlisovsky/gridsnake/internal/platform/tui"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows     - Steer the snake
  Space      - Pause / resume, restart after game over
  1-0        - Set the speed level (0 is level 10)
  Q/Ctrl+C   - Quit

Examples:
  gridsnake play
  gridsnake play --level 8
  gridsnake play --config ./my-gridsnake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level 1-10 (0 = from config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLevel > 0 {
		cfg.Game.StartLevel = flagLevel
		cfg.Normalize()
	}

	// Pre-size the board so the first frame is drawn before the terminal
	// reports its size.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.Run(tui.Options{
		Width:  width,
		Height: height,
		Seed:   flagSeed,
		Config: cfg,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
