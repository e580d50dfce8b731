// gridsnake is a terminal snake game on a fixed-size grid.
//
// Usage:
//
//	gridsnake play             - Play in the current terminal
//	gridsnake serve            - Serve the game over SSH
//
// Global flags:
//
//	--config <path>  - Path to a YAML config file
//	--seed <value>   - RNG seed for reproducible apple placement
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "Snake on a grid, in your terminal",
	Long: `gridsnake is a terminal snake game: steer the snake with the arrow
keys, eat apples to grow, and don't run into yourself or the wall.
The game speeds up as the score rises; the digit keys set the level.

Examples:
  gridsnake play
  gridsnake play --seed 42
  gridsnake play --config ./gridsnake.yaml
  gridsnake serve --ssh :23235`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
