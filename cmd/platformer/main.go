// platformer is a TUI platformer: steer a bouncing ball through tile
// levels, dodge the spikes, and reach the exit.
//
// Usage:
//
//	platformer play              - Play the campaign
//	platformer play --level 2    - Start from a specific level
//	platformer levels            - List available levels
//	platformer serve             - Start SSH server for remote play
//	platformer scores            - Show high scores and best clear times
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.platformer/records.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovikan/tui-platformer/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "TUI Platformer - Roll a ball through spiky levels in your terminal",
	Long: `TUI Platformer is a terminal platformer. You control a ball that
accelerates, bounces off walls, and must reach each level's exit while
avoiding spikes.

Available commands:
  play     - Play the campaign (or a single level in trial mode)
  levels   - List built-in and custom levels
  serve    - Start SSH server for remote play
  scores   - View high scores and best clear times

Examples:
  platformer play
  platformer play --difficulty hard
  platformer play --trial --level 1
  platformer levels --levels ./my-levels
  platformer serve --ssh :2222
  platformer scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/records.db", "Path to records database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
