package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovikan/tui-platformer/internal/core"
	"github.com/vovikan/tui-platformer/internal/game"
	"github.com/vovikan/tui-platformer/internal/levels"
	"github.com/vovikan/tui-platformer/internal/platform/tui"
	"github.com/vovikan/tui-platformer/internal/registry"
	"github.com/vovikan/tui-platformer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevelDir   string
	flagLevel      int
	flagTrial      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the platformer",
	Long: `Start the campaign, or a single level in trial mode.

Controls:
  A/D, arrows  - Move left/right
  Space/W/Up   - Jump
  P            - Pause
  R            - Restart level (or run, after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 lives, floatier jumps
  normal - 3 lives, default physics
  hard   - 2 lives, heavier gravity
  fixed  - Exactly the values in the config file

Examples:
  platformer play
  platformer play --difficulty hard
  platformer play --level 2
  platformer play --trial --level 1
  platformer play --levels ./my-levels
  platformer play --config ./my-platformer.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLevelDir, "levels", "", "Directory with custom level YAML files")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level index")
	playCmd.Flags().BoolVar(&flagTrial, "trial", false, "Trial mode: play a single level against the clock")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "platformer"
	if flagTrial {
		gameID = "platformer_trial"
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Configure the game before creation
	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)
	game.SetStartLevel(flagLevel)

	if flagLevelDir != "" {
		loader := levels.NewLoader(flagLevelDir)
		src, err := loader.Source()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading levels from %s: %v\n", flagLevelDir, err)
			os.Exit(1)
		}
		game.SetLevelSource(src)
	} else {
		game.SetLevelSource(nil)
	}

	g, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open record storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open records database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
