package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovikan/tui-platformer/internal/game"
	"github.com/vovikan/tui-platformer/internal/levels"
)

var flagListLevelDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows the built-in campaign levels, plus any custom levels found in
the directory given with --levels.

Examples:
  platformer levels
  platformer levels --levels ./my-levels`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagListLevelDir, "levels", "", "Directory with custom level YAML files")
}

func runLevels(cmd *cobra.Command, args []string) {
	src := game.BuiltinSource()

	fmt.Println("Built-in levels:")
	fmt.Println()
	fmt.Printf("  %-5s  %-20s  %s\n", "Index", "ID", "Name")
	fmt.Printf("  %-5s  %-20s  %s\n", "-----", "--", "----")
	for i := 0; i < src.Count(); i++ {
		lvl, err := src.Load(i)
		if err != nil {
			continue
		}
		fmt.Printf("  %-5d  %-20s  %s\n", i, lvl.ID, lvl.Name)
	}

	if flagListLevelDir != "" {
		loader := levels.NewLoader(flagListLevelDir)
		custom, err := loader.LoadAll()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", flagListLevelDir, err)
			os.Exit(1)
		}

		fmt.Println()
		fmt.Printf("Custom levels in %s:\n", flagListLevelDir)
		fmt.Println()
		if len(custom) == 0 {
			fmt.Println("  (none)")
		} else {
			fmt.Printf("  %-5s  %-20s  %-20s  %s\n", "Index", "ID", "Name", "Size")
			fmt.Printf("  %-5s  %-20s  %-20s  %s\n", "-----", "--", "----", "----")
			for i, lvl := range custom {
				fmt.Printf("  %-5d  %-20s  %-20s  %dx%d\n", i, lvl.ID, lvl.Name, lvl.Width, lvl.Height)
			}
		}
	}

	fmt.Println()
	fmt.Println("Run 'platformer play --level <index>' to start from a level.")
}
