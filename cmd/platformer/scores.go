package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"golang.org/x/term"

	"github.com/vovikan/tui-platformer/internal/platform/tui"
	"github.com/vovikan/tui-platformer/internal/registry"
	"github.com/vovikan/tui-platformer/internal/storage"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and best clear times",
	Long: `Display the top 10 scores for each mode, plus the best recorded
clear time per level.

Examples:
  platformer scores
  platformer scores --tui
  platformer scores --db ./records.db`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse records in an interactive view")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening records database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, tuiErr := tui.RunScoreboard(store, width, height); tuiErr != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", tuiErr)
			os.Exit(1)
		}
		return
	}

	for _, info := range registry.List() {
		scores, scoresErr := store.TopScores(info.ID, 10)
		if scoresErr != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", scoresErr)
			os.Exit(1)
		}

		fmt.Printf("High Scores - %s\n", info.Title)
		fmt.Println()

		if len(scores) == 0 {
			fmt.Println("  No scores recorded yet.")
			fmt.Println()
			continue
		}

		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
		}

		if highScore, hsErr := store.HighScore(info.ID); hsErr == nil {
			fmt.Println()
			fmt.Printf("  Best: %d\n", highScore)
		}
		fmt.Println()
	}

	clears, err := store.BestClears()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving clear times: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Clear Times")
	fmt.Println()
	if len(clears) == 0 {
		fmt.Println("  No clears recorded yet.")
		return
	}

	fmt.Printf("  %-20s  %-10s  %s\n", "Level", "Best", "Clears")
	fmt.Printf("  %-20s  %-10s  %s\n", "-----", "----", "------")
	for _, c := range clears {
		fmt.Printf("  %-20s  %-10s  %d\n", c.LevelID, fmt.Sprintf("%.2fs", c.Seconds), c.Clears)
	}
}
