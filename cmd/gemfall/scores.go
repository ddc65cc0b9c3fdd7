package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ametelin/gemfall/internal/platform/tui"
	"github.com/ametelin/gemfall/internal/storage"
)

var (
	flagScoresMode        string
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores.

Examples:
  gemfall scores
  gemfall scores --mode zen
  gemfall scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", "moves", "Game mode: moves or zen")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse scores in a TUI")
}

func runScores(_ *cobra.Command, _ []string) {
	gameID := "gemfall"
	title := "Gemfall"
	switch flagScoresMode {
	case "moves", "":
	case "zen":
		gameID = "gemfall_zen"
		title = "Gemfall (Zen)"
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (want moves or zen)\n", flagScoresMode)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'gemfall play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-14s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-14s  %-10s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-14s  %-10d  %s\n", i+1, entry.Player, entry.Score, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
