// gemfall is a terminal match-3 puzzle game.
//
// Usage:
//
//	gemfall play             - Play in the terminal
//	gemfall scores           - Show high scores
//	gemfall serve            - Start SSH server for remote play
//	gemfall sim              - Run a headless autoplay simulation
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.gemfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "gemfall",
	Short: "Gemfall - match-3 gem puzzle in your terminal",
	Long: `Gemfall is a terminal match-3 puzzle. Swap adjacent gems to line up
three or more of a color, chain cascades for bonus points, and earn
bomb and line power-ups from big matches.

Available commands:
  play     - Play in the terminal
  scores   - View high scores
  serve    - Start SSH server for remote play
  sim      - Run a headless autoplay simulation

Examples:
  gemfall play
  gemfall play --mode zen
  gemfall scores
  gemfall serve --ssh :2222
  gemfall sim --moves 100 --seed 42`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gemfall/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}
