package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ametelin/gemfall/internal/config"
	"github.com/ametelin/gemfall/internal/match3"
)

var (
	flagSimMoves   int
	flagSimConfig  string
	flagSimVerbose bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autoplay simulation",
	Long: `Play a number of moves without a UI, always taking the first valid
swap in scan order. Useful for benchmarking the rules engine and for
reproducing games: the same seed always produces the same run.

Examples:
  gemfall sim --moves 100
  gemfall sim --moves 1000 --seed 42
  gemfall sim --config ./my-board.yaml --verbose`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimMoves, "moves", 100, "Number of moves to play")
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log every move")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gemfall-sim",
	})

	cfg, err := config.Load(flagSimConfig)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := match3.NewRand(seed)

	board, err := match3.New(cfg.Board.Rows, cfg.Board.Cols, cfg.Board.Colors, rng)
	if err != nil {
		logger.Fatal("cannot build board", "error", err)
	}

	logger.Info("simulation start",
		"seed", seed,
		"board", fmt.Sprintf("%dx%d", cfg.Board.Rows, cfg.Board.Cols),
		"colors", cfg.Board.Colors,
		"moves", flagSimMoves,
	)

	start := time.Now()
	var totalScore, totalSteps, maxChain, reshuffles int

	for move := 1; move <= flagSimMoves; move++ {
		a, b, ok := firstValidSwap(board)
		if !ok {
			// EnsurePlayable below keeps this from happening, but a
			// simulation should not crash on an engine bug.
			logger.Error("no valid move found", "move", move)
			break
		}

		res, err := match3.ResolveMove(board, a, b, rng)
		if err != nil {
			logger.Fatal("move failed", "move", move, "error", err)
		}
		board = res.Board

		totalScore += res.Score
		totalSteps += len(res.Steps)
		if chains := len(res.Steps); chains > maxChain {
			maxChain = chains
		}

		if flagSimVerbose {
			logger.Info("move",
				"n", move,
				"swap", fmt.Sprintf("%v-%v", a, b),
				"score", res.Score,
				"chains", len(res.Steps),
			)
		}

		playable := match3.EnsurePlayable(board, rng)
		if playable != board {
			board = playable
			reshuffles++
			if flagSimVerbose {
				logger.Info("board reshuffled", "move", move)
			}
		}
	}

	logger.Info("simulation done",
		"score", totalScore,
		"cascade_steps", totalSteps,
		"max_chain", maxChain,
		"reshuffles", reshuffles,
		"elapsed", time.Since(start).Round(time.Microsecond),
	)

	fmt.Println(board)
}

// firstValidSwap scans the board row-major and returns the first swap
// with the right or below neighbor that produces a match.
func firstValidSwap(b *match3.Board) (match3.Coord, match3.Coord, bool) {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			a := match3.RC(r, c)
			for _, other := range []match3.Coord{match3.RC(r, c+1), match3.RC(r+1, c)} {
				if !b.InBounds(other) {
					continue
				}
				probe := b.Clone()
				probe.Swap(a, other)
				if len(match3.FindMatches(probe)) > 0 {
					return a, other, true
				}
			}
		}
	}
	return match3.Coord{}, match3.Coord{}, false
}
