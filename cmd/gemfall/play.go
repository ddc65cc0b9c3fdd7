package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ametelin/gemfall/internal/core"
	"github.com/ametelin/gemfall/internal/game"
	"github.com/ametelin/gemfall/internal/platform/tui"
	"github.com/ametelin/gemfall/internal/storage"
)

var (
	flagConfig string
	flagMode   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play gemfall",
	Long: `Start playing gemfall in the current terminal.

Controls:
  Arrows/WASD  - Move cursor
  Space/Enter  - Select gem / swap with selection
  X/Esc        - Drop selection
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Modes:
  moves - Score as much as possible in a fixed number of moves (default)
  zen   - Endless play, no move limit

Examples:
  gemfall play
  gemfall play --mode zen
  gemfall play --seed 42
  gemfall play --config ./my-board.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagMode, "mode", "moves", "Game mode: moves or zen")
}

func runPlay(_ *cobra.Command, _ []string) {
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

	game.SetConfigPath(flagConfig)

	var g *game.Game
	switch flagMode {
	case "moves", "":
		g = game.New()
	case "zen":
		g = game.NewZen()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (want moves or zen)\n", flagMode)
		os.Exit(1)
	}

	// Missing storage is not fatal; play without score persistence.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: scores will not be saved: %v\n", err)
	} else {
		defer store.Close()
	}

	if err := tui.Run(g, store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
