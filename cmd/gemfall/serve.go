package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ametelin/gemfall/internal/game"
	"github.com/ametelin/gemfall/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeMode   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gemfall SSH server",
	Long: `Start an SSH server that lets users connect and play gemfall.

Each SSH connection gets its own game; scores are stored per-server under
the SSH username, so all users share the same leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.gemfall/host_key

Examples:
  gemfall serve                           # Listen on :23234 with auto-generated key
  gemfall serve --ssh :2222               # Listen on port 2222
  gemfall serve --host-key ./my_host_key  # Use specific host key
  gemfall serve --mode zen                # Serve endless mode

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeMode, "mode", "moves", "Game mode served to sessions: moves or zen")
}

func runServe(_ *cobra.Command, _ []string) {
	var newGame func() tui.Game
	switch flagServeMode {
	case "moves", "":
		newGame = func() tui.Game { return game.New() }
	case "zen":
		newGame = func() tui.Game { return game.NewZen() }
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (want moves or zen)\n", flagServeMode)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		NewGame:     newGame,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting gemfall SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
