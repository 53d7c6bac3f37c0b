package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vselivanov/blockfall/internal/core"
	"github.com/vselivanov/blockfall/internal/platform/tui"
	"github.com/vselivanov/blockfall/internal/registry"
	"github.com/vselivanov/blockfall/internal/storage"
	"github.com/vselivanov/blockfall/internal/tetris"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  S/Down     - Soft drop
  W/Up       - Rotate
  Space      - Hard drop
  P/Esc      - Pause
  R          - Restart
  Q/Ctrl+C   - Quit

Finished games are saved as replays (seed plus input log); browse them
with 'blockfall replays'.

Examples:
  blockfall play
  blockfall play --seed 42
  blockfall play --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Terminal size for the initial screen buffer
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Set config path before creation
	tetris.SetConfigPath(flagConfig)

	game, err := registry.Create("blockfall")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open replay storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open replays database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
