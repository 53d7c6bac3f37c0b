package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vselivanov/blockfall/internal/core"
	"github.com/vselivanov/blockfall/internal/platform/tui"
	"github.com/vselivanov/blockfall/internal/registry"
	"github.com/vselivanov/blockfall/internal/storage"
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse and watch saved replays",
	Long: `Open the replay browser.

A replay is the seed and input log of a finished game; watching one
re-runs the engine with the recorded inputs, reproducing the game
exactly.

Browser keys:
  Up/Down    - Scroll
  Enter      - Watch the selected replay
  D          - Delete the selected replay
  Q/Esc      - Quit

Examples:
  blockfall replays
  blockfall replays --db ./replays.db`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

func runReplays(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open replays database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	base := core.DefaultConfig()
	width, height := base.ScreenW, base.ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Browse, watch, and return to the browser until the user quits.
	for {
		id, err := tui.RunBrowser(store, "", width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if id == 0 {
			return
		}

		rec, err := store.GetReplay(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading replay: %v\n", err)
			os.Exit(1)
		}
		if rec == nil {
			continue
		}

		game, err := registry.Create(rec.GameID)
		if err != nil {
			known := make([]string, 0, 1)
			for _, info := range registry.List() {
				known = append(known, info.ID)
			}
			fmt.Fprintf(os.Stderr, "Error: replay is for an unknown game %q (registered: %s)\n",
				rec.GameID, strings.Join(known, ", "))
			continue
		}

		// Seed and tick rate come from the recording itself.
		cfg := base
		cfg.ScreenW = width
		cfg.ScreenH = height
		if err := tui.RunPlayback(game, *rec, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running playback: %v\n", err)
			os.Exit(1)
		}
	}
}
