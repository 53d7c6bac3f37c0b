// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall                 - Play
//	blockfall play            - Play (same as the bare command)
//	blockfall replays         - Browse and watch saved replays
//	blockfall serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.blockfall/replays.db)
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
	Use:   "blockfall",
	Short: "Blockfall - A falling-block puzzle game in your terminal",
	Long: `Blockfall is a terminal falling-block puzzle game: stack the pieces,
complete rows to clear them, and keep up as the game speeds up.

Available commands:
  play     - Play (the bare command does the same)
  replays  - Browse and watch saved replays
  serve    - Start SSH server for remote play

Examples:
  blockfall
  blockfall play --seed 42
  blockfall replays
  blockfall serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/replays.db", "Path to replays database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(serveCmd)
}
