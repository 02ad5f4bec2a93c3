// minigames is a small collection of terminal games built on a shared
// scene-based platform.
//
// Usage:
//
//	minigames list              - List available games
//	minigames play <game>       - Play a game
//	minigames menu              - Start menu to pick games interactively
//	minigames serve             - Start SSH server for remote play
//	minigames scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.minigames/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/UnfriendlySpider/minigames/internal/games/adventure"
	_ "github.com/UnfriendlySpider/minigames/internal/games/flappy"
	_ "github.com/UnfriendlySpider/minigames/internal/games/zelda"
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
	Use:   "minigames",
	Short: "Minigames - A small game collection for your terminal",
	Long: `Minigames is a terminal-based collection of three games sharing one
scene-driven platform: a flappy clone, a top-down building explorer, and a
text adventure.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  minigames list
  minigames play flappy
  minigames menu
  minigames serve --ssh :2222
  minigames scores adventure`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.minigames/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
