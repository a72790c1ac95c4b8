// lines is a color-lines puzzle for the terminal: move pieces along free
// paths and line up five of a color to clear them.
//
// Usage:
//
//	lines list                 - List board variants
//	lines play [variant]       - Play a variant (default: lines)
//	lines menu                 - Pick a variant interactively
//	lines serve                - Start SSH server for remote play
//	lines scores <variant>     - Show high scores for a variant
//	lines replay <variant>     - Apply a file of move commands and print the boards
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.lines/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/tui-lines/internal/games/lines"
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
	Use:   "lines",
	Short: "Lines - line up five of a color in your terminal",
	Long: `Lines is a terminal color-lines puzzle. Select a piece, pick an empty
cell it can reach along free rows and columns, and line up five or more
of one color to clear them. Moves that clear nothing bring new pieces;
the game ends when the board is full.

Available commands:
  list     - Show all board variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  replay   - Replay move commands from a file

Examples:
  lines play
  lines play lines_mini --difficulty hard
  lines menu
  lines serve --ssh :2222
  lines replay lines --seed 7 --file moves.txt`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lines/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}
