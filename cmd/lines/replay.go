package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lines/internal/core"
	"github.com/vovakirdan/tui-lines/internal/games/lines"
	"github.com/vovakirdan/tui-lines/internal/games/lines/engine"
)

var (
	flagReplayFile string
	flagVerbose    bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <variant>",
	Short: "Apply move commands and print the board after each",
	Long: `Start a game of the given variant and apply move commands read from a
file (or stdin). Each line holds one command:

  {r1,c1} {r2,c2}

Blank lines and lines starting with # are ignored. Rejected moves are
logged and skipped. Use --seed to make the dealt pieces reproducible.

Examples:
  lines replay lines --seed 42 --file moves.txt
  echo '{0,0} {4,4}' | lines replay lines_mini --seed 1 --verbose`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayFile, "file", "", "Move command file (default: stdin)")
	replayCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log every engine decision")
	replayCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom lines config YAML")
	replayCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runReplay(_ *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "lines",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	gameID := args[0]
	if err := applyGameFlags(gameID); err != nil {
		logger.Error("cannot start game", "variant", gameID, "error", err)
		os.Exit(1)
	}

	var in io.Reader = os.Stdin
	if flagReplayFile != "" {
		f, err := os.Open(flagReplayFile)
		if err != nil {
			logger.Error("cannot open move file", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	cmds, err := lines.ReadCommands(in)
	if err != nil {
		logger.Error("cannot read moves", "error", err)
		os.Exit(1)
	}

	g, err := lines.NewVariant(gameID)
	if err != nil {
		logger.Error("cannot start game", "variant", gameID, "error", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	lines.SetLogger(logger)
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	logger.Info("replay started", "variant", gameID, "seed", seed, "moves", len(cmds))

	res := replay(os.Stdout, g, cmds, logger)
	logger.Info("replay finished",
		"applied", res.Applied,
		"rejected", res.Rejected,
		"score", res.Score,
		"game_over", res.GameOver,
	)
}

// replayResult summarizes a replay.
type replayResult struct {
	Applied  int
	Rejected int
	Score    int
	GameOver bool
}

// replay applies cmds to g, writing the board after every accepted move.
// Rejected moves are logged and skipped; replay stops when the board fills.
func replay(w io.Writer, g *lines.Game, cmds []lines.MoveCommand, logger *log.Logger) replayResult {
	var res replayResult

	fmt.Fprintln(w, "Start")
	fmt.Fprint(w, g.BoardString())

	for i, cmd := range cmds {
		out, err := g.Move(cmd)
		if err != nil {
			res.Rejected++
			logger.Warn("move rejected", "n", i+1, "move", cmd, "reason", reason(err))
			continue
		}
		res.Applied++

		fmt.Fprintf(w, "\nMove %d: %s", i+1, cmd)
		if len(out.Cleared) > 0 {
			fmt.Fprintf(w, "  cleared %d (+%d)", len(out.Cleared), out.Gained)
		}
		fmt.Fprintf(w, "  score %d\n", out.Score)
		fmt.Fprint(w, g.BoardString())

		if g.State().GameOver {
			res.GameOver = true
			if rest := len(cmds) - i - 1; rest > 0 {
				logger.Info("board full, skipping remaining moves", "skipped", rest)
			}
			break
		}
	}

	res.Score = g.State().Score
	fmt.Fprintf(w, "\nFinal score %d after %d moves\n", res.Score, g.State().Moves)
	return res
}

// reason returns a short log value for a rejected move.
func reason(err error) string {
	var me *engine.MoveError
	if errors.As(err, &me) {
		return me.Reason.String()
	}
	return err.Error()
}
