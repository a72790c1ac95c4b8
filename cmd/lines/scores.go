package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lines/internal/registry"
	"github.com/vovakirdan/tui-lines/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores for a variant",
	Long: `Display the top high scores for the specified variant.

Examples:
  lines scores lines
  lines scores lines_mini --limit 20
  lines scores --all
  lines scores lines_big --clear`,
	Args: cobra.RangeArgs(0, 1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score of the variant")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show a summary of every variant played")
}

func runScores(cmd *cobra.Command, args []string) {
	if !flagScoresAll && len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: a variant is required unless --all is given")
		cmd.Usage()
		os.Exit(1)
	}

	var info registry.GameInfo
	if len(args) == 1 {
		var ok bool
		if info, ok = registry.Lookup(args[0]); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'lines list' to see available variants.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresAll:
		err = printAllStats(os.Stdout, store)
	case flagScoresClear:
		err = clearScores(os.Stdout, store, info)
	default:
		err = printScores(os.Stdout, store, info, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScores(w io.Writer, store *storage.Store, info registry.GameInfo, limit int) error {
	scores, err := store.TopScores(info.ID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", info.Title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'lines play %s' to set the first high score!\n", info.ID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-7s  %-5s  %-12s  %s\n", "Rank", "Score", "Moves", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-7s  %-5s  %-12s  %s\n", "----", "-----", "-----", "------", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(w, "  %-4d  %-7d  %-5d  %-12s  %s\n",
			i+1, entry.Score, entry.Moves, player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(info.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nBest: %d  Games: %d  Average: %.1f  Moves played: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalMoves)
	return nil
}

func printAllStats(w io.Writer, store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-12s  %-5s  %-7s  %-7s  %s\n", "Variant", "Games", "Best", "Average", "Last played")
	fmt.Fprintf(w, "  %-12s  %-5s  %-7s  %-7s  %s\n", "-------", "-----", "----", "-------", "-----------")
	for _, id := range slices.Sorted(maps.Keys(stats)) {
		s := stats[id]
		fmt.Fprintf(w, "  %-12s  %-5d  %-7d  %-7.1f  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func clearScores(w io.Writer, store *storage.Store, info registry.GameInfo) error {
	before, err := store.GetGameStats(info.ID)
	if err != nil {
		return err
	}
	if err := store.ClearScores(info.ID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared %d scores for %s.\n", before.GamesCount, info.Title)
	return nil
}
