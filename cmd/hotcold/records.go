package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hotcold/internal/storage"
)

var (
	flagRecordsLimit int
	flagClear        bool
)

var recordsCmd = &cobra.Command{
	Use:   "records [level]",
	Short: "Show run records",
	Long: `Without a level, show a summary for every played level.
With a level, show its best run and latest attempts.

Examples:
  hotcold records
  hotcold records level2 --limit 20
  hotcold records level2 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().IntVar(&flagRecordsLimit, "limit", 10, "Number of recent runs to show")
	recordsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the runs of the level (all levels if none given)")
}

func runRecords(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening records database: %w", err)
	}
	defer store.Close()

	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
	}

	if flagClear {
		if err := store.ClearRuns(levelID); err != nil {
			return err
		}
		if levelID == "" {
			fmt.Println("Cleared all runs.")
		} else {
			fmt.Printf("Cleared runs of %s.\n", levelID)
		}
		return nil
	}

	if levelID == "" {
		return printSummary(store)
	}
	return printLevelRecords(store, levelID)
}

func printSummary(store *storage.Store) error {
	stats, err := store.AllLevelStats()
	if err != nil {
		return err
	}

	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hotcold play' to set the first record!")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-12s  %8s  %5s  %5s  %9s  %6s  %s\n", "Level", "Attempts", "Won", "Lost", "Abandoned", "Best", "Last played")
	fmt.Printf("  %-12s  %8s  %5s  %5s  %9s  %6s  %s\n", "-----", "--------", "---", "----", "---------", "----", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-12s  %8d  %5d  %5d  %9d  %6s  %s\n",
			id, s.Attempts, s.Wins, s.Losses, s.Abandoned, bestString(s.BestTicks), s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printLevelRecords(store *storage.Store, levelID string) error {
	stats, err := store.LevelStats(levelID)
	if err != nil {
		return err
	}

	fmt.Printf("Records - %s\n", levelID)
	fmt.Println()
	fmt.Printf("Attempts: %d (won %d, lost %d, abandoned %d)\n", stats.Attempts, stats.Wins, stats.Losses, stats.Abandoned)

	best, err := store.BestRun(levelID)
	switch {
	case errors.Is(err, storage.ErrNoRuns):
		fmt.Println("Best:     not won yet")
	case err != nil:
		return err
	default:
		fmt.Printf("Best:     %d ticks on %s (fingerprint %s)\n", best.Ticks, best.CreatedAt.Format("2006-01-02 15:04"), best.Fingerprint)
	}
	fmt.Println()

	runs, err := store.RecentRuns(levelID, flagRecordsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'hotcold play %s' to set the first record!\n", levelID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %6s  %s\n", "#", "Outcome", "Ticks", "Date")
	fmt.Printf("  %-4s  %-10s  %6s  %s\n", "-", "-------", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-10s  %6d  %s\n", i+1, r.Outcome, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func bestString(ticks uint64) string {
	if ticks == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", ticks)
}
