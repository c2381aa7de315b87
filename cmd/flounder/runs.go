package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flounder/internal/platform/tui"
	"github.com/vovakirdan/flounder/internal/storage"
)

var (
	flagBest  bool
	flagBoard bool
	flagLimit int
	flagClear bool
	flagRunID string
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show the run log",
	Long: `Display recent runs, or the best runs with --best. Best runs rank
victories first, then the furthest level reached, fewest deaths and
fewest frames.

Examples:
  flounder runs
  flounder runs --best --limit 5
  flounder runs --board
  flounder runs --id 6f1c0e2a-...`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagBest, "best", false, "Rank by best result instead of recency")
	runsCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive runs board")
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
	runsCmd.Flags().StringVar(&flagRunID, "id", "", "Show a single run by its ID")
}

func runRuns(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	const gameID = "flounder"

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Println("Run log cleared.")
		return nil
	}

	if flagRunID != "" {
		run, err := store.RunByID(flagRunID)
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no run with ID %q", flagRunID)
		}
		if err != nil {
			return err
		}
		printRun(run)
		return nil
	}

	if flagBoard {
		view := tui.RunsViewRecent
		if flagBest {
			view = tui.RunsViewBest
		}
		cfg := terminalConfig()
		_, err := tui.RunRunsBoard(store, gameID, view, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	var runs []storage.Run
	title := "Recent runs"
	if flagBest {
		title = "Best runs"
		runs, err = store.BestRuns(gameID, flagLimit)
	} else {
		runs, err = store.RecentRuns(gameID, flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Finish a game with 'flounder play' or record one with 'flounder sim --record'.")
		return nil
	}

	fmt.Printf("  %-4s  %-9s  %-5s  %-6s  %-5s  %-8s  %s\n", "Rank", "Result", "Level", "Deaths", "Kills", "Time", "Date")
	fmt.Printf("  %-4s  %-9s  %-5s  %-6s  %-5s  %-8s  %s\n", "----", "------", "-----", "------", "-----", "----", "----")
	for _, row := range tui.RunRows(runs) {
		fmt.Printf("  %-4s  %-9s  %-5s  %-6s  %-5s  %-8s  %s\n", row[0], row[1], row[2], row[3], row[4], row[5], row[6])
	}

	stats, err := store.Stats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Victories: %d  Best level: %d  Total kills: %d\n",
			stats.Runs, stats.Victories, stats.BestLevel, stats.TotalKills)
	}
	return nil
}

func printRun(r storage.Run) {
	fmt.Printf("Run:        %s\n", r.ID)
	fmt.Printf("Seed:       %d\n", r.Seed)
	fmt.Printf("Outcome:    %s\n", r.Outcome)
	fmt.Printf("Level:      %d\n", r.LevelReached)
	fmt.Printf("Frames:     %d\n", r.Ticks)
	fmt.Printf("Kills:      %d\n", r.Kills)
	fmt.Printf("Collected:  %d\n", r.Collected)
	fmt.Printf("Deaths:     %d\n", r.Deaths)
	fmt.Printf("Boss hits:  %d\n", r.BossHits)
	fmt.Printf("Duration:   %s\n", r.Duration().Round(time.Second))
	fmt.Printf("Finished:   %s\n", r.EndedAt.Local().Format("2006-01-02 15:04"))
}
