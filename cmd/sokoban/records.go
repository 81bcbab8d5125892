package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var (
	flagRecordsTUI   bool
	flagRecordsLimit int
	flagRecent       bool
	flagClear        bool
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show the fastest solves",
	Long: `Display the fastest solves of the built-in level.

Examples:
  sokoban records
  sokoban records --limit 20
  sokoban records --recent
  sokoban records --tui
  sokoban records --clear`,
	Args: cobra.NoArgs,
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().BoolVar(&flagRecordsTUI, "tui", false, "Open the interactive records table")
	recordsCmd.Flags().IntVar(&flagRecordsLimit, "limit", 10, "Number of solves to show")
	recordsCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent solves instead of the fastest")
	recordsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all solves of the level")
}

func runRecords(_ *cobra.Command, _ []string) error {
	lvl := levels.Builtin()

	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearSolves(lvl.ID); err != nil {
			return err
		}
		fmt.Printf("Cleared all solves of %s.\n", lvl.Name)
		return nil

	case flagRecordsTUI:
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		return tui.RunRecords(store, lvl.ID, lvl.Name, width, height)
	}

	var solves []storage.Solve
	title := "Fastest Solves"
	if flagRecent {
		title = "Recent Solves"
		solves, err = store.RecentSolves(flagRecordsLimit)
	} else {
		solves, err = store.FastestSolves(lvl.ID, flagRecordsLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s - %s\n\n", title, lvl.Name)

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Println("Run 'sokoban play' to set the first time!")
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Time", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "----", "----")
	for i, s := range solves {
		fmt.Printf("  %-4d  %-16s  %-10s  %s\n",
			i+1, s.Player, tui.FormatDuration(s.Duration), s.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, ok, err := store.BestTime(lvl.ID); err == nil && ok {
		fmt.Printf("\nBest time: %s\n", tui.FormatDuration(best))
	}
	return nil
}
