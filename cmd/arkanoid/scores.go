package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/platform/tui"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

var (
	flagPlain  bool
	flagRecent bool
	flagLimit  int
	flagReset  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show past results",
	Long: `Display the score history. In a terminal this opens an interactive
table; with --plain (or when output is redirected) it prints a list.

Examples:
  arkanoid scores
  arkanoid scores --plain --limit 20
  arkanoid scores --plain --recent
  arkanoid scores --reset`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain list instead of the interactive table")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List most recent games instead of top scores")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries in the plain list")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all results and the stored record")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearScores(); err != nil {
			return err
		}
		if err := store.DeletePrefs(arkanoid.PrefsNamespace); err != nil {
			return err
		}
		fmt.Println("Score history cleared.")
		return nil
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	return printScores(store)
}

func printScores(store *storage.Store) error {
	var (
		scores []storage.ScoreEntry
		err    error
		title  = "High Scores"
	)
	if flagRecent {
		scores, err = store.RecentScores(flagLimit)
		title = "Recent Games"
	} else {
		scores, err = store.TopScores(flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s - Arkanoid\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'arkanoid play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %s\n", "Rank", "Score", "Level", "Result", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %s\n", "----", "-----", "-----", "------", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %-8s  %s\n", i+1, entry.Score, entry.Level, entry.Outcome, dateStr)
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Best: %d  Games: %d  Wins: %d\n", stats.HighScore, stats.GamesCount, stats.Wins)
	}
	return nil
}
