package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-spacewar/internal/core"
	"github.com/vovakirdan/tui-spacewar/internal/platform/tui"
	"github.com/vovakirdan/tui-spacewar/internal/registry"
	"github.com/vovakirdan/tui-spacewar/internal/storage"
)

var (
	flagBrowse bool
	flagLimit  int
	flagClear  bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recorded match results",
	Long: `Display the most recent finished matches and the win tally.

Columns T/P/H are torpedoes fired, phasers fired and hits scored.

Examples:
  spacewar results
  spacewar results --limit 50
  spacewar results --browse
  spacewar results --clear`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive results browser")
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of matches to print")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded matches")
}

func runResults(_ *cobra.Command, _ []string) {
	title := gameID
	if g, err := registry.Create(gameID); err == nil {
		title = g.Title()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearMatches(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Match results cleared.")
		return
	}

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunResults(store, gameID, title, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	matches, err := store.RecentMatches(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Match Results - %s\n", title)
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'spacewar play' and finish a match to record one!")
		return
	}

	fmt.Printf("  %-5s  %-6s  %-8s  %-9s  %-9s  %s\n", "ID", "Winner", "Time", "P1 T/P/H", "P2 T/P/H", "Date")
	fmt.Printf("  %-5s  %-6s  %-8s  %-9s  %-9s  %s\n", "--", "------", "----", "--------", "--------", "----")

	for _, m := range matches {
		winner := "draw"
		if m.Winner != core.PlayerNone {
			winner = m.Winner.String()
		}
		fmt.Printf("  %-5d  %-6s  %-8s  %-9s  %-9s  %s\n",
			m.ID,
			winner,
			fmt.Sprintf("%.1fs", m.Duration().Seconds()),
			fmt.Sprintf("%d/%d/%d", m.Stats[0].TorpedoesFired, m.Stats[0].PhasersFired, m.Stats[0].Hits),
			fmt.Sprintf("%d/%d/%d", m.Stats[1].TorpedoesFired, m.Stats[1].PhasersFired, m.Stats[1].Hits),
			m.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	wins, err := store.WinCounts(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error counting wins: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
	for _, w := range wins {
		label := "Draws"
		if w.Winner != core.PlayerNone {
			label = w.Winner.String() + " wins"
		}
		fmt.Printf("  %-8s %d\n", label+":", w.Matches)
	}
}
