package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/panelpop/internal/registry"
	"github.com/vovakirdan/panelpop/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show stored sessions for a game",
	Long: `Display the best sessions for a game (default: panel) with a summary
of every stored session.

Examples:
  panelpop scores
  panelpop scores panel_vs --limit 20
  panelpop scores --recent`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to list")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the newest sessions instead of the best")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "panel"
	if len(args) > 0 {
		gameID = args[0]
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w, run 'panelpop list' to see available games", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	list := store.TopSessions
	heading := "High Scores"
	if flagScoresRecent {
		list = store.RecentSessions
		heading = "Recent Sessions"
	}
	sessions, err := list(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving sessions: %w", err)
	}

	p := message.NewPrinter(language.English)
	p.Printf("%s - %s\n\n", heading, game.Title())

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'panelpop play %s' to set the first high score!\n", gameID)
		return nil
	}

	p.Printf("  %-4s  %-6s  %10s  %5s  %5s  %5s  %8s  %s\n", "Rank", "Player", "Score", "Chain", "Combo", "Level", "Time", "Date")
	p.Printf("  %-4s  %-6s  %10s  %5s  %5s  %5s  %8s  %s\n", "----", "------", "-----", "-----", "-----", "-----", "----", "----")
	for i, s := range sessions {
		p.Printf("  %-4d  %-6s  %10d  %4dx  %5d  %5d  %8s  %s\n",
			i+1, s.Player, s.Score, s.HighestChain, s.MaxCombo, s.Level,
			playTime(s.Frames), s.CreatedAt.Format("2006-01-02 15:04"))
	}

	sum, err := store.Summarize(gameID)
	if err != nil {
		return fmt.Errorf("summarizing sessions: %w", err)
	}
	fmt.Println()
	p.Printf("Sessions: %d   Mean: %.1f ± %.1f   Median: %.0f\n",
		sum.Sessions, sum.MeanScore, sum.StdDevScore, sum.MedianScore)
	p.Printf("Best chain: %dx   Max combo: %d   Mean chain: %.2f   Played: %s\n",
		sum.BestChain, sum.MaxCombo, sum.MeanChain, playTime(sum.TotalFrames))
	return nil
}

// playTime formats a frame count at the fixed 60 Hz simulation rate.
func playTime(frames uint64) string {
	secs := frames / 60
	if secs >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", secs/3600, secs/60%60, secs%60)
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
