// panelpop is a terminal panel puzzle game: swap tiles, line up three of a
// kind, chain clears and bury your opponent in garbage.
//
// Usage:
//
//	panelpop list                - List available games
//	panelpop play [game]         - Play a game (panel or panel_vs)
//	panelpop menu                - Pick games interactively
//	panelpop serve               - Start SSH server for remote play
//	panelpop scores [game]       - Show stored sessions for a game
//	panelpop replay verify FILE  - Re-simulate a recorded match
//	panelpop config dump         - Print the default config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Use a custom panel.yaml
//	--difficulty <name>   - easy, normal, hard or fixed
//	--level <n>           - Start level 1-10
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/panelpop/internal/config"
	"github.com/vovakirdan/panelpop/internal/games/panel"
	"github.com/vovakirdan/panelpop/internal/games/panel/stack"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLogLevel   string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix:          "panelpop",
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "panelpop",
	Short: "Panel Pop - a falling-block match puzzle in your terminal",
	Long: `Panel Pop is a panel puzzle game for the terminal. Swap horizontally
adjacent tiles to line up three or more of a color, chain clears as tiles
fall, and raise the stack before it reaches the top.

Available commands:
  list     - Show all available games
  play     - Play solo or two-player versus
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View stored sessions
  replay   - Inspect and verify recorded matches
  config   - Print or check panel configs

Examples:
  panelpop play
  panelpop play panel_vs --difficulty hard
  panelpop play --seed 42 --record ./match.pnlr
  panelpop replay verify ./match.pnlr
  panelpop serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom panel config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", 0, "Start level 1-10 (0 = from config or preset)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// setup validates the shared flags and hands them to the game package.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)
	panel.SetLogger(logger.WithPrefix("panel"))

	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (expected easy, normal, hard or fixed)", flagDifficulty)
		}
	}
	if flagLevel < 0 || flagLevel > stack.Levels {
		return fmt.Errorf("--level must be between 1 and %d, got %d", stack.Levels, flagLevel)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	panel.SetConfigPath(flagConfig)
	panel.SetDifficultyPreset(flagDifficulty)
	panel.SetStartLevel(flagLevel)
	return nil
}
