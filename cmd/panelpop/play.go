package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/panelpop/internal/core"
	"github.com/vovakirdan/panelpop/internal/games/panel"
	"github.com/vovakirdan/panelpop/internal/platform/tui"
	"github.com/vovakirdan/panelpop/internal/registry"
	"github.com/vovakirdan/panelpop/internal/storage"
)

var (
	flagRecord  string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: panel).

Solo controls:
  Arrows/WASD  - Move cursor
  Space/X      - Swap the two tiles under the cursor
  Z/C          - Raise the stack one row
  P/Esc        - Pause
  R            - Restart with a new seed
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Versus controls (shared keyboard):
  P1: WASD, Space to swap, E to raise
  P2: Arrows, Enter to swap, / to raise

Difficulty options:
  easy   - Start at level 1, level up as you clear
  normal - Start at level 3
  hard   - Start at level 6
  fixed  - Never level up

Examples:
  panelpop play
  panelpop play panel_vs
  panelpop play --difficulty hard --level 8
  panelpop play --seed 42 --record ./match.pnlr
  panelpop play --config ./my-panel.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write a replay of the latest match to this file on exit")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.arcade/panelpop.log", "Where game logs go while the terminal UI is up")
	menuCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.arcade/panelpop.log", "Where game logs go while the terminal UI is up")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "panel"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'panelpop list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	uiLogger, closeLog := interactiveLogger()
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	if err := tui.Run(game, store, cfg, tui.Options{RecordPath: flagRecord, Logger: uiLogger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	if flagRecord != "" {
		logger.Info("replay written", "path", flagRecord)
	}
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, sessions will not be saved", "err", err)
		return nil
	}
	return store
}

// interactiveLogger moves logging into a file while the alternate screen is
// up. If the file cannot be opened logs are dropped.
func interactiveLogger() (*log.Logger, func()) {
	out := log.NewWithOptions(io.Discard, log.Options{
		Prefix:          "panelpop",
		ReportTimestamp: true,
		Level:           logger.GetLevel(),
	})

	// panel logs to stderr by default, which would tear the screen
	panel.SetLogger(out.WithPrefix("panel"))
	restore := func() { panel.SetLogger(logger.WithPrefix("panel")) }

	path := expandHome(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.Warn("cannot create log directory", "err", err)
		return out, restore
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("cannot open log file", "path", path, "err", err)
		return out, restore
	}
	out.SetOutput(f)
	panel.SetLogger(out.WithPrefix("panel"))
	return out, func() {
		restore()
		f.Close()
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
