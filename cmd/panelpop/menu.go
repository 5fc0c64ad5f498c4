package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/panelpop/internal/platform/tui"
	"github.com/vovakirdan/panelpop/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game and Tab for the
scoreboard. Quitting a game returns you to the menu.

Examples:
  panelpop menu
  panelpop menu --fps 30
  panelpop menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	uiLogger, closeLog := interactiveLogger()
	defer closeLog()

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(res.GameID)
		if err != nil {
			uiLogger.Error("cannot create game", "game", res.GameID, "err", err)
			continue
		}

		run := cfg
		if run.Seed == 0 {
			run.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, store, run, tui.Options{Logger: uiLogger}); err != nil {
			return err
		}
	}
}
