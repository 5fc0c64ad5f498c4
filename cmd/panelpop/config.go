package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/panelpop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check panel configs",
	Long: `Print the built-in panel config, or check a custom one.

The game looks for a config in this order:
  1. --config <path>
  2. ~/.arcade/configs/panel.yaml
  3. ./configs/panel.yaml
  4. the built-in defaults

Examples:
  panelpop config dump > ~/.arcade/configs/panel.yaml
  panelpop config check ./my-panel.yaml`,
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the built-in default config",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Load and validate a config (default: the one the game would use)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := flagConfig
		if len(args) > 0 {
			path = args[0]
		}
		cfg, err := config.LoadPanel(path)
		if err != nil {
			return err
		}
		fmt.Printf("ok: %d columns, %d visible rows, %d tile kinds, start level %d\n",
			cfg.Board.Columns, cfg.Board.VisibleRows, cfg.Board.Kinds, cfg.Difficulty.StartLevel+1)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configCheckCmd)
}
