// Package config provides YAML-based configuration loading and difficulty
// presets for the panel game.
package config

import (
	"fmt"

	"github.com/vovakirdan/panelpop/internal/games/panel/stack"
)

// PanelConfig contains all configuration for the panel game.
type PanelConfig struct {
	Board      PanelBoard      `yaml:"board"`
	Timing     PanelTiming     `yaml:"timing"`
	Levels     PanelLevels     `yaml:"levels"`
	Garbage    PanelGarbage    `yaml:"garbage"`
	Scoring    PanelScoring    `yaml:"scoring"`
	Difficulty PanelDifficulty `yaml:"difficulty"`
	Debug      bool            `yaml:"debug"` // check board invariants every frame
}

// PanelBoard defines the playfield dimensions.
type PanelBoard struct {
	Columns     int `yaml:"columns"`
	VisibleRows int `yaml:"visible_rows"` // staging row included
	HiddenRows  int `yaml:"hidden_rows"`
	StartHeight int `yaml:"start_height"`
	Kinds       int `yaml:"kinds"`
}

// PanelTiming defines level-independent frame counts and offsets.
type PanelTiming struct {
	LandTime         int `yaml:"land_time"`
	SwapTime         int `yaml:"swap_time"`
	RaiseBlockedTime int `yaml:"raise_blocked_time"`
	SmoothRaise      int `yaml:"smooth_raise"`
	CellHeight       int `yaml:"cell_height"`
	CellWidth        int `yaml:"cell_width"`
}

// PanelLevels holds one entry per difficulty level for every table.
type PanelLevels struct {
	Hover []int `yaml:"hover"`
	Flash []int `yaml:"flash"`
	Face  []int `yaml:"face"`
	Pop   []int `yaml:"pop"`
	Raise []int `yaml:"raise"`
	Stop  []int `yaml:"stop"`
}

// PanelGarbage defines the garbage size tables.
type PanelGarbage struct {
	ComboWidths  []int `yaml:"combo_widths"`  // combo 4, 5, 6, 7+
	ChainHeights []int `yaml:"chain_heights"` // chain 2, 3, 4, 5+
}

// PanelScoring defines the bonus tables.
type PanelScoring struct {
	ComboBonus []int `yaml:"combo_bonus"`
	ChainBonus []int `yaml:"chain_bonus"`
}

// PanelDifficulty defines level progression.
type PanelDifficulty struct {
	StartLevel    int `yaml:"start_level"`     // 0-based
	LevelUpClears int `yaml:"level_up_clears"` // 0 keeps the level fixed
}

// Validate checks table lengths and then the resulting board config.
func (c PanelConfig) Validate() error {
	tables := []struct {
		name string
		vals []int
	}{
		{"hover", c.Levels.Hover},
		{"flash", c.Levels.Flash},
		{"face", c.Levels.Face},
		{"pop", c.Levels.Pop},
		{"raise", c.Levels.Raise},
		{"stop", c.Levels.Stop},
	}
	for _, t := range tables {
		if len(t.vals) != stack.Levels {
			return fmt.Errorf("config: levels.%s has %d entries, expected %d", t.name, len(t.vals), stack.Levels)
		}
	}
	if err := c.ToStack().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ToStack converts the YAML form into the board configuration.
// Level tables shorter than stack.Levels repeat their last entry.
func (c PanelConfig) ToStack() stack.Config {
	return stack.Config{
		Columns:          c.Board.Columns,
		VisibleRows:      c.Board.VisibleRows,
		HiddenRows:       c.Board.HiddenRows,
		StartHeight:      c.Board.StartHeight,
		Kinds:            c.Board.Kinds,
		LandTime:         c.Timing.LandTime,
		SwapTime:         c.Timing.SwapTime,
		RaiseBlockedTime: c.Timing.RaiseBlockedTime,
		SmoothRaise:      c.Timing.SmoothRaise,
		CellHeight:       c.Timing.CellHeight,
		CellWidth:        c.Timing.CellWidth,
		Hover:            levelTable(c.Levels.Hover),
		Flash:            levelTable(c.Levels.Flash),
		Face:             levelTable(c.Levels.Face),
		Pop:              levelTable(c.Levels.Pop),
		Raise:            levelTable(c.Levels.Raise),
		Stop:             levelTable(c.Levels.Stop),
		StartLevel:       c.Difficulty.StartLevel,
		LevelUpClears:    c.Difficulty.LevelUpClears,
		ComboWidths:      append([]int(nil), c.Garbage.ComboWidths...),
		ChainHeights:     append([]int(nil), c.Garbage.ChainHeights...),
		ComboBonus:       append([]int(nil), c.Scoring.ComboBonus...),
		ChainBonus:       append([]int(nil), c.Scoring.ChainBonus...),
		Debug:            c.Debug,
	}
}

func levelTable(vals []int) [stack.Levels]int {
	var out [stack.Levels]int
	for i := range out {
		switch {
		case i < len(vals):
			out[i] = vals[i]
		case len(vals) > 0:
			out[i] = vals[len(vals)-1]
		}
	}
	return out
}
