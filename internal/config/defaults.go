package config

import (
	_ "embed"

	"github.com/vovakirdan/panelpop/internal/games/panel/stack"
)

//go:embed defaults/panel.yaml
var defaultPanelYAML []byte

// DefaultPanelConfig returns the hardcoded panel configuration. It mirrors
// the embedded defaults/panel.yaml and backs it up if the embed is broken.
func DefaultPanelConfig() PanelConfig {
	s := stack.DefaultConfig()
	return PanelConfig{
		Board: PanelBoard{
			Columns:     s.Columns,
			VisibleRows: s.VisibleRows,
			HiddenRows:  s.HiddenRows,
			StartHeight: s.StartHeight,
			Kinds:       s.Kinds,
		},
		Timing: PanelTiming{
			LandTime:         s.LandTime,
			SwapTime:         s.SwapTime,
			RaiseBlockedTime: s.RaiseBlockedTime,
			SmoothRaise:      s.SmoothRaise,
			CellHeight:       s.CellHeight,
			CellWidth:        s.CellWidth,
		},
		Levels: PanelLevels{
			Hover: s.Hover[:],
			Flash: s.Flash[:],
			Face:  s.Face[:],
			Pop:   s.Pop[:],
			Raise: s.Raise[:],
			Stop:  s.Stop[:],
		},
		Garbage: PanelGarbage{
			ComboWidths:  s.ComboWidths,
			ChainHeights: s.ChainHeights,
		},
		Scoring: PanelScoring{
			ComboBonus: s.ComboBonus,
			ChainBonus: s.ChainBonus,
		},
		Difficulty: PanelDifficulty{
			StartLevel:    s.StartLevel,
			LevelUpClears: s.LevelUpClears,
		},
	}
}

// DefaultYAML returns the embedded default panel configuration.
func DefaultYAML() []byte {
	return defaultPanelYAML
}
