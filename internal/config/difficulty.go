package config

import "github.com/vovakirdan/panelpop/internal/games/panel/stack"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset returns the preset named s, or false if s is not one.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}

// StartLevelForPreset returns the 0-based start level for a preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 2
	case DifficultyHard:
		return 5
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables level progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPanelPreset modifies the config based on a difficulty preset.
// The fixed preset keeps the configured start level and turns off
// level-ups; the others set the start level and keep progression.
func ApplyPanelPreset(cfg *PanelConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.LevelUpClears = 0
		return
	}
	cfg.Difficulty.StartLevel = StartLevelForPreset(preset)
	if cfg.Difficulty.LevelUpClears == 0 {
		cfg.Difficulty.LevelUpClears = DefaultPanelConfig().Difficulty.LevelUpClears
	}
}

// SetStartLevel overrides the start level, clamped to the valid range.
func (c *PanelConfig) SetStartLevel(level int) {
	c.Difficulty.StartLevel = max(0, min(level, stack.Levels-1))
}
