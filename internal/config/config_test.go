package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/panelpop/internal/games/panel/stack"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg PanelConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if got, expected := cfg.ToStack(), stack.DefaultConfig(); !reflect.DeepEqual(got, expected) {
		t.Errorf("embedded config = %+v, expected %+v", got, expected)
	}
}

func TestLoadPanelCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "panel.yaml")
	data := strings.Replace(string(DefaultYAML()), "start_level: 0", "start_level: 4", 1)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPanel(path)
	if err != nil {
		t.Fatalf("LoadPanel: %v", err)
	}
	if cfg.Difficulty.StartLevel != 4 {
		t.Errorf("start level = %d, expected 4", cfg.Difficulty.StartLevel)
	}
}

func TestLoadPanelErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		missing bool
		wantSub string
	}{
		{name: "missing file", missing: true, wantSub: "failed to read config"},
		{name: "bad yaml", content: "board: [", wantSub: "failed to parse config"},
		{
			name:    "short level table",
			content: strings.Replace(string(DefaultYAML()), "hover: [12, 12, 11, 10, 9, 8, 7, 6, 5, 4]", "hover: [12, 12]", 1),
			wantSub: "levels.hover",
		},
		{
			name:    "land time not multiple of 3",
			content: strings.Replace(string(DefaultYAML()), "land_time: 12", "land_time: 10", 1),
			wantSub: "land time",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if !tc.missing {
				if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			_, err := LoadPanel(path)
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Errorf("error = %q, expected it to mention %q", err, tc.wantSub)
			}
		})
	}
}

func TestApplyPanelPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		wantLevel  int
		wantLevelU int
	}{
		{DifficultyEasy, 0, 50},
		{DifficultyNormal, 2, 50},
		{DifficultyHard, 5, 50},
		{DifficultyFixed, 3, 0},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPanelConfig()
			cfg.Difficulty.StartLevel = 3
			ApplyPanelPreset(&cfg, tc.preset)
			if cfg.Difficulty.StartLevel != tc.wantLevel {
				t.Errorf("start level = %d, expected %d", cfg.Difficulty.StartLevel, tc.wantLevel)
			}
			if cfg.Difficulty.LevelUpClears != tc.wantLevelU {
				t.Errorf("level up clears = %d, expected %d", cfg.Difficulty.LevelUpClears, tc.wantLevelU)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset should reject unknown names")
	}
}

func TestSetStartLevelClamps(t *testing.T) {
	cfg := DefaultPanelConfig()
	cfg.SetStartLevel(42)
	if cfg.Difficulty.StartLevel != stack.Levels-1 {
		t.Errorf("start level = %d, expected %d", cfg.Difficulty.StartLevel, stack.Levels-1)
	}
	cfg.SetStartLevel(-3)
	if cfg.Difficulty.StartLevel != 0 {
		t.Errorf("start level = %d, expected 0", cfg.Difficulty.StartLevel)
	}
}

func TestLevelTableRepeatsLastEntry(t *testing.T) {
	got := levelTable([]int{5, 7})
	for i := 1; i < stack.Levels; i++ {
		if got[i] != 7 {
			t.Fatalf("levelTable[%d] = %d, expected 7", i, got[i])
		}
	}
	if got[0] != 5 {
		t.Errorf("levelTable[0] = %d, expected 5", got[0])
	}
}
