package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPlayTime(t *testing.T) {
	tests := []struct {
		frames uint64
		want   string
	}{
		{0, "0:00"},
		{59, "0:00"},
		{60 * 75, "1:15"},
		{60 * 3725, "1:02:05"},
	}
	for _, tt := range tests {
		if got := playTime(tt.frames); got != tt.want {
			t.Errorf("playTime(%d) = %q, expected %q", tt.frames, got, tt.want)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got, want := expandHome("~/.arcade/x.log"), filepath.Join(home, ".arcade", "x.log"); got != want {
		t.Errorf("got %q, expected %q", got, want)
	}
	if got := expandHome("./x.log"); got != "./x.log" {
		t.Errorf("got %q, expected the path unchanged", got)
	}
}

func TestSetupRejectsBadFlags(t *testing.T) {
	defer func() {
		flagDifficulty, flagLevel, flagFPS, flagLogLevel = "", 0, 60, "info"
	}()

	tests := []struct {
		name  string
		apply func()
	}{
		{"difficulty", func() { flagDifficulty = "brutal" }},
		{"level", func() { flagLevel = 11 }},
		{"fps", func() { flagFPS = 0 }},
		{"log level", func() { flagLogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagDifficulty, flagLevel, flagFPS, flagLogLevel = "", 0, 60, "info"
			tt.apply()
			if err := setup(nil, nil); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
