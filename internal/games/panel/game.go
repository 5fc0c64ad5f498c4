// Package panel implements the panel puzzle game for the platform: solo
// and two-player versus modes built on the stack simulation core.
package panel

import (
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/panelpop/internal/config"
	"github.com/vovakirdan/panelpop/internal/core"
	"github.com/vovakirdan/panelpop/internal/games/panel/stack"
	"github.com/vovakirdan/panelpop/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel stores the 1-based start level set via CLI; 0 keeps the config value.
var startLevel int

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix:          "panel",
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
})

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the config file's own settings.
func SetDifficultyPreset(preset string) {
	p, _ := config.ParsePreset(preset)
	difficultyPreset = p
}

// SetStartLevel sets the starting level (1-10). 0 means use the config.
func SetStartLevel(level int) {
	startLevel = level
}

// SetLogger replaces the package logger.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game is the registry entry for both modes.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.PanelConfig
	match   *Match
	paused  bool
	lost    bool // a board lost during the latest tick
	popups  []popup
}

// popup is a short-lived chain or combo banner over a board.
type popup struct {
	text  string
	ticks int
}

const popupTicks = 90

// New creates a solo game.
func New() *Game {
	return &Game{mode: ModeSolo}
}

// NewVersus creates a two-player game.
func NewVersus() *Game {
	return &Game{mode: ModeVersus}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeVersus {
		return "panel_vs"
	}
	return "panel"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeVersus {
		return "Panel Pop (2P versus)"
	}
	return "Panel Pop"
}

// LoadConfig resolves the panel configuration from the CLI settings.
// A broken config file is logged and replaced by the defaults.
func LoadConfig() config.PanelConfig {
	cfg, err := config.LoadPanel(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultPanelConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPanelPreset(&cfg, difficultyPreset)
	}
	if startLevel > 0 {
		cfg.SetStartLevel(startLevel - 1)
	}
	return cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = LoadConfig()
	g.paused = false
	g.lost = false

	m, err := NewMatch(g.mode, g.cfg.ToStack(), runtime.Seed)
	if err != nil {
		// LoadConfig validated the config, so only a broken default lands here.
		logger.Error("invalid board config, falling back to defaults", "err", err)
		g.cfg = config.DefaultPanelConfig()
		m, _ = NewMatch(g.mode, g.cfg.ToStack(), runtime.Seed)
	}
	g.match = m
	g.popups = make([]popup, g.mode.Players())
	logger.Debug("match started", "mode", g.mode, "seed", runtime.Seed, "level", g.cfg.Difficulty.StartLevel+1)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	g.lost = false
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	inputs := make([]stack.Input, len(g.match.Seats()))
	for i, s := range g.match.Seats() {
		inputs[i] = inputFor(in.Player(s.ID))
	}
	results := g.match.Step(inputs)

	var sessions []core.SessionReport
	for i, res := range results {
		if r, ok := g.handleResult(i, res); ok {
			sessions = append(sessions, r)
		}
	}
	g.tickPopups()
	return core.StepResult{State: g.State(), Sessions: sessions}
}

// handleResult logs notable events of one board and turns a loss into a
// session report.
func (g *Game) handleResult(i int, res stack.StepResult) (core.SessionReport, bool) {
	seat := g.match.Seats()[i]
	if res.LevelUp {
		logger.Info("level up", "player", seat.ID, "level", seat.Board.Level()+1)
	}
	if res.Cleared > 0 {
		switch {
		case res.Chain > 1:
			g.popups[i] = popup{text: chainLabel(res.Chain), ticks: popupTicks}
		case res.Combo > 3:
			g.popups[i] = popup{text: comboLabel(res.Combo), ticks: popupTicks}
		}
	}
	if res.Loss == nil {
		return core.SessionReport{}, false
	}

	g.lost = true
	r := sessionReport(seat.ID, res.Loss.Stats, res.Loss.Level)
	logger.Info("board topped out",
		"player", seat.ID,
		"score", r.Score,
		"chain", r.HighestChain,
		"level", r.Level,
		"frames", r.Frames,
	)
	return r, true
}

func (g *Game) tickPopups() {
	for i := range g.popups {
		if g.popups[i].ticks > 0 {
			g.popups[i].ticks--
		}
	}
}

// EndSessions reports the sessions still in progress, for saving on exit.
func (g *Game) EndSessions() []core.SessionReport {
	var out []core.SessionReport
	for _, s := range g.match.Seats() {
		st := s.Board.Stats()
		if st.Frames == 0 {
			continue
		}
		out = append(out, sessionReport(s.ID, st, s.Board.Level()))
	}
	return out
}

func sessionReport(id core.PlayerID, st stack.Stats, level int) core.SessionReport {
	return core.SessionReport{
		Player:       id,
		Score:        st.Score,
		Level:        level + 1,
		Cleared:      st.Cleared,
		HighestChain: max(st.HighestChain, 1),
		MaxCombo:     st.MaxCombo,
		GarbageSent:  st.GarbageSent,
		Frames:       uint64(st.Frames),
	}
}

// inputFor maps platform actions onto board signals.
func inputFor(f core.InputFrame) stack.Input {
	return stack.Input{
		Left:  f.Has(core.ActionLeft),
		Right: f.Has(core.ActionRight),
		Up:    f.Has(core.ActionUp),
		Down:  f.Has(core.ActionDown),
		Swap:  f.Has(core.ActionSwap),
		Raise: f.Has(core.ActionRaise),
	}
}

// State returns the current game state as seen from player 1.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused, GameOver: g.lost}
	if g.match == nil {
		return st
	}
	b := g.match.Seats()[0].Board
	st.Score = b.Stats().Score
	st.Level = b.Level() + 1
	st.Chain = max(b.Stats().HighestChain, 1)
	return st
}

// Match exposes the running match for replay recording.
func (g *Game) Match() *Match { return g.match }

// PanelConfig returns the configuration the match was built from.
func (g *Game) PanelConfig() config.PanelConfig { return g.cfg }

// Seed returns the seed the match was built from.
func (g *Game) Seed() int64 { return g.runtime.Seed }

func init() {
	registry.Register("panel", func() registry.Game {
		return New()
	})
	registry.Register("panel_vs", func() registry.Game {
		return NewVersus()
	})
}
