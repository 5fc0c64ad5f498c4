package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/panelpop/internal/config"
	"github.com/vovakirdan/panelpop/internal/core"
	"github.com/vovakirdan/panelpop/internal/games/panel"
	"github.com/vovakirdan/panelpop/internal/registry"
	"github.com/vovakirdan/panelpop/internal/replay"
	"github.com/vovakirdan/panelpop/internal/storage"
)

// Recordable is implemented by games whose matches can be captured as
// replays.
type Recordable interface {
	Match() *panel.Match
	PanelConfig() config.PanelConfig
	Seed() int64
}

// sessionEnder is implemented by games that can report sessions still in
// progress when the player leaves.
type sessionEnder interface {
	EndSessions() []core.SessionReport
}

// Options tunes a game model.
type Options struct {
	// RecordPath, when set, captures the latest match of a Recordable game
	// into a replay file on exit.
	RecordPath string

	// Embedded models run inside another model: Back returns control to it
	// instead of being ignored.
	Embedded bool

	Logger *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	help       help.Model
	inputFrame core.MultiInputFrame
	gameState  core.GameState
	rec        *recorder
	logger     *log.Logger
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	players := 1
	if strings.HasSuffix(game.ID(), "_vs") {
		players = 2
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		store:      store,
		config:     cfg,
		opts:       opts,
		keys:       KeyMapFor(players),
		help:       help.New(),
		inputFrame: core.NewMultiInputFrame(),
		logger:     logger,
	}
	m.help.Width = cfg.ScreenW

	if opts.RecordPath != "" {
		if rg, ok := game.(Recordable); ok {
			m.rec = &recorder{path: opts.RecordPath, id: game.ID(), game: rg}
		} else {
			logger.Warn("game does not support replays", "game", game.ID())
		}
	}
	return m
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.rec != nil {
		m.rec.start()
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.finish()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.restart()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.opts.Embedded {
			m.finish()
			m.backToMenu = true
		}
		return m, nil
	}

	m.keys.MapKey(msg, &m.inputFrame)
	return m, nil
}

// handleResize only resizes the buffer; the boards do not depend on the
// terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the game once with the keys pressed since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if m.rec != nil {
		m.rec.capture()
	}
	m.saveSessions(result.Sessions)

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// restart ends the running sessions and starts a new match on a fresh seed.
func (m *Model) restart() {
	m.finish()
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.inputFrame.Clear()
	if m.rec != nil {
		m.rec.start()
	}
}

// finish stores the sessions still in progress and writes the replay.
func (m *Model) finish() {
	if g, ok := m.game.(sessionEnder); ok {
		m.saveSessions(g.EndSessions())
	}
	if m.rec != nil {
		if err := m.rec.save(); err != nil {
			m.logger.Error("cannot save replay", "path", m.rec.path, "err", err)
		} else {
			m.logger.Debug("replay saved", "path", m.rec.path, "frames", m.rec.rec.Frames())
		}
	}
}

func (m *Model) saveSessions(reports []core.SessionReport) {
	if m.store == nil {
		return
	}
	for _, r := range reports {
		if r.Score == 0 && r.Cleared == 0 {
			continue
		}
		if _, err := m.store.SaveSession(m.game.ID(), r); err != nil {
			m.logger.Error("cannot save session", "player", r.Player, "err", err)
		}
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the game above the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(m.keys)
	helpLines := strings.Count(helpView, "\n") + 1
	h := max(m.config.ScreenH-helpLines, 0)
	if m.screen.Width() != m.config.ScreenW || m.screen.Height() != h {
		m.screen.Resize(m.config.ScreenW, h)
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpView
}

// IsQuitting reports whether the player asked to quit entirely.
func (m Model) IsQuitting() bool { return m.quitting }

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool { return m.backToMenu }

// State returns the game state after the latest tick.
func (m Model) State() core.GameState { return m.gameState }

// Run starts a Bubble Tea program for one game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// recorder captures the inputs of a Recordable game frame by frame.
type recorder struct {
	path  string
	id    string
	game  Recordable
	rec   *replay.Recorder
	frame uint64
}

// start begins a new recording for the game's current match.
func (r *recorder) start() {
	m := r.game.Match()
	r.rec = replay.NewRecorder(r.id, r.game.Seed(), r.game.PanelConfig(), len(m.Seats()))
	r.frame = m.Frame()
}

// capture records the inputs of the frame just stepped. Paused ticks do
// not advance the match and are skipped.
func (r *recorder) capture() {
	m := r.game.Match()
	if m.Frame() == r.frame {
		return
	}
	r.rec.Record(m.LastInputs())
	r.frame = m.Frame()
}

func (r *recorder) save() error {
	if r.rec == nil || r.rec.Frames() == 0 {
		return nil
	}
	return replay.Save(r.path, r.rec.Replay(r.game.Match().Checksums()))
}
