package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/panelpop/internal/core"
)

// PlayerKeys holds the board controls of one player.
type PlayerKeys struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Swap  key.Binding
	Raise key.Binding
}

func (p PlayerKeys) bindings() []key.Binding {
	return []key.Binding{p.Up, p.Down, p.Left, p.Right, p.Swap, p.Raise}
}

// actions pairs every binding with the action it produces.
func (p PlayerKeys) actions() []struct {
	b key.Binding
	a core.Action
} {
	return []struct {
		b key.Binding
		a core.Action
	}{
		{p.Up, core.ActionUp},
		{p.Down, core.ActionDown},
		{p.Left, core.ActionLeft},
		{p.Right, core.ActionRight},
		{p.Swap, core.ActionSwap},
		{p.Raise, core.ActionRaise},
	}
}

// KeyMap is the in-game key layout: per-player board controls plus the
// platform keys shared by everyone.
type KeyMap struct {
	Players    []PlayerKeys // index 0 is Player1
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Help       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// SoloKeyMap returns the single-player layout. Both arrow keys and WASD
// drive the cursor.
func SoloKeyMap() KeyMap {
	k := globalKeys()
	k.Players = []PlayerKeys{{
		Up:    key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right: key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
		Swap:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "swap")),
		Raise: key.NewBinding(key.WithKeys("z", "c"), key.WithHelp("z/c", "raise")),
	}}
	return k
}

// VersusKeyMap returns the shared-keyboard layout for two players.
func VersusKeyMap() KeyMap {
	k := globalKeys()
	k.Players = []PlayerKeys{
		{
			Up:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "P1 up")),
			Down:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "P1 down")),
			Left:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "P1 left")),
			Right: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "P1 right")),
			Swap:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "P1 swap")),
			Raise: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "P1 raise")),
		},
		{
			Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "P2 up")),
			Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "P2 down")),
			Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "P2 left")),
			Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "P2 right")),
			Swap:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "P2 swap")),
			Raise: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "P2 raise")),
		},
	}
	return k
}

// KeyMapFor picks the layout for the given number of players.
func KeyMapFor(players int) KeyMap {
	if players > 1 {
		return VersusKeyMap()
	}
	return SoloKeyMap()
}

func globalKeys() KeyMap {
	return KeyMap{
		Pause:      key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p/esc", "pause")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Back:       key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "menu")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	out := []key.Binding{k.Pause, k.Help, k.Quit}
	if len(k.Players) > 0 {
		p := k.Players[0]
		out = append([]key.Binding{p.Swap, p.Raise}, out...)
	}
	return out
}

// FullHelp returns key bindings for the full help view: one column per
// player and one for the platform keys.
func (k KeyMap) FullHelp() [][]key.Binding {
	cols := make([][]key.Binding, 0, len(k.Players)+1)
	for _, p := range k.Players {
		cols = append(cols, p.bindings())
	}
	return append(cols, []key.Binding{k.Pause, k.Restart, k.Back, k.Screenshot, k.Help, k.Quit})
}

// MapKey records a board key press into frame and reports whether the key
// was consumed. Pause is delivered through Player1's frame.
func (k KeyMap) MapKey(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	if key.Matches(msg, k.Pause) {
		frame.Press(core.Player1, core.ActionPause)
		return true
	}
	for i, p := range k.Players {
		id := core.PlayerID(i + 1)
		for _, ba := range p.actions() {
			if key.Matches(msg, ba.b) {
				frame.Press(id, ba.a)
				return true
			}
		}
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MenuKeyMap holds the menu navigation keys.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Back       key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// DefaultMenuKeyMap returns the menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/j", "down")),
		Select:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Back:       key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("esc", "back")),
		Scoreboard: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Scoreboard, k.Back, k.Quit}}
}

// Action translates a key to a menu action.
func (k MenuKeyMap) Action(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, k.Quit):
		return MenuActionQuit
	case key.Matches(msg, k.Up):
		return MenuActionUp
	case key.Matches(msg, k.Down):
		return MenuActionDown
	case key.Matches(msg, k.Select):
		return MenuActionSelect
	case key.Matches(msg, k.Back):
		return MenuActionBack
	case key.Matches(msg, k.Scoreboard):
		return MenuActionScoreboard
	}
	return MenuActionNone
}
