package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/panelpop/internal/core"
	"github.com/vovakirdan/panelpop/internal/storage"
)

func sendMenu(m MenuModel, msgs ...tea.Msg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuResult(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24}
	tests := []struct {
		name string
		keys []tea.Msg
		want MenuResult
	}{
		{"select first", []tea.Msg{tea.KeyMsg{Type: tea.KeyEnter}}, MenuResult{GameID: "panel", Config: cfg}},
		{"select versus", []tea.Msg{tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter}}, MenuResult{GameID: "panel_vs", Config: cfg}},
		{"cursor clamps", []tea.Msg{tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter}}, MenuResult{GameID: "panel", Config: cfg}},
		{"scoreboard", []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}}, MenuResult{WantsScoreboard: true, Config: cfg}},
		{"quit", []tea.Msg{runeKey('q')}, MenuResult{Quit: true, Config: cfg}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sendMenu(NewMenuModel(cfg), tt.keys...)
			if got := m.Result(); got != tt.want {
				t.Errorf("got %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestMenuTracksResize(t *testing.T) {
	m := sendMenu(NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}), tea.WindowSizeMsg{Width: 120, Height: 50})
	if got := m.Config(); got.ScreenW != 120 || got.ScreenH != 50 {
		t.Errorf("got %dx%d, expected 120x50", got.ScreenW, got.ScreenH)
	}
	if !strings.Contains(m.View(), "Panel Pop (2P versus)") {
		t.Error("menu does not list the versus game")
	}
}

func TestScoreboardShowsSessions(t *testing.T) {
	store := openStore(t)
	for _, score := range []int{1500, 300, 900} {
		if _, err := store.SaveSession("panel", core.SessionReport{Player: core.Player1, Score: score, Level: 1, HighestChain: 2}); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if len(m.sessions) != 3 || m.sessions[0].Score != 1500 {
		t.Fatalf("got %d sessions, expected 3 with 1500 on top", len(m.sessions))
	}
	view := m.View()
	if !strings.Contains(view, "HIGH SCORES - Panel Pop") {
		t.Error("title is missing")
	}
	if !strings.Contains(view, "1,500") {
		t.Error("scores are not grouped by thousands")
	}
	if !strings.Contains(view, "3 sessions") {
		t.Error("summary line is missing")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.gameCursor != 1 || len(m.sessions) != 0 {
		t.Errorf("after tab: cursor %d with %d sessions, expected 1 with 0", m.gameCursor, len(m.sessions))
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel((*storage.Store)(nil), 60, 20)
	if !strings.Contains(m.View(), "No sessions recorded yet") {
		t.Error("empty scoreboard message is missing")
	}
}

func TestSessionModelFlow(t *testing.T) {
	useDefaultConfig(t)
	s := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 60}, "tester", quietLogger)

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.gameModel == nil {
		t.Fatal("selecting a game did not start it")
	}
	step(TickMsg{})
	step(runeKey('b'))
	if s.gameModel != nil {
		t.Fatal("back did not return to the menu")
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if s.scoreboard == nil {
		t.Fatal("tab did not open the scoreboard")
	}
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.scoreboard != nil {
		t.Fatal("esc did not leave the scoreboard")
	}

	step(runeKey('q'))
	if !s.quitting {
		t.Error("q did not end the session")
	}
}
