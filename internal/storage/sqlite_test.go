package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/panelpop/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, sc := range []int{100, 50, 200} {
		if _, err := store.SaveScore("panel", sc); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("panel_vs", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("panel", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	for i, expected := range []int{200, 100, 50} {
		if scores[i].Score != expected {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, expected)
		}
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be parsed")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		store.SaveScore("panel", (i+1)*100)
	}

	scores, err := store.TopScores("panel", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("panel")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("panel", 100)
	store.SaveScore("panel", 300)
	store.SaveScore("panel", 200)

	high, err = store.HighScore("panel")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreSaveSession(t *testing.T) {
	store := openTestStore(t)

	reports := []core.SessionReport{
		{Player: core.Player1, Score: 1200, Level: 2, Cleared: 90, HighestChain: 3, MaxCombo: 5, GarbageSent: 4, Frames: 7200},
		{Player: core.Player2, Score: 800, Level: 1, Cleared: 40, HighestChain: 2, MaxCombo: 4, Frames: 3600},
	}
	for _, r := range reports {
		if _, err := store.SaveSession("panel_vs", r); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	got, err := store.RecentSessions("panel_vs", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d sessions, expected 2", len(got))
	}
	// newest first
	if got[0].SessionReport != reports[1] {
		t.Errorf("got %+v, expected %+v", got[0].SessionReport, reports[1])
	}
	if got[1].SessionReport != reports[0] {
		t.Errorf("got %+v, expected %+v", got[1].SessionReport, reports[0])
	}

	// sessions also feed the score table
	high, _ := store.HighScore("panel_vs")
	if high != 1200 {
		t.Errorf("high score = %d, expected 1200", high)
	}
}

func TestStoreTopSessions(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []core.SessionReport{
		{Player: core.Player1, Score: 300, HighestChain: 2},
		{Player: core.Player1, Score: 900, HighestChain: 1},
		{Player: core.Player1, Score: 300, HighestChain: 4},
		{Player: core.Player1, Score: 50, HighestChain: 1},
	} {
		if _, err := store.SaveSession("panel", r); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	got, err := store.TopSessions("panel", 3)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	want := []struct{ score, chain int }{{900, 1}, {300, 4}, {300, 2}}
	if len(got) != len(want) {
		t.Fatalf("got %d sessions, expected %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Score != w.score || got[i].HighestChain != w.chain {
			t.Errorf("session %d: got score %d chain %d, expected score %d chain %d",
				i, got[i].Score, got[i].HighestChain, w.score, w.chain)
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession("panel", core.SessionReport{Player: core.Player1, Score: 100, Level: 1, HighestChain: 1})
	store.SaveScore("panel_vs", 300)

	if err := store.ClearScores("panel"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if s, _ := store.TopScores("panel", 10); len(s) != 0 {
		t.Errorf("Expected 0 panel scores after clear, got %d", len(s))
	}
	if s, _ := store.RecentSessions("panel", 0); len(s) != 0 {
		t.Errorf("Expected 0 panel sessions after clear, got %d", len(s))
	}
	if s, _ := store.TopScores("panel_vs", 10); len(s) != 1 {
		t.Error("panel_vs scores should not be affected by clearing panel")
	}
}
