package stack

import "testing"

// testConfig disables the slow raise so boards only move when a test
// asks them to.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Raise = [Levels]int{}
	cfg.Debug = true
	return cfg
}

func newTestBoard(t *testing.T, cfg Config, seed int64) *Board {
	t.Helper()
	b, err := NewBoard(cfg, NewRandomGenerator(seed, cfg.Kinds))
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return b
}

// emptyBoard returns a board whose playfield is empty. The staging row
// keeps its generated tiles.
func emptyBoard(t *testing.T) *Board {
	t.Helper()
	b := newTestBoard(t, testConfig(), 1)
	for i := b.grid.Columns; i < b.grid.Len(); i++ {
		b.grid.clear(i)
	}
	return b
}

func setTile(b *Board, x, y int, k Kind) *Cell {
	c := b.grid.At(x, y)
	c.Kind = k
	c.State = StateIdle
	return c
}

func stepN(b *Board, n int, in Input) []StepResult {
	out := make([]StepResult, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, b.Step(in))
	}
	return out
}
