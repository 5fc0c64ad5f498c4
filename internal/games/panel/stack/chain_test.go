package stack

import "testing"

func TestChainFromFallingTile(t *testing.T) {
	b := emptyBoard(t)
	// column 2 clears first; the 1 on top then falls into row 2 and
	// completes 1,1,1 as a chain.
	setTile(b, 0, 1, 3)
	setTile(b, 1, 1, 4)
	setTile(b, 2, 1, 3)
	setTile(b, 0, 2, 1)
	setTile(b, 1, 2, 1)
	setTile(b, 2, 2, 2)
	setTile(b, 2, 3, 2)
	setTile(b, 2, 4, 2)
	setTile(b, 2, 5, 1)

	first := b.Step(Input{})
	if first.Cleared != 3 || first.Chain != 1 {
		t.Fatalf("first clear: cleared=%d chain=%d, expected 3/1", first.Cleared, first.Chain)
	}
	if len(first.Garbage) != 0 {
		t.Errorf("first clear sent garbage %v, expected none", first.Garbage)
	}

	var chained *StepResult
	for i := 0; i < 300; i++ {
		res := b.Step(Input{})
		if res.Cleared > 0 {
			chained = &res
			break
		}
	}
	if chained == nil {
		t.Fatal("second clear never happened")
	}
	if chained.Chain != 2 {
		t.Errorf("Chain = %d, expected 2", chained.Chain)
	}
	want := GarbageDrop{Width: b.cfg.Columns, Height: 1}
	if len(chained.Garbage) != 1 || chained.Garbage[0] != want {
		t.Errorf("Garbage = %v, expected [%v]", chained.Garbage, want)
	}
	if got := b.Stats().HighestChain; got != 2 {
		t.Errorf("HighestChain = %d, expected 2", got)
	}
	if b.chain.LastChain != 2 {
		t.Errorf("LastChain = %d, expected 2", b.chain.LastChain)
	}
}

func TestChainTrackerRecord(t *testing.T) {
	ct := newChainTracker()
	seq := []bool{false, true, true, false, true, false}
	wantChain := []int{1, 2, 3, 1, 2, 1}
	last := ct.LastChain
	for i, had := range seq {
		ct.record(had)
		if ct.Chain != wantChain[i] {
			t.Errorf("step %d: Chain = %d, expected %d", i, ct.Chain, wantChain[i])
		}
		if ct.LastChain < last {
			t.Errorf("step %d: LastChain decreased from %d to %d", i, last, ct.LastChain)
		}
		last = ct.LastChain
	}
	if ct.LastChain != 3 {
		t.Errorf("LastChain = %d, expected 3", ct.LastChain)
	}
}

func TestGarbageSize(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		combo, chain int
		want         GarbageDrop
		ok           bool
	}{
		{3, 1, GarbageDrop{}, false},
		{4, 1, GarbageDrop{Width: 3, Height: 1}, true},
		{5, 1, GarbageDrop{Width: 4, Height: 1}, true},
		{7, 1, GarbageDrop{Width: 6, Height: 1}, true},
		{12, 1, GarbageDrop{Width: 6, Height: 1}, true},
		{3, 2, GarbageDrop{Width: 6, Height: 1}, true},
		{3, 3, GarbageDrop{Width: 6, Height: 2}, true},
		{6, 5, GarbageDrop{Width: 6, Height: 4}, true},
		{3, 13, GarbageDrop{Width: 6, Height: 4}, true},
	}
	for _, tc := range tests {
		got, ok := cfg.garbageSize(tc.combo, tc.chain)
		if ok != tc.ok || got != tc.want {
			t.Errorf("garbageSize(%d, %d) = %v, %v, expected %v, %v", tc.combo, tc.chain, got, ok, tc.want, tc.ok)
		}
	}
}

func TestScore(t *testing.T) {
	b := emptyBoard(t)
	tests := []struct {
		n, combo, chain int
		expected        int
	}{
		{3, 3, 1, 30},
		{4, 4, 1, 40 + 20},
		{3, 3, 2, 30 + 50},
		{5, 5, 3, 50 + 30 + 80},
	}
	for _, tc := range tests {
		if got := b.score(tc.n, tc.combo, tc.chain); got != tc.expected {
			t.Errorf("score(%d, %d, %d) = %d, expected %d", tc.n, tc.combo, tc.chain, got, tc.expected)
		}
	}
}

func TestLevelUp(t *testing.T) {
	cfg := testConfig()
	cfg.LevelUpClears = 3
	b := newTestBoard(t, cfg, 1)
	for i := b.grid.Columns; i < b.grid.Len(); i++ {
		b.grid.clear(i)
	}
	for x := 0; x < 3; x++ {
		setTile(b, x, 1, 0)
	}

	res := b.Step(Input{})
	if !res.LevelUp {
		t.Error("LevelUp = false, expected true")
	}
	if b.Level() != 1 {
		t.Errorf("Level = %d, expected 1", b.Level())
	}
}
