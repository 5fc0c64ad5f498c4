package stack

import "testing"

func TestRunOfThreeClears(t *testing.T) {
	b := emptyBoard(t)
	for y := 1; y <= 3; y++ {
		setTile(b, 0, y, 3)
	}

	res := b.Step(Input{})

	if res.Cleared != 3 {
		t.Fatalf("Cleared = %d, expected 3", res.Cleared)
	}
	tm := b.timing()
	prev := -1
	for y := 1; y <= 3; y++ {
		c := b.grid.At(0, y)
		if c.State != StateClear {
			t.Fatalf("cell (0,%d) state %s, expected Clear", y, c.State)
		}
		if c.ClearTime <= prev {
			t.Errorf("cell (0,%d) clear time %d not after %d", y, c.ClearTime, prev)
		}
		prev = c.ClearTime
		if want := tm.flash + tm.face + tm.pop*3; c.Counter != want {
			t.Errorf("cell (0,%d) counter %d, expected %d", y, c.Counter, want)
		}
	}
}

func TestRunOfTwoNeverClears(t *testing.T) {
	b := emptyBoard(t)
	setTile(b, 0, 1, 3)
	setTile(b, 0, 2, 3)
	setTile(b, 0, 3, 1)
	setTile(b, 1, 1, 2)
	setTile(b, 2, 1, 2)

	for i, res := range stepN(b, 120, Input{}) {
		if res.Cleared != 0 {
			t.Fatalf("frame %d cleared %d tiles, expected none", i+1, res.Cleared)
		}
	}
}

func TestStagingRowNotComboable(t *testing.T) {
	b := emptyBoard(t)
	for x := 0; x < 3; x++ {
		setTile(b, x, 0, 2)
	}
	if b.comboable(b.grid.Index(0, 0)) {
		t.Fatal("staging row cell reported comboable")
	}
	b.detectMatches()
	if len(b.clearQueue) != 0 {
		t.Errorf("queued %d cells from the staging row, expected 0", len(b.clearQueue))
	}
}

func TestComboable(t *testing.T) {
	cfg := testConfig()
	tests := []struct {
		name     string
		kind     Kind
		state    State
		counter  int
		garbage  bool
		expected bool
	}{
		{"idle tile", 1, StateIdle, 0, false, true},
		{"empty", KindEmpty, StateIdle, 0, false, false},
		{"landing inside window", 1, StateLand, cfg.LandTime - 1, false, true},
		{"just landed", 1, StateLand, cfg.LandTime, false, false},
		{"hanging", 1, StateHang, 5, false, false},
		{"swapping", 1, StateSwap, 2, false, false},
		{"clearing", 1, StateClear, 10, false, false},
		{"garbage", KindGarbage, StateIdle, 0, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := emptyBoard(t)
			c := b.grid.At(2, 4)
			c.Kind = tc.kind
			c.State = tc.state
			c.Counter = tc.counter
			if tc.garbage {
				c.Garbage = 99
			}
			if got := b.comboable(b.grid.Index(2, 4)); got != tc.expected {
				t.Errorf("comboable = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCrossMatchDeduplicated(t *testing.T) {
	b := emptyBoard(t)
	// plus shape centred on (2,2)
	setTile(b, 1, 2, 4)
	setTile(b, 2, 2, 4)
	setTile(b, 3, 2, 4)
	setTile(b, 2, 1, 4)
	setTile(b, 2, 3, 4)
	setTile(b, 1, 1, 0)
	setTile(b, 3, 1, 1)

	res := b.Step(Input{})
	if res.Cleared != 5 {
		t.Errorf("Cleared = %d, expected 5", res.Cleared)
	}
	if res.Combo != 5 {
		t.Errorf("Combo = %d, expected 5", res.Combo)
	}
	if len(res.Garbage) != 1 || res.Garbage[0] != (GarbageDrop{Width: 4, Height: 1}) {
		t.Errorf("Garbage = %v, expected [{4 1}]", res.Garbage)
	}
}

func TestLongRunClearsEveryCell(t *testing.T) {
	b := emptyBoard(t)
	for x := 0; x < 5; x++ {
		setTile(b, x, 1, 2)
	}
	res := b.Step(Input{})
	if res.Cleared != 5 {
		t.Errorf("Cleared = %d, expected 5", res.Cleared)
	}
}
