package stack

import (
	"math/rand/v2"
	"testing"
)

func randomInputs(seed uint64, n int) []Input {
	r := rand.New(rand.NewPCG(seed, seed+1))
	out := make([]Input, n)
	for i := range out {
		out[i] = InputFromBits(uint8(r.IntN(64)))
		// keep manual raises rare so the stack survives a while
		if r.IntN(8) != 0 {
			out[i].Raise = false
		}
	}
	return out
}

func TestDeterminism(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Debug = true
	b1 := newTestBoard(t, cfg, 12345)
	b2 := newTestBoard(t, cfg, 12345)

	if !b1.Snapshot().Equal(b2.Snapshot()) {
		t.Fatal("fresh boards with the same seed differ")
	}

	for i, in := range randomInputs(7, 2000) {
		r1 := b1.Step(in)
		r2 := b2.Step(in)
		for _, d := range r1.Garbage {
			b1.QueueGarbage(d)
		}
		for _, d := range r2.Garbage {
			b2.QueueGarbage(d)
		}
		if i%100 == 0 && !b1.Snapshot().Equal(b2.Snapshot()) {
			t.Fatalf("frame %d: snapshots differ", i+1)
		}
	}
	s1, s2 := b1.Snapshot(), b2.Snapshot()
	if s1.Checksum() != s2.Checksum() {
		t.Errorf("checksums differ: %x vs %x", s1.Checksum(), s2.Checksum())
	}
}

func TestCloneStepsIdentically(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Debug = true
	b := newTestBoard(t, cfg, 99)
	inputs := randomInputs(3, 600)
	for _, in := range inputs[:300] {
		b.Step(in)
	}

	c := b.Clone()
	for i, in := range inputs[300:] {
		b.Step(in)
		c.Step(in)
		if !b.Snapshot().Equal(c.Snapshot()) {
			t.Fatalf("frame %d after clone: snapshots differ", i+1)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := newTestBoard(t, testConfig(), 5)
	before := b.Snapshot()
	c := b.Clone()
	for i := 0; i < 50; i++ {
		c.Step(Input{Raise: true, Swap: true, Left: i%2 == 0})
	}
	if !b.Snapshot().Equal(before) {
		t.Error("stepping a clone changed the original")
	}
}

func TestFreshBoardHasNoMatches(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		b := newTestBoard(t, testConfig(), seed)
		b.detectMatches()
		if len(b.clearQueue) != 0 {
			t.Fatalf("seed %d: fresh board has %d matched cells", seed, len(b.clearQueue))
		}
		for x := 0; x < b.cfg.Columns; x++ {
			if !b.grid.At(x, 0).Kind.IsTile() {
				t.Fatalf("seed %d: staging cell %d empty", seed, x)
			}
			if h := b.grid.ColumnHeight(x); h > b.cfg.StartHeight || h < b.cfg.StartHeight-2 {
				t.Errorf("seed %d: column %d height %d outside [%d, %d]", seed, x, h, b.cfg.StartHeight-2, b.cfg.StartHeight)
			}
		}
	}
}

func TestLossResetsBoard(t *testing.T) {
	cfg := testConfig()
	for i := range cfg.Stop {
		cfg.Stop[i] = 5
	}
	b := newTestBoard(t, cfg, 11)
	for i := b.grid.Columns; i < b.grid.Len(); i++ {
		b.grid.clear(i)
	}
	for y := 1; y <= cfg.TopVisibleRow(); y++ {
		setTile(b, 0, y, Kind(y%2))
	}
	b.level = 3
	b.stats.Score = 1234
	b.stats.HighestChain = 4
	b.chain.LastChain = 4
	b.cursor = Cursor{X: 4, Y: 11}

	for i := 0; i < 5; i++ {
		if res := b.Step(Input{}); res.Loss != nil {
			t.Fatalf("frame %d: lost early", i+1)
		}
		if b.lose.Counter != i+1 {
			t.Fatalf("frame %d: lose counter %d, expected %d", i+1, b.lose.Counter, i+1)
		}
	}

	res := b.Step(Input{})
	if res.Loss == nil {
		t.Fatal("no loss after exceeding the stop time")
	}
	if res.Loss.Stats.Score != 1234 || res.Loss.Level != 3 {
		t.Errorf("loss event = %+v, expected score 1234 at level 3", res.Loss)
	}

	if b.Level() != cfg.StartLevel {
		t.Errorf("Level = %d, expected %d", b.Level(), cfg.StartLevel)
	}
	if b.Stats() != (Stats{}) {
		t.Errorf("Stats = %+v, expected zero", b.Stats())
	}
	if b.chain != newChainTracker() {
		t.Errorf("chain = %+v, expected fresh tracker", b.chain)
	}
	if b.cursor != newCursor(cfg) {
		t.Errorf("cursor = %+v, expected %+v", b.cursor, newCursor(cfg))
	}
	if b.lose.Counter != 0 {
		t.Errorf("lose counter = %d, expected 0", b.lose.Counter)
	}
	if !b.grid.RowEmpty(cfg.TopVisibleRow()) {
		t.Error("top row still occupied after reset")
	}
	if b.grid.ColumnHeight(1) == 0 && b.grid.ColumnHeight(2) == 0 {
		t.Error("grid not refilled after reset")
	}
}

func TestLoseCounterResetsDuringClear(t *testing.T) {
	var l LoseCounter
	for i := 0; i < 10; i++ {
		l.Step(true, false, 100)
	}
	if l.Step(true, true, 100) || l.Counter != 0 {
		t.Errorf("counter %d during a clear, expected 0", l.Counter)
	}
	l.Step(true, false, 100)
	if l.Step(false, false, 100) || l.Counter != 0 {
		t.Errorf("counter %d without top blocks, expected 0", l.Counter)
	}
}

func TestInputBits(t *testing.T) {
	for v := 0; v < 64; v++ {
		if got := InputFromBits(uint8(v)).Bits(); got != uint8(v) {
			t.Errorf("Bits(InputFromBits(%d)) = %d", v, got)
		}
	}
}

func TestInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LandTime = 10
	if _, err := NewBoard(cfg, NewRandomGenerator(1, cfg.Kinds)); err == nil {
		t.Error("expected error for land time not divisible by 3")
	}
}
