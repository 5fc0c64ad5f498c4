package stack

import "testing"

func TestPushFrozen(t *testing.T) {
	cfg := DefaultConfig()
	p := PushController{Offset: 500}
	for i := 0; i < 1000; i++ {
		if p.Step(true, true, cfg, 9) {
			t.Fatalf("frame %d: raised while frozen", i)
		}
	}
	if p.Offset != 500 {
		t.Errorf("Offset = %d, expected 500", p.Offset)
	}
	if p.Smooth {
		t.Error("smooth raise survived a freeze")
	}
}

func TestPushCooldownNotSkippable(t *testing.T) {
	cfg := DefaultConfig()
	var p PushController
	frames := cfg.CellHeight / cfg.SmoothRaise
	for i := 1; i <= frames; i++ {
		raised := p.Step(true, false, cfg, 0)
		if raised != (i == frames) {
			t.Fatalf("frame %d: raised = %v", i, raised)
		}
	}
	if p.Offset != 0 || p.Blocked != cfg.RaiseBlockedTime {
		t.Fatalf("after raise: offset=%d blocked=%d, expected 0/%d", p.Offset, p.Blocked, cfg.RaiseBlockedTime)
	}
	for i := 0; i < cfg.RaiseBlockedTime; i++ {
		p.Step(true, false, cfg, 0)
		if p.Offset != 0 {
			t.Fatalf("cooldown frame %d: offset %d, expected 0", i, p.Offset)
		}
	}
	p.Step(true, false, cfg, 0)
	if p.Offset != cfg.SmoothRaise {
		t.Errorf("after cooldown: offset %d, expected %d", p.Offset, cfg.SmoothRaise)
	}
}

func TestPushSlowRaise(t *testing.T) {
	cfg := DefaultConfig()
	var p PushController
	p.Step(false, false, cfg, 4)
	if p.Offset != cfg.Raise[4] {
		t.Errorf("Offset = %d, expected %d", p.Offset, cfg.Raise[4])
	}
}

func TestBoardPushInhibitedByClear(t *testing.T) {
	b := emptyBoard(t)
	for y := 1; y <= 3; y++ {
		setTile(b, 4, y, 2)
	}
	setTile(b, 0, 1, 0)

	b.Step(Input{Raise: true})
	before := b.Snapshot()
	for i := 0; i < 60; i++ {
		res := b.Step(Input{Raise: true})
		if res.Raised {
			t.Fatalf("frame %d: raised during a clear", i)
		}
	}
	after := b.Snapshot()
	if after.Push.Offset != before.Push.Offset {
		t.Errorf("Offset changed from %d to %d", before.Push.Offset, after.Push.Offset)
	}
	for i := range before.Cells {
		if before.Cells[i].Kind != after.Cells[i].Kind {
			t.Fatalf("cell %d changed kind from %d to %d", i, before.Cells[i].Kind, after.Cells[i].Kind)
		}
	}
}

func TestBoardRaiseShiftsEverything(t *testing.T) {
	b := emptyBoard(t)
	setTile(b, 0, 1, 0)
	setTile(b, 1, 1, 1)
	setTile(b, 2, 1, 2)
	g := b.garbage.place(b.grid, 0, 2, 3, 1)
	members := append([]int(nil), g.Members...)
	staging := make([]Kind, b.cfg.Columns)
	for x := range staging {
		staging[x] = b.grid.At(x, 0).Kind
	}
	cursorY := b.cursor.Y

	frames := b.cfg.CellHeight / b.cfg.SmoothRaise
	var raised bool
	for i := 0; i < frames; i++ {
		raised = b.Step(Input{Raise: true}).Raised
	}
	if !raised {
		t.Fatalf("no raise after %d smooth frames", frames)
	}

	if g.Y != 3 {
		t.Errorf("garbage Y = %d, expected 3", g.Y)
	}
	if len(g.Members) != len(members) {
		t.Fatalf("garbage has %d members, expected %d", len(g.Members), len(members))
	}
	for k, i := range g.Members {
		if i != members[k]+b.cfg.Columns {
			t.Errorf("member %d at %d, expected %d", k, i, members[k]+b.cfg.Columns)
		}
	}
	for x, k := range []Kind{0, 1, 2} {
		if c := b.grid.At(x, 2); c.Kind != k {
			t.Errorf("(%d,2) kind %d, expected %d", x, c.Kind, k)
		}
	}
	for x, k := range staging {
		if c := b.grid.At(x, 1); c.Kind != k {
			t.Errorf("(%d,1) kind %d, expected old staging kind %d", x, c.Kind, k)
		}
		if !b.grid.At(x, 0).Kind.IsTile() {
			t.Errorf("(%d,0) not regenerated", x)
		}
	}
	if b.cursor.Y != cursorY+1 {
		t.Errorf("cursor Y = %d, expected %d", b.cursor.Y, cursorY+1)
	}
}
