package stack

// tickGarbage advances an aggregate by one frame. Members never decide
// for themselves: the aggregate computes CanFall/HangInfo from its exposed
// edge and every member mirrors the outcome.
func (b *Board) tickGarbage(g *Garbage) {
	switch g.State {
	case StateClear:
		if g.Counter > 0 {
			g.Counter--
		}
		if g.Counter == 0 {
			b.breakGarbage(g)
			return
		}

	case StateIdle:
		if ok, frames := g.HangInfo(b.grid); ok {
			g.State = StateHang
			g.Counter = max(b.cfg.Hover[b.level], frames)
		}

	case StateHang:
		if g.Counter > 0 {
			g.Counter--
		}
		if g.Counter == 0 {
			g.State = StateFall
			b.fallGarbage(g)
		}

	case StateFall:
		b.fallGarbage(g)
	}

	b.mirrorGarbage(g)
}

// fallGarbage moves every member down one row in the same tick, or stops
// the aggregate when something is underneath.
func (b *Board) fallGarbage(g *Garbage) {
	if g.CanFall(b.grid) {
		for _, i := range g.Members {
			b.grid.move(i, i-b.grid.Columns)
		}
		g.shift(b.grid, -1)
		if g.CanFall(b.grid) {
			return
		}
	}

	if ok, frames := g.HangInfo(b.grid); ok && frames > 0 {
		g.State = StateHang
		g.Counter = frames
		return
	}
	g.State = StateIdle
	g.Counter = 0
}

// mirrorGarbage copies the aggregate's state onto every member and marks
// them stepped for this frame.
func (b *Board) mirrorGarbage(g *Garbage) {
	for _, i := range g.Members {
		c := &b.grid.Cells[i]
		c.State = g.State
		c.Counter = g.Counter
		if g.State == StateClear {
			c.AnimCounter++
		}
		b.stepped[i] = true
	}
}

// markGarbage flags every resting aggregate touching a cleared cell, and
// every resting aggregate touching a flagged one, then starts their
// staggered clear. The spread uses an explicit work queue.
func (b *Board) markGarbage(cleared []int) int {
	var order []*Garbage
	visited := make(map[GarbageID]bool)

	enqueue := func(id GarbageID) {
		if id == 0 || visited[id] {
			return
		}
		visited[id] = true
		g := b.garbage.Get(id)
		if g == nil || g.State != StateIdle {
			return
		}
		g.MarkedForClear = true
		order = append(order, g)
	}

	for _, i := range cleared {
		x, y := b.grid.Coords(i)
		for _, d := range [4][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}} {
			if n := b.grid.At(x+d[0], y+d[1]); n != nil {
				enqueue(n.Garbage)
			}
		}
	}
	for head := 0; head < len(order); head++ {
		for _, id := range order[head].neighbors(b.grid) {
			enqueue(id)
		}
	}

	total := 0
	for _, g := range order {
		total += len(g.Members)
	}
	if total == 0 {
		return 0
	}

	t := b.timing()
	k := 0
	for _, g := range order {
		g.State = StateClear
		g.Counter = t.flash + t.face + t.pop*total
		for _, i := range g.Members {
			c := &b.grid.Cells[i]
			c.State = StateClear
			c.Counter = g.Counter
			c.ClearTime = t.flash + t.face + t.pop*k
			c.AnimCounter = 0
			k++
		}
	}
	return total
}

// breakGarbage ends a garbage clear: the bottom row turns into fresh
// chainable tiles and the rows above split off as a shorter aggregate.
func (b *Board) breakGarbage(g *Garbage) {
	x, y, w, h := g.X, g.Y, g.Width, g.Height
	bottom := append([]int(nil), g.Bottom...)
	rest := g.Members[len(bottom):]
	for _, i := range rest {
		b.grid.clear(i)
	}
	b.garbage.remove(g.ID)

	for _, i := range bottom {
		b.grid.clear(i)
	}
	for _, i := range bottom {
		cx, cy := b.grid.Coords(i)
		c := &b.grid.Cells[i]
		c.Kind = b.gen.Kind(b.grid, cx, cy)
		c.Chainable = true
		b.stepped[i] = true
	}

	if h > 1 {
		top := b.garbage.place(b.grid, x, y+1, w, h-1)
		for _, i := range top.Members {
			b.stepped[i] = true
		}
	}
}
