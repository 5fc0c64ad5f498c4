package stack

// changeState is the single funnel for every cell state transition.
// It is a no-op when the state does not change; otherwise it runs the
// outgoing exit hook (Land, Clear), assigns the state and runs the
// incoming enter hook (Hang, Land).
func (b *Board) changeState(i int, s State) {
	c := &b.grid.Cells[i]
	if c.State == s {
		return
	}

	switch c.State {
	case StateLand:
		c.Chainable = false
		c.AnimOffset = 0
	case StateClear:
		b.finishClear(i)
	}

	c.State = s

	switch s {
	case StateHang:
		c.Counter = b.cfg.Hover[b.level]
	case StateLand:
		c.Counter = b.cfg.LandTime
		c.AnimCounter = b.cfg.LandTime
	}
}

// hangFrom puts cell i into Hang with the given counter instead of the hover time.
func (b *Board) hangFrom(i, counter int) {
	b.changeState(i, StateHang)
	if counter > 0 {
		b.grid.Cells[i].Counter = counter
	}
}

// finishClear empties a cell whose clear animation has ended and flags the
// column resting on it as chainable.
func (b *Board) finishClear(i int) {
	b.grid.clear(i)
	for j := b.grid.above(i); j >= 0; j = b.grid.above(j) {
		a := &b.grid.Cells[j]
		if a.State == StateClear {
			continue
		}
		if a.IsEmpty() || a.IsGarbage() {
			break
		}
		a.Chainable = true
	}
}

// tickCells runs one frame of the state machine over every cell in
// ascending index order (bottom row first). Each cell is stepped at most
// once; garbage members are stepped through their aggregate.
func (b *Board) tickCells() {
	for i := range b.stepped {
		b.stepped[i] = false
	}
	for i := range b.grid.Cells {
		if b.stepped[i] {
			continue
		}
		c := &b.grid.Cells[i]
		if c.IsGarbage() {
			if g := b.garbage.Get(c.Garbage); g != nil && g.head() == i {
				b.tickGarbage(g)
			}
			continue
		}
		if c.IsEmpty() && c.State == StateIdle {
			continue
		}
		b.stepped[i] = true
		b.tickCell(i)
	}
}

// tickCell advances one non-garbage cell by one frame.
func (b *Board) tickCell(i int) {
	c := &b.grid.Cells[i]
	if c.Counter > 0 {
		c.Counter--
	}

	switch c.State {
	case StateIdle:
		b.tickIdle(i)

	case StateHang:
		if c.Counter == 0 {
			b.changeState(i, StateFall)
			b.fall(i)
		}

	case StateFall:
		b.fall(i)

	case StateLand:
		c.AnimCounter = c.Counter
		c.AnimOffset = (b.cfg.LandTime - c.Counter) / (b.cfg.LandTime / 3)
		if c.Counter == 0 {
			b.endLand(i)
		}

	case StateSwap:
		c.AnimOffset = c.SwapDir * b.cfg.CellWidth * c.Counter / b.cfg.SwapTime
		if c.Counter == 0 {
			b.finishSwap(i)
		}

	case StateClear:
		c.AnimCounter++
		if c.Counter == 0 {
			b.changeState(i, StateIdle)
		}
	}
}

// canHang reports whether the tile at i is unsupported. Row 1 rests on the
// staging row and never hangs.
func (b *Board) canHang(i int) bool {
	if i < 2*b.grid.Columns {
		return false
	}
	n := b.grid.Cells[i-b.grid.Columns]
	return n.vacant() || n.State == StateFall || n.State == StateHang
}

func (b *Board) tickIdle(i int) {
	c := &b.grid.Cells[i]
	if c.IsEmpty() {
		return
	}
	if b.canHang(i) {
		n := b.grid.Cells[i-b.grid.Columns]
		if n.State == StateHang {
			b.hangFrom(i, n.Counter)
		} else {
			b.changeState(i, StateHang)
		}
		return
	}
	c.Chainable = false
}

// fall drops the cell one row if the slot below is vacant, then decides
// whether it keeps falling, hangs on a hanging neighbor, or lands.
func (b *Board) fall(i int) {
	cols := b.grid.Columns
	if i < 2*cols {
		b.changeState(i, StateIdle)
		return
	}

	below := i - cols
	n := b.grid.Cells[below]
	switch {
	case n.vacant():
		b.grid.move(i, below)
		b.stepped[below] = true
		b.settleFall(below)
	case n.State == StateHang:
		b.hangFrom(i, n.Counter)
	case n.State == StateFall, n.IsEmpty():
		// wait for the cell below or the swap into it to finish
	default:
		b.changeState(i, StateLand)
	}
}

// settleFall resolves the state of a cell that just dropped into slot i.
func (b *Board) settleFall(i int) {
	cols := b.grid.Columns
	if i < 2*cols {
		b.changeState(i, StateLand)
		return
	}
	n := b.grid.Cells[i-cols]
	switch {
	case n.vacant(), n.IsEmpty(), n.State == StateFall:
	case n.State == StateHang:
		b.hangFrom(i, n.Counter)
	default:
		b.changeState(i, StateLand)
	}
}

// endLand fires when the land animation completes.
func (b *Board) endLand(i int) {
	if a := b.grid.above(i); a >= 0 {
		up := b.grid.Cells[a]
		if up.State == StateHang && up.Counter > 0 {
			b.hangFrom(i, up.Counter)
			return
		}
	}
	b.changeState(i, StateIdle)
}

// startSwap begins exchanging the cells at i and i+1.
func (b *Board) startSwap(i int) {
	j := i + 1
	b.changeState(i, StateSwap)
	b.changeState(j, StateSwap)

	l, r := &b.grid.Cells[i], &b.grid.Cells[j]
	l.Counter, r.Counter = b.cfg.SwapTime, b.cfg.SwapTime
	l.SwapDir, r.SwapDir = 1, -1
	l.AnimOffset, r.AnimOffset = b.cfg.CellWidth, -b.cfg.CellWidth
}

// finishSwap exchanges the pair in two phases: read both, then write both.
// The left cell performs the exchange; the right one is already settled
// by the time the sweep reaches it.
func (b *Board) finishSwap(i int) {
	c := b.grid.Cells[i]
	if c.SwapDir <= 0 {
		b.settleSwap(i)
		return
	}

	j := i + 1
	left, right := b.grid.Cells[i], b.grid.Cells[j]

	lx, ly := b.grid.Coords(i)
	rx, ry := b.grid.Coords(j)
	right.X, right.Y = lx, ly
	left.X, left.Y = rx, ry
	b.grid.Cells[i] = right
	b.grid.Cells[j] = left

	b.stepped[j] = true
	b.settleSwap(i)
	b.settleSwap(j)
}

// settleSwap puts a swapped cell into its natural post-swap state.
func (b *Board) settleSwap(i int) {
	c := &b.grid.Cells[i]
	c.Counter = 0
	c.SwapDir = 0
	c.AnimOffset = 0
	b.changeState(i, StateIdle)
	if !c.IsEmpty() && b.canHang(i) {
		b.changeState(i, StateHang)
	}
}
