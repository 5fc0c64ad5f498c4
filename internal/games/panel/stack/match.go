package stack

// comboable reports whether the cell at i can take part in a match: a tile
// above the staging row that is resting, or still inside its land window.
func (b *Board) comboable(i int) bool {
	c := &b.grid.Cells[i]
	if c.Y == 0 || c.IsGarbage() || !c.Kind.IsTile() {
		return false
	}
	switch c.State {
	case StateIdle:
		return true
	case StateLand:
		return c.Counter < b.cfg.LandTime
	}
	return false
}

// detectMatches sweeps every cell and queues each run of three identical
// comboable tiles, horizontally to the right and vertically upward.
// Longer runs are covered because every origin is tested on its own.
func (b *Board) detectMatches() {
	for i := range b.grid.Cells {
		if !b.comboable(i) {
			continue
		}
		x, y := b.grid.Coords(i)
		b.matchRun(i, b.grid.Index(x+1, y), b.grid.Index(x+2, y), x+2 < b.grid.Columns)
		b.matchRun(i, b.grid.Index(x, y+1), b.grid.Index(x, y+2), y+2 < b.grid.Rows)
	}
}

func (b *Board) matchRun(origin, second, third int, inBounds bool) {
	if !inBounds {
		return
	}
	k := b.grid.Cells[origin].Kind
	for _, j := range [2]int{second, third} {
		if !b.comboable(j) || b.grid.Cells[j].Kind != k {
			return
		}
	}
	for _, j := range [3]int{origin, second, third} {
		if !b.queued[j] {
			b.queued[j] = true
			b.clearQueue = append(b.clearQueue, j)
		}
	}
}
